package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"destfinder/internal/models/request_models"
	"destfinder/internal/models/response_models"
	"destfinder/pkg/utils"
)

type scriptedRecommender struct {
	mu    sync.Mutex
	calls int
	fn    func(call int, ctx context.Context) (*response_models.Recommendation, error)
}

func (s *scriptedRecommender) FetchRecommendation(ctx context.Context, prefs request_models.TravelerPreferences) (*response_models.Recommendation, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	s.mu.Unlock()
	return s.fn(call, ctx)
}

func namedRecommendation(destination string) *response_models.Recommendation {
	rec := parisRecommendation()
	rec.Destination = destination
	return rec
}

func newSession(rec RecommendationServiceInterface) SessionServiceInterface {
	return NewSessionService(rec, zap.NewNop().Sugar())
}

func TestSubmit_TransitionsToDisplaying(t *testing.T) {
	session := newSession(&scriptedRecommender{
		fn: func(call int, ctx context.Context) (*response_models.Recommendation, error) {
			return namedRecommendation("Kyoto, Japan"), nil
		},
	})

	rec, err := session.Submit(context.Background(), testPreferences())
	require.NoError(t, err)
	assert.Equal(t, "Kyoto, Japan", rec.Destination)

	snap := session.Snapshot()
	assert.Equal(t, string(StateDisplaying), snap.State)
	require.NotNil(t, snap.Recommendation)

	current, err := session.Current()
	require.NoError(t, err)
	assert.Equal(t, "Kyoto, Japan", current.Destination)
}

func TestSubmit_FailureEntersFailedState(t *testing.T) {
	session := newSession(&scriptedRecommender{
		fn: func(call int, ctx context.Context) (*response_models.Recommendation, error) {
			if call == 1 {
				return nil, utils.ErrServiceUnavailable
			}
			return namedRecommendation("Lisbon, Portugal"), nil
		},
	})

	_, err := session.Submit(context.Background(), testPreferences())
	assert.ErrorIs(t, err, utils.ErrServiceUnavailable)

	snap := session.Snapshot()
	assert.Equal(t, string(StateFailed), snap.State)
	assert.Equal(t, utils.RetryNotice, snap.FailureNotice)
	assert.Nil(t, snap.Recommendation, "no partial recommendation is ever displayed")

	// A failed shell accepts a fresh submission without an explicit reset.
	rec, err := session.Submit(context.Background(), testPreferences())
	require.NoError(t, err)
	assert.Equal(t, "Lisbon, Portugal", rec.Destination)
}

func TestSubmit_RejectsConcurrentRequests(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	session := newSession(&scriptedRecommender{
		fn: func(call int, ctx context.Context) (*response_models.Recommendation, error) {
			close(started)
			<-release
			return namedRecommendation("Oslo, Norway"), nil
		},
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = session.Submit(context.Background(), testPreferences())
	}()

	<-started
	_, err := session.Submit(context.Background(), testPreferences())
	assert.ErrorIs(t, err, utils.ErrRequestInFlight)

	close(release)
	<-done
}

func TestStaleResponseGuard(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	session := newSession(&scriptedRecommender{
		fn: func(call int, ctx context.Context) (*response_models.Recommendation, error) {
			if call == 1 {
				close(firstStarted)
				<-releaseFirst
				return namedRecommendation("Rome, Italy"), nil
			}
			return namedRecommendation("Tokyo, Japan"), nil
		},
	})

	firstResult := make(chan error, 1)
	go func() {
		_, err := session.Submit(context.Background(), testPreferences())
		firstResult <- err
	}()

	<-firstStarted
	session.Reset()

	rec, err := session.Submit(context.Background(), testPreferences())
	require.NoError(t, err)
	assert.Equal(t, "Tokyo, Japan", rec.Destination)

	// Response 1 arrives after response 2 completed; it must be discarded.
	close(releaseFirst)
	select {
	case err := <-firstResult:
		assert.ErrorIs(t, err, utils.ErrRequestSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("first submission never completed")
	}

	current, err := session.Current()
	require.NoError(t, err)
	assert.Equal(t, "Tokyo, Japan", current.Destination, "displayed state must reflect the newer response")
}

func TestReset_CancelsInFlightRequest(t *testing.T) {
	started := make(chan struct{})

	session := newSession(&scriptedRecommender{
		fn: func(call int, ctx context.Context) (*response_models.Recommendation, error) {
			close(started)
			<-ctx.Done()
			return nil, utils.ErrServiceUnavailable
		},
	})

	result := make(chan error, 1)
	go func() {
		_, err := session.Submit(context.Background(), testPreferences())
		result <- err
	}()

	<-started
	session.Reset()

	select {
	case err := <-result:
		assert.ErrorIs(t, err, utils.ErrRequestSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("reset did not cancel the in-flight request")
	}

	snap := session.Snapshot()
	assert.Equal(t, string(StateCollecting), snap.State)
	assert.Nil(t, snap.Recommendation)
}
