package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"destfinder/internal/models/request_models"
	"destfinder/internal/models/response_models"
	"destfinder/pkg/utils"
)

type SessionState string

const (
	StateCollecting SessionState = "collecting"
	StateRequesting SessionState = "requesting"
	StateDisplaying SessionState = "displaying"
	StateFailed     SessionState = "failed"
)

type SessionServiceInterface interface {
	Submit(ctx context.Context, prefs request_models.TravelerPreferences) (*response_models.Recommendation, error)
	Current() (*response_models.Recommendation, error)
	Snapshot() response_models.SessionSnapshot
	Reset()
}

// SessionService is the application shell: collecting -> requesting ->
// displaying or failed, with one request in flight at a time. Each
// submission is tagged with a monotonically increasing sequence number; a
// result whose sequence no longer matches is discarded, never displayed.
type SessionService struct {
	mu sync.Mutex

	recommendations RecommendationServiceInterface
	logger          *zap.SugaredLogger

	state   SessionState
	seq     uint64
	cancel  context.CancelFunc
	current *response_models.Recommendation
	lastErr error
}

func NewSessionService(recommendations RecommendationServiceInterface, logger *zap.SugaredLogger) SessionServiceInterface {
	return &SessionService{
		recommendations: recommendations,
		logger:          logger,
		state:           StateCollecting,
	}
}

// Submit runs one recommendation request to completion. Re-submission while
// a request is in flight is refused outright rather than queued.
func (s *SessionService) Submit(ctx context.Context, prefs request_models.TravelerPreferences) (*response_models.Recommendation, error) {
	s.mu.Lock()
	if s.state == StateRequesting {
		s.mu.Unlock()
		return nil, utils.ErrRequestInFlight
	}

	s.seq++
	seq := s.seq
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = StateRequesting
	s.mu.Unlock()

	defer cancel()

	rec, err := s.recommendations.FetchRecommendation(reqCtx, prefs)
	return s.complete(seq, rec, err)
}

// complete applies a finished request's outcome, unless a reset or newer
// submission has moved the sequence on, in which case the result is dropped.
func (s *SessionService) complete(seq uint64, rec *response_models.Recommendation, err error) (*response_models.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.logger.Infow("discarding stale response", "sequence", seq, "current", s.seq)
		return nil, utils.ErrRequestSuperseded
	}

	if err != nil {
		s.state = StateFailed
		s.lastErr = err
		return nil, err
	}

	s.state = StateDisplaying
	s.current = rec
	s.lastErr = nil
	return rec, nil
}

// Current returns the last displayed recommendation, if any.
func (s *SessionService) Current() (*response_models.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, utils.ErrNoRecommendation
	}
	return s.current, nil
}

func (s *SessionService) Snapshot() response_models.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := response_models.SessionSnapshot{
		State:          string(s.state),
		Sequence:       s.seq,
		Recommendation: s.current,
	}
	if s.state == StateFailed && s.lastErr != nil {
		snap.FailureNotice = utils.RetryNotice
	}
	return snap
}

// Reset cancels any in-flight request, bumps the sequence so its late result
// is discarded, and returns the shell to collecting.
func (s *SessionService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
	s.state = StateCollecting
	s.current = nil
	s.lastErr = nil
}
