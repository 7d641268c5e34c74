package response_models

import (
	"fmt"
	"regexp"
	"strings"
)

// Recommendation is the structured travel suggestion decoded from the model
// reply. An instance is either fully valid or never produced at all; no
// partially populated value leaves the recommendation service.
type Recommendation struct {
	Destination         string     `json:"destination"`
	MatchScore          string     `json:"match_score"`
	WhyPerfect          []string   `json:"why_perfect"`
	Coordinates         [2]float64 `json:"coordinates"`
	ItineraryHighlights []string   `json:"itinerary_highlights"`
	LocalSecret         string     `json:"local_secret"`
	Warning             string     `json:"warning"`
}

// MapMarker is the payload handed to a map rendering collaborator.
type MapMarker struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label"`
}

var matchScorePattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?/10$`)

func (r Recommendation) Lat() float64 { return r.Coordinates[0] }
func (r Recommendation) Lng() float64 { return r.Coordinates[1] }

// Validate checks every field constraint. Out-of-range coordinates are
// rejected, never clamped.
func (r Recommendation) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("destination must not be empty")
	}
	if !matchScorePattern.MatchString(r.MatchScore) {
		return fmt.Errorf("match_score %q must be formatted like \"9/10\"", r.MatchScore)
	}
	if len(r.WhyPerfect) == 0 || len(r.WhyPerfect) > 3 {
		return fmt.Errorf("why_perfect must hold between 1 and 3 entries, got %d", len(r.WhyPerfect))
	}
	if r.Lat() < -90 || r.Lat() > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", r.Lat())
	}
	if r.Lng() < -180 || r.Lng() > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", r.Lng())
	}
	if len(r.ItineraryHighlights) == 0 {
		return fmt.Errorf("itinerary_highlights must not be empty")
	}
	if strings.TrimSpace(r.LocalSecret) == "" {
		return fmt.Errorf("local_secret must not be empty")
	}
	if strings.TrimSpace(r.Warning) == "" {
		return fmt.Errorf("warning must not be empty")
	}
	return nil
}
