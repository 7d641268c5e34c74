package request_models

import (
	"fmt"
)

// TravelerPreferences is one submitted trip profile. It is immutable once
// submitted and consumed exactly once to build a prompt.
type TravelerPreferences struct {
	TravelerType      string   `json:"traveler_type"`
	DurationDays      int      `json:"duration_days"`
	Budget            string   `json:"budget"`
	Continent         string   `json:"continent"`
	Season            string   `json:"season"`
	DestinationType   string   `json:"destination_type"`
	Interests         []string `json:"interests"`
	AgeGroup          string   `json:"age_group,omitempty"`
	ClimatePreference string   `json:"climate_preference,omitempty"`
}

const (
	MinDurationDays = 1
	MaxDurationDays = 21
)

var (
	TravelerTypes = []string{"Solo", "Couple", "Family", "Business", "Friends Group"}
	BudgetLevels  = []string{"Budget", "Comfort", "Luxury"}
	Continents    = []string{"Any", "Europe", "Asia", "Africa", "Americas", "Oceania"}
	Seasons       = []string{"Summer", "Winter", "Spring", "Fall", "Any"}

	DestinationTypes = []string{
		"Mountains", "Beaches", "Deserts", "Forests", "Islands",
		"Lakes & Rivers", "Volcanoes", "Tundra", "Countryside",
		"Canyons", "Cliffs", "Sand Dunes", "Waterfalls",
	}

	InterestVocabulary = []string{
		"History", "Food & Street Eats", "Nature Trails", "Art & Museums",
		"Shopping", "Nightlife & Clubs", "Photography", "Adventure Sports",
		"Local Culture", "Relaxation", "Festivals & Events", "Spiritual Retreats",
		"Tech & Innovation", "Sustainable Travel", "Music & Concerts", "Gaming Cafes",
		"Wellness & Spas", "Social Media Hotspots", "Extreme Sports", "Eco-Lodging",
		"Unique Stays (e.g., Treehouses)", "Road Trips", "Digital Detox",
	}

	AgeGroups          = []string{"Under 18", "18-24", "25-34", "35-49", "50-64", "65+"}
	ClimatePreferences = []string{"Tropical", "Temperate", "Cold", "Arid", "Any"}
)

// Validate rejects any field outside its closed set. Unknown interest values
// are a caller error, never silently dropped. AgeGroup and ClimatePreference
// are optional and only checked when present.
func (p TravelerPreferences) Validate() error {
	if !contains(TravelerTypes, p.TravelerType) {
		return fmt.Errorf("traveler_type %q is not one of %v", p.TravelerType, TravelerTypes)
	}
	if p.DurationDays < MinDurationDays || p.DurationDays > MaxDurationDays {
		return fmt.Errorf("duration_days %d must be between %d and %d", p.DurationDays, MinDurationDays, MaxDurationDays)
	}
	if !contains(BudgetLevels, p.Budget) {
		return fmt.Errorf("budget %q is not one of %v", p.Budget, BudgetLevels)
	}
	if !contains(Continents, p.Continent) {
		return fmt.Errorf("continent %q is not one of %v", p.Continent, Continents)
	}
	if !contains(Seasons, p.Season) {
		return fmt.Errorf("season %q is not one of %v", p.Season, Seasons)
	}
	if !contains(DestinationTypes, p.DestinationType) {
		return fmt.Errorf("destination_type %q is not one of %v", p.DestinationType, DestinationTypes)
	}
	for _, interest := range p.Interests {
		if !contains(InterestVocabulary, interest) {
			return fmt.Errorf("interest %q is not in the known vocabulary", interest)
		}
	}
	if p.AgeGroup != "" && !contains(AgeGroups, p.AgeGroup) {
		return fmt.Errorf("age_group %q is not one of %v", p.AgeGroup, AgeGroups)
	}
	if p.ClimatePreference != "" && !contains(ClimatePreferences, p.ClimatePreference) {
		return fmt.Errorf("climate_preference %q is not one of %v", p.ClimatePreference, ClimatePreferences)
	}
	return nil
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
