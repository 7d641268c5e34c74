package services

import (
	"fmt"
	"strings"

	"destfinder/internal/models/request_models"
)

// SystemInstruction constrains the model for every recommendation request.
// It asks for selectivity over creativity and forbids regional or ethnic bias.
const SystemInstruction = "You are a highly selective travel advisor. " +
	"Recommend the single best matching destination for the traveler profile you are given. " +
	"Consider destinations across all regions of the world without bias toward or against " +
	"any region, country, culture, or ethnicity. " +
	"Respond with ONLY a JSON object. No prose, no markdown."

type PromptBuilderInterface interface {
	BuildPrompt(prefs request_models.TravelerPreferences) string
}

type PromptBuilder struct{}

func NewPromptBuilder() PromptBuilderInterface {
	return &PromptBuilder{}
}

// BuildPrompt renders the traveler profile followed by the exact output
// schema the model must produce. Pure function: identical input yields
// byte-identical prompt text.
func (b *PromptBuilder) BuildPrompt(prefs request_models.TravelerPreferences) string {
	var prompt strings.Builder

	prompt.WriteString("Find the perfect travel destination for this traveler profile:\n\n")
	prompt.WriteString(fmt.Sprintf("- Traveler type: %s\n", prefs.TravelerType))
	prompt.WriteString(fmt.Sprintf("- Trip duration: %d days\n", prefs.DurationDays))
	prompt.WriteString(fmt.Sprintf("- Budget level: %s\n", prefs.Budget))
	prompt.WriteString(fmt.Sprintf("- Preferred continent: %s\n", prefs.Continent))
	prompt.WriteString(fmt.Sprintf("- Travel season: %s\n", prefs.Season))
	prompt.WriteString(fmt.Sprintf("- Landscape type: %s\n", prefs.DestinationType))
	prompt.WriteString(fmt.Sprintf("- Interests: %s\n", strings.Join(prefs.Interests, ", ")))
	if prefs.AgeGroup != "" {
		prompt.WriteString(fmt.Sprintf("- Age group: %s\n", prefs.AgeGroup))
	}
	if prefs.ClimatePreference != "" {
		prompt.WriteString(fmt.Sprintf("- Climate preference: %s\n", prefs.ClimatePreference))
	}

	prompt.WriteString("\nCRITICAL REQUIREMENTS:\n")
	prompt.WriteString("1. Pick exactly one destination, formatted \"City, Country\"\n")
	prompt.WriteString("2. match_score is a string like \"9/10\"\n")
	prompt.WriteString("3. why_perfect holds at most 3 short reasons\n")
	prompt.WriteString(fmt.Sprintf("4. itinerary_highlights holds one entry per day for %d days\n", prefs.DurationDays))
	prompt.WriteString("5. coordinates is [latitude, longitude] of the destination\n")
	prompt.WriteString("6. Return ONLY valid JSON, no extra text\n\n")

	prompt.WriteString("Return JSON in this EXACT format:\n")
	prompt.WriteString(`{
  "destination": "City, Country",
  "match_score": "9/10",
  "why_perfect": ["reason 1", "reason 2", "reason 3"],
  "coordinates": [48.8566, 2.3522],
  "itinerary_highlights": ["Day 1: ...", "Day 2: ..."],
  "local_secret": "one insider tip",
  "warning": "one practical caution"
}`)

	return prompt.String()
}
