package controllers

import (
	"github.com/gin-gonic/gin"

	"destfinder/internal/models/request_models"
	"destfinder/pkg/utils"
)

// OptionsController serves the closed vocabularies a form client needs to
// build valid traveler preferences.
type OptionsController struct{}

func NewOptionsController() *OptionsController {
	return &OptionsController{}
}

func (oc *OptionsController) ListOptionsHandler(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"traveler_types":      request_models.TravelerTypes,
		"budget_levels":       request_models.BudgetLevels,
		"continents":          request_models.Continents,
		"seasons":             request_models.Seasons,
		"destination_types":   request_models.DestinationTypes,
		"interests":           request_models.InterestVocabulary,
		"age_groups":          request_models.AgeGroups,
		"climate_preferences": request_models.ClimatePreferences,
		"duration_days": gin.H{
			"min": request_models.MinDurationDays,
			"max": request_models.MaxDurationDays,
		},
	}, "")
}
