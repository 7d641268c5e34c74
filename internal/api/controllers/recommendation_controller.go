package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"destfinder/internal/models/request_models"
	"destfinder/internal/services"
	"destfinder/pkg/utils"
)

type RecommendationController struct {
	session services.SessionServiceInterface
	exports services.ExportServiceInterface
}

func NewRecommendationController(
	session services.SessionServiceInterface,
	exports services.ExportServiceInterface,
) *RecommendationController {
	return &RecommendationController{
		session: session,
		exports: exports,
	}
}

// SubmitHandler accepts one traveler profile and blocks until the
// recommendation request resolves or fails.
func (rc *RecommendationController) SubmitHandler(c *gin.Context) {
	var prefs request_models.TravelerPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := rc.session.Submit(c.Request.Context(), prefs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rec, "Recommendation generated")
}

func (rc *RecommendationController) SnapshotHandler(c *gin.Context) {
	utils.RespondSuccess(c, rc.session.Snapshot(), "")
}

func (rc *RecommendationController) MarkerHandler(c *gin.Context) {
	rec, err := rc.session.Current()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	marker, err := rc.exports.ToMapMarker(rec)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, marker, "")
}

// DocumentHandler serves the printable itinerary as an HTML attachment.
func (rc *RecommendationController) DocumentHandler(c *gin.Context) {
	rec, err := rc.session.Current()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	doc, err := rc.exports.ToDocument(rec)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="travel_plan.html"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

// RecordHandler serves the canonical JSON re-serialization for download.
func (rc *RecommendationController) RecordHandler(c *gin.Context) {
	rec, err := rc.session.Current()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	record, err := rc.exports.ToPersistedRecord(rec)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="travel_plan.json"`)
	c.Data(http.StatusOK, "application/json", record)
}

func (rc *RecommendationController) ResetHandler(c *gin.Context) {
	rc.session.Reset()
	utils.RespondSuccess(c, rc.session.Snapshot(), "Session reset")
}
