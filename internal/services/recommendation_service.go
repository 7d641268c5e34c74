package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"destfinder/internal/models/request_models"
	"destfinder/internal/models/response_models"
	"destfinder/pkg/utils"
)

// recommendationSchema is the strict shape the model reply must satisfy
// before it is decoded. Coordinates use tuple validation so latitude and
// longitude carry their own bounds; out-of-range values are rejected here,
// never clamped.
const recommendationSchema = `{
  "type": "object",
  "required": ["destination", "match_score", "why_perfect", "coordinates", "itinerary_highlights", "local_secret", "warning"],
  "properties": {
    "destination": {"type": "string", "minLength": 1},
    "match_score": {"type": "string", "pattern": "^[0-9]+(\\.[0-9]+)?/10$"},
    "why_perfect": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "minItems": 1,
      "maxItems": 3
    },
    "coordinates": {
      "type": "array",
      "minItems": 2,
      "maxItems": 2,
      "items": [
        {"type": "number", "minimum": -90, "maximum": 90},
        {"type": "number", "minimum": -180, "maximum": 180}
      ]
    },
    "itinerary_highlights": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "minItems": 1
    },
    "local_secret": {"type": "string", "minLength": 1},
    "warning": {"type": "string", "minLength": 1}
  }
}`

type RecommendationServiceInterface interface {
	FetchRecommendation(ctx context.Context, prefs request_models.TravelerPreferences) (*response_models.Recommendation, error)
}

type RecommendationService struct {
	modelClient utils.ModelClientInterface
	prompts     PromptBuilderInterface
	timeout     time.Duration
	logger      *zap.SugaredLogger
	schema      *gojsonschema.Schema
}

func NewRecommendationService(
	modelClient utils.ModelClientInterface,
	prompts PromptBuilderInterface,
	timeout time.Duration,
	logger *zap.SugaredLogger,
) RecommendationServiceInterface {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(recommendationSchema))
	if err != nil {
		// The schema is a compile-time constant; failing to parse it is a bug.
		panic(err)
	}
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &RecommendationService{
		modelClient: modelClient,
		prompts:     prompts,
		timeout:     timeout,
		logger:      logger,
		schema:      schema,
	}
}

// FetchRecommendation issues one best-effort model call for the given
// preferences. It returns either a fully schema-valid recommendation or a
// typed failure; never a partially populated value. No retries, no caching.
func (s *RecommendationService) FetchRecommendation(ctx context.Context, prefs request_models.TravelerPreferences) (*response_models.Recommendation, error) {
	if err := prefs.Validate(); err != nil {
		s.logger.Warnw("rejecting preferences", "error", err)
		return nil, utils.ErrInvalidInput
	}

	prompt := s.prompts.BuildPrompt(prefs)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.modelClient.GenerateRecommendationJSON(callCtx, SystemInstruction, prompt)
	if err != nil {
		s.logger.Errorw("model call failed", "error", err)
		return nil, utils.ErrServiceUnavailable
	}

	return s.decodeReply(reply)
}

func (s *RecommendationService) decodeReply(reply string) (*response_models.Recommendation, error) {
	raw := utils.ExtractJSONObject(reply)
	if !json.Valid([]byte(raw)) {
		s.logger.Warnw("model reply is not JSON", "reply", reply)
		return nil, utils.ErrMalformedResponse
	}

	result, err := s.schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, utils.ErrMalformedResponse
	}
	if !result.Valid() {
		for _, desc := range result.Errors() {
			s.logger.Warnw("schema violation", "detail", desc.String())
		}
		return nil, utils.ErrSchemaViolation
	}

	var rec response_models.Recommendation
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, utils.ErrSchemaViolation
	}
	if err := rec.Validate(); err != nil {
		s.logger.Warnw("decoded recommendation invalid", "error", err)
		return nil, utils.ErrSchemaViolation
	}

	return &rec, nil
}
