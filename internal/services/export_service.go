package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"destfinder/internal/models/response_models"
	"destfinder/pkg/utils"
)

// documentTemplate is the fixed printable layout: destination, score,
// reasons, itinerary, insider tip and warning.
const documentTemplate = `<h1>{{.Destination}}</h1>
<p><strong>Match Score:</strong> {{.MatchScore}}</p>
<h2>Why It's Perfect:</h2>
<ul>{{range .WhyPerfect}}<li>{{.}}</li>{{end}}</ul>
<h2>Itinerary Highlights:</h2>
<ul>{{range .ItineraryHighlights}}<li>{{.}}</li>{{end}}</ul>
<p><strong>Insider Tip:</strong> {{.LocalSecret}}</p>
<p><strong>Warning:</strong> {{.Warning}}</p>
`

type ExportServiceInterface interface {
	ToMapMarker(rec *response_models.Recommendation) (*response_models.MapMarker, error)
	ToDocument(rec *response_models.Recommendation) ([]byte, error)
	ToPersistedRecord(rec *response_models.Recommendation) ([]byte, error)
}

type ExportService struct {
	document *template.Template
}

func NewExportService() ExportServiceInterface {
	return &ExportService{
		document: template.Must(template.New("document").Parse(documentTemplate)),
	}
}

// ToMapMarker produces the payload for a map rendering collaborator.
func (s *ExportService) ToMapMarker(rec *response_models.Recommendation) (*response_models.MapMarker, error) {
	if err := s.requireComplete(rec); err != nil {
		return nil, err
	}
	return &response_models.MapMarker{
		Lat:   rec.Lat(),
		Lng:   rec.Lng(),
		Label: fmt.Sprintf("Explore %s", rec.Destination),
	}, nil
}

// ToDocument renders the recommendation into printable HTML bytes.
func (s *ExportService) ToDocument(rec *response_models.Recommendation) ([]byte, error) {
	if err := s.requireComplete(rec); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := s.document.Execute(&buf, rec); err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return buf.Bytes(), nil
}

// ToPersistedRecord re-serializes the recommendation as canonical JSON for
// download. Re-parsing the bytes yields a value equal to the original.
func (s *ExportService) ToPersistedRecord(rec *response_models.Recommendation) ([]byte, error) {
	if err := s.requireComplete(rec); err != nil {
		return nil, err
	}
	return json.MarshalIndent(rec, "", "  ")
}

// requireComplete fails closed: a recommendation missing any required field
// is refused rather than rendered with placeholders.
func (s *ExportService) requireComplete(rec *response_models.Recommendation) error {
	if rec == nil {
		return utils.ErrNoRecommendation
	}
	if err := rec.Validate(); err != nil {
		return utils.ErrIncompleteRecommendation
	}
	return nil
}
