package services

import (
	"encoding/json"
	"os"
	"time"

	"riskwatch-pipeline/internal/models"
)

// ResultsDocument is the on-disk shape of a completed batch run.
type ResultsDocument struct {
	Company         string                    `json:"company"`
	GeneratedAt     time.Time                 `json:"generated_at"`
	SourceFiles     []string                  `json:"source_files"`
	Summary         *models.SummaryReport     `json:"summary"`
	DetailedResults []models.AssessmentResult `json:"detailed_results"`
}

func WriteResults(path string, doc *ResultsDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return models.NewInternalError("RESULTS_MARSHAL_FAILED", "failed to encode assessment results").WithCause(err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return models.NewInternalError("RESULTS_WRITE_FAILED", "failed to write assessment results").
			WithCause(err).
			WithMetadata("path", path)
	}

	return nil
}
