package knowledge

import (
	"encoding/json"
	"os"

	"riskwatch-pipeline/internal/models"
)

// Load reads the company knowledge file. Missing sections are normalized to
// empty collections rather than reported as errors; only unreadable files or
// malformed JSON fail.
func Load(path string) (*models.KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, models.NewExternalError("KNOWLEDGE_READ_FAILED", "failed to read knowledge file").WithCause(err).WithMetadata("path", path)
	}

	var kb models.KnowledgeBase
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, models.NewValidationError("KNOWLEDGE_PARSE_FAILED", "failed to parse knowledge file").WithCause(err).WithMetadata("path", path)
	}

	normalize(&kb)
	return &kb, nil
}

func normalize(kb *models.KnowledgeBase) {
	if kb.RiskKeywords == nil {
		kb.RiskKeywords = map[string][]string{}
	}
	if kb.ProductKeywords == nil {
		kb.ProductKeywords = map[string][]string{}
	}
	if kb.SensitiveTopics == nil {
		kb.SensitiveTopics = []string{}
	}
	if kb.Competitors == nil {
		kb.Competitors = []models.Competitor{}
	}
}
