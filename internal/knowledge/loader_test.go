package knowledge_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"riskwatch-pipeline/internal/knowledge"
	"riskwatch-pipeline/internal/models"
)

func writeKnowledgeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "company.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadKnowledgeFile(t *testing.T) {
	path := writeKnowledgeFile(t, `{
		"company": {"name": "Acme Corp", "stock_symbol": "ACME", "industry": "semiconductors"},
		"competitors": [{"name": "Globex", "stock_symbol": "GBX"}],
		"risk_keywords": {"financial": ["lawsuit"]},
		"product_keywords": {"chips": ["processor"]},
		"sensitive_topics": ["data breach"]
	}`)

	kb, err := knowledge.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if kb.Company.Name != "Acme Corp" || kb.Company.StockSymbol != "ACME" {
		t.Errorf("unexpected company: %+v", kb.Company)
	}
	if len(kb.Competitors) != 1 || kb.Competitors[0].Name != "Globex" {
		t.Errorf("unexpected competitors: %+v", kb.Competitors)
	}
	if len(kb.RiskKeywords["financial"]) != 1 {
		t.Errorf("unexpected risk keywords: %+v", kb.RiskKeywords)
	}
}

func TestLoadNormalizesMissingSections(t *testing.T) {
	path := writeKnowledgeFile(t, `{"company": {"name": "Acme Corp"}}`)

	kb, err := knowledge.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if kb.RiskKeywords == nil || kb.ProductKeywords == nil ||
		kb.SensitiveTopics == nil || kb.Competitors == nil {
		t.Errorf("missing sections not normalized: %+v", kb)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := knowledge.Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "KNOWLEDGE_READ_FAILED" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeKnowledgeFile(t, `{"company": `)

	_, err := knowledge.Load(path)
	if err == nil {
		t.Fatal("expected error for malformed file")
	}

	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "KNOWLEDGE_PARSE_FAILED" {
		t.Errorf("unexpected error: %v", err)
	}
}
