package scoring_test

import (
	"strings"
	"testing"

	"riskwatch-pipeline/internal/knowledge"
	"riskwatch-pipeline/internal/scoring"
)

func newClassifier(mode scoring.RelevanceMode) *scoring.RelevanceClassifier {
	kb := testKnowledgeBase()
	return scoring.NewRelevanceClassifier(kb, knowledge.BuildIndex(kb), mode)
}

func TestClassifyEmptyText(t *testing.T) {
	c := newClassifier(scoring.ModeLenient)
	got := c.Classify("", "  ")
	if got.Relevant {
		t.Error("empty text should not be relevant")
	}
	if got.Reason != "no content" {
		t.Errorf("expected 'no content' reason, got %q", got.Reason)
	}
}

func TestClassifyDirectCompanyMention(t *testing.T) {
	c := newClassifier(scoring.ModeStrict)
	got := c.Classify("Acme Corp opens new fab", "The plant will make chips.")
	if !got.Relevant {
		t.Fatal("company mention should be relevant in strict mode")
	}
	if !strings.Contains(got.Reason, "Direct mention of Acme Corp") {
		t.Errorf("expected company reason, got %q", got.Reason)
	}
}

func TestClassifyStockSymbol(t *testing.T) {
	c := newClassifier(scoring.ModeStrict)
	got := c.Classify("ACME shares slide", "Traders reacted to the filing.")
	if !got.Relevant {
		t.Error("stock symbol mention should be relevant")
	}
}

func TestClassifyCompetitorMention(t *testing.T) {
	c := newClassifier(scoring.ModeStrict)
	got := c.Classify("Globex announces rival product", "The device targets the same buyers.")
	if !got.Relevant {
		t.Fatal("competitor mention should be relevant")
	}
	if len(got.Competitors) != 1 || got.Competitors[0] != "Globex" {
		t.Errorf("expected competitor Globex recorded, got %v", got.Competitors)
	}
}

func TestClassifyIndustryLenientVsStrict(t *testing.T) {
	title := "New tariffs hit semiconductors"
	body := "Import duties take effect next month."

	lenient := newClassifier(scoring.ModeLenient).Classify(title, body)
	if !lenient.Relevant {
		t.Error("industry mention should be relevant in lenient mode")
	}

	strict := newClassifier(scoring.ModeStrict).Classify(title, body)
	if strict.Relevant {
		t.Error("industry mention alone should not be relevant in strict mode")
	}
	if !strings.Contains(strict.Reason, "Industry mention: semiconductors") {
		t.Errorf("strict mode should still record the industry reason, got %q", strict.Reason)
	}
}

func TestClassifyProductDensity(t *testing.T) {
	title := "Benchmark roundup"
	body := "The new processor edges out last year's gpu in every test."

	lenient := newClassifier(scoring.ModeLenient).Classify(title, body)
	if !lenient.Relevant {
		t.Error("two product keywords should be relevant in lenient mode")
	}

	strict := newClassifier(scoring.ModeStrict).Classify(title, body)
	if strict.Relevant {
		t.Error("product keywords alone should not flip strict mode")
	}
}

func TestClassifySingleProductNotEnough(t *testing.T) {
	c := newClassifier(scoring.ModeLenient)
	got := c.Classify("Benchmark roundup", "The new processor was reviewed.")
	if got.Relevant {
		t.Error("one product keyword should not be relevant")
	}
	if got.Reason != "No direct relevance found" {
		t.Errorf("expected default reason, got %q", got.Reason)
	}
}

func TestClassifyRiskWithCompanyContext(t *testing.T) {
	c := newClassifier(scoring.ModeStrict)
	got := c.Classify("Acme Corp under investigation", "Regulators opened a formal case.")
	if !strings.Contains(got.Reason, "Risk keywords with company context") {
		t.Errorf("expected risk-with-context reason, got %q", got.Reason)
	}
}

func TestClassifyRiskWithoutContextIgnored(t *testing.T) {
	c := newClassifier(scoring.ModeLenient)
	got := c.Classify("Industry lawsuit roundup", "Several firms face litigation.")
	if strings.Contains(got.Reason, "Risk keywords with company context") {
		t.Errorf("risk keywords without company context should not be cited, got %q", got.Reason)
	}
}

func TestClassifyReasonJoining(t *testing.T) {
	c := newClassifier(scoring.ModeStrict)
	got := c.Classify("Acme Corp and Globex trade lawsuits", "The semiconductors dispute widens.")
	parts := strings.Split(got.Reason, " | ")
	if len(parts) < 3 {
		t.Errorf("expected multiple reasons joined with ' | ', got %q", got.Reason)
	}
	if !strings.HasPrefix(got.Reason, "Direct mention of Acme Corp") {
		t.Errorf("primary signal should lead, got %q", got.Reason)
	}
}
