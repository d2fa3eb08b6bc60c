package services

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"validation-guide/internal/catalog"
	"validation-guide/internal/helpers"
	"validation-guide/internal/models"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevNoColor := helpers.Out, color.NoColor
	helpers.Out = &buf
	color.NoColor = true
	t.Cleanup(func() {
		helpers.Out = prevOut
		color.NoColor = prevNoColor
	})
	return &buf
}

func TestDisplayResultShowsMethodAndBadge(t *testing.T) {
	out := captureOutput(t)

	NewGuideService(0).DisplayResult(&models.AnalysisResult{
		Method:      "Landing Page Test",
		Confidence:  models.ConfidenceHigh,
		Reasoning:   "Hero with email capture.",
		Suggestions: "Run paid traffic.",
	})

	text := out.String()
	assert.Contains(t, text, "Detected Method: Landing Page Test")
	assert.Contains(t, text, "high confidence")
	assert.Contains(t, text, "Hero with email capture.")
	assert.Contains(t, text, "Run paid traffic.")
}

func TestDisplaySectionsCollapsedHidesDetails(t *testing.T) {
	out := captureOutput(t)
	sections := catalog.GroupByCategory(catalog.Methods())

	NewGuideService(0).DisplaySections(sections, false)
	assert.Contains(t, out.String(), "Market Validation Methods")
	assert.NotContains(t, out.String(), "Validates value proposition.")
	assert.Contains(t, out.String(), "Summary: 5 sections, 12 methods")

	out.Reset()
	NewGuideService(0).DisplaySections(sections, true)
	assert.Contains(t, out.String(), "Validates value proposition.")
}

func TestDisplayTimelineShowsDeliverables(t *testing.T) {
	out := captureOutput(t)
	NewGuideService(0).DisplayTimeline(catalog.Phases())

	assert.Contains(t, out.String(), "Phase 5: Deployment & Launch (1-2 Weeks)")
	assert.Contains(t, out.String(), "Deliverable: Figma Prototype")
}

func TestMarkdownSummary(t *testing.T) {
	svc := NewGuideService(60)
	md := svc.MarkdownSummary(catalog.GroupByCategory(catalog.Methods()), catalog.Phases(), catalog.DecisionGuides())

	assert.Contains(t, md, "# Project Validation Guide")
	assert.Contains(t, md, "## Technical Testing Methods")
	assert.Contains(t, md, "**Deliverable:** Live App")
	assert.Contains(t, md, "- **Market Risk:** Focus on demand. Use **Landing Pages** and **Concierge MVPs**.")

	rendered, err := svc.RenderMarkdown(md)
	require.NoError(t, err)
	assert.Contains(t, rendered, "Landing Page Test")
}
