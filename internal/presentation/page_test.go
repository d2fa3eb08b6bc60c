package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"validation-guide/internal/capture"
	"validation-guide/internal/models"
)

func TestCatalogTogglesHaveOneEntryPerItem(t *testing.T) {
	toggles := NewCatalogToggles()
	snapshot := toggles.Snapshot()

	assert.Len(t, snapshot, len(ItemIDs()))
	assert.True(t, snapshot["p1"])
	assert.False(t, snapshot["p2"])
	assert.False(t, snapshot["poc"])
}

func TestToggle(t *testing.T) {
	toggles := NewCatalogToggles()

	open, err := toggles.Toggle("poc")
	require.NoError(t, err)
	assert.True(t, open)
	assert.True(t, toggles.Expanded("poc"))

	open, err = toggles.Toggle("p1")
	require.NoError(t, err)
	assert.False(t, open)

	_, err = toggles.Toggle("nope")
	assert.ErrorIs(t, err, ErrUnknownItem)
	assert.ErrorIs(t, toggles.Set("nope", true), ErrUnknownItem)
	assert.NotContains(t, toggles.Snapshot(), "nope")
}

func TestBuildPageReflectsToggles(t *testing.T) {
	toggles := NewCatalogToggles()
	require.NoError(t, toggles.Set("landing-page", true))

	page := BuildPage(toggles, capture.NewWidget(nil).Snapshot())

	require.Len(t, page.Phases, 5)
	assert.True(t, page.Phases[0].Expanded)
	assert.False(t, page.Phases[1].Expanded)
	assert.True(t, page.Phases[4].Last)

	require.Len(t, page.Sections, 5)
	market := page.Sections[1]
	assert.Equal(t, "Market Validation Methods", market.Title)
	assert.True(t, market.Methods[0].Expanded)
	assert.False(t, market.Methods[1].Expanded)
	assert.Len(t, page.Guides, 3)

	assert.Equal(t, capture.StateEmpty, page.Analyzer.State)
	assert.True(t, page.Analyzer.Placeholder)
	assert.Nil(t, page.Analyzer.Badge)
}

func TestLandingPageResultShowsTitleAndHighBadge(t *testing.T) {
	view := capture.View{
		State: capture.StateResult,
		Result: &models.AnalysisResult{
			Method:      "Landing Page Test",
			Confidence:  models.ConfidenceHigh,
			Reasoning:   "Signup page.",
			Suggestions: "Drive traffic.",
		},
	}

	panel := BuildAnalyzerPanel(view)
	require.NotNil(t, panel.Badge)
	assert.Equal(t, "Landing Page Test", panel.Result.Method)
	assert.Equal(t, "high confidence", panel.Badge.Label)
	assert.False(t, panel.Placeholder)
}

func TestConfidenceBadge(t *testing.T) {
	tests := []struct {
		in    models.Confidence
		label string
		emoji string
		class string
	}{
		{models.ConfidenceHigh, "high confidence", "🎯", "badge-high"},
		{models.ConfidenceMedium, "medium confidence", "🤔", "badge-medium"},
		{models.ConfidenceLow, "low confidence", "❓", "badge-low"},
		{"odd", "odd confidence", "", "badge-unknown"},
	}
	for _, tt := range tests {
		got := ConfidenceBadge(tt.in)
		assert.Equal(t, Badge{Label: tt.label, Emoji: tt.emoji, Class: tt.class}, got)
	}
}

func TestErrorPanelHasNoPlaceholder(t *testing.T) {
	panel := BuildAnalyzerPanel(capture.View{State: capture.StateError, Error: "Failed to analyze image. Please try again."})
	assert.False(t, panel.Placeholder)
	assert.Nil(t, panel.Badge)
}
