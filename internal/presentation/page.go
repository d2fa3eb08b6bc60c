// Package presentation turns catalog data, toggle state and the widget's
// view into render-ready structures shared by the HTML page and the TUI.
package presentation

import (
	"fmt"

	"validation-guide/internal/capture"
	"validation-guide/internal/catalog"
	"validation-guide/internal/models"
)

const (
	PageTitle   = "Project Validation Guide"
	PageTagline = "Master the art of de-risking your ideas. Explore 20+ proven methods and use AI to identify techniques from screenshots."
)

// Badge is the rendered form of a confidence tier
type Badge struct {
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Class string `json:"class"`
}

// MethodView is a method card with its open state
type MethodView struct {
	models.MethodRecord
	Expanded bool `json:"expanded"`
}

// SectionView is a category section of method cards
type SectionView struct {
	Category models.Category `json:"category"`
	Title    string          `json:"title"`
	Methods  []MethodView    `json:"methods"`
}

// PhaseView is a timeline phase with its open state
type PhaseView struct {
	models.TimelinePhaseRecord
	Expanded bool `json:"expanded"`
	Last     bool `json:"last"`
}

// AnalyzerPanel is the capture widget as the page shows it
type AnalyzerPanel struct {
	capture.View
	Badge       *Badge `json:"badge,omitempty"`
	Analyzing   bool   `json:"analyzing"`
	Placeholder bool   `json:"placeholder"`
}

// Page is everything needed to render the guide
type Page struct {
	Title         string                 `json:"title"`
	Tagline       string                 `json:"tagline"`
	Analyzer      AnalyzerPanel          `json:"analyzer"`
	TimelineTitle string                 `json:"timeline_title"`
	Phases        []PhaseView            `json:"phases"`
	Sections      []SectionView          `json:"sections"`
	Guides        []models.DecisionGuide `json:"guides"`
}

// ConfidenceBadge returns the label, emoji and style class for a tier
func ConfidenceBadge(c models.Confidence) Badge {
	badge := Badge{Label: fmt.Sprintf("%s confidence", c), Class: "badge-" + string(c)}
	switch c {
	case models.ConfidenceHigh:
		badge.Emoji = "🎯"
	case models.ConfidenceMedium:
		badge.Emoji = "🤔"
	case models.ConfidenceLow:
		badge.Emoji = "❓"
	default:
		badge.Class = "badge-unknown"
	}
	return badge
}

// BuildAnalyzerPanel derives the analyzer panel from a widget view
func BuildAnalyzerPanel(view capture.View) AnalyzerPanel {
	panel := AnalyzerPanel{
		View:        view,
		Analyzing:   view.State == capture.StateAnalyzing,
		Placeholder: view.Result == nil && view.Error == "",
	}
	if view.Result != nil {
		badge := ConfidenceBadge(view.Result.Confidence)
		panel.Badge = &badge
	}
	return panel
}

// BuildPage assembles the page from the catalog, toggles and widget view
func BuildPage(toggles *ToggleState, view capture.View) Page {
	phases := catalog.Phases()
	phaseViews := make([]PhaseView, len(phases))
	for i, p := range phases {
		phaseViews[i] = PhaseView{
			TimelinePhaseRecord: p,
			Expanded:            toggles.Expanded(p.ID),
			Last:                i == len(phases)-1,
		}
	}

	var sections []SectionView
	for _, s := range catalog.GroupByCategory(catalog.Methods()) {
		methodViews := make([]MethodView, len(s.Methods))
		for i, m := range s.Methods {
			methodViews[i] = MethodView{MethodRecord: m, Expanded: toggles.Expanded(m.ID)}
		}
		sections = append(sections, SectionView{Category: s.Category, Title: s.Title, Methods: methodViews})
	}

	return Page{
		Title:         PageTitle,
		Tagline:       PageTagline,
		Analyzer:      BuildAnalyzerPanel(view),
		TimelineTitle: catalog.TimelineTitle,
		Phases:        phaseViews,
		Sections:      sections,
		Guides:        catalog.DecisionGuides(),
	}
}
