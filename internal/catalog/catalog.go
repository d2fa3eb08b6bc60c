// Package catalog holds the compiled-in guide content: validation methods,
// the idea-to-launch timeline and the decision framework. Every accessor
// returns copies so callers cannot mutate the shared tables.
package catalog

import (
	"fmt"
	"strings"

	"validation-guide/internal/models"
)

// TimelineTitle is the heading of the roadmap section
const TimelineTitle = "Mobile App Development: Idea to Launch"

// Section is a titled group of methods sharing a category
type Section struct {
	Category models.Category       `json:"category"`
	Title    string                `json:"title"`
	Methods  []models.MethodRecord `json:"methods"`
}

// Methods returns every validation method in display order
func Methods() []models.MethodRecord {
	out := make([]models.MethodRecord, len(methods))
	for i, m := range methods {
		out[i] = copyMethod(m)
	}
	return out
}

// Phases returns the timeline phases in order
func Phases() []models.TimelinePhaseRecord {
	out := make([]models.TimelinePhaseRecord, len(phases))
	for i, p := range phases {
		items := make([]models.TimelineItem, len(p.Items))
		for j, item := range p.Items {
			item.Points = append([]string(nil), item.Points...)
			items[j] = item
		}
		p.Items = items
		out[i] = p
	}
	return out
}

// DecisionGuides returns the risk-to-method recommendations
func DecisionGuides() []models.DecisionGuide {
	out := make([]models.DecisionGuide, len(decisionGuides))
	for i, g := range decisionGuides {
		g.Methods = append([]string(nil), g.Methods...)
		out[i] = g
	}
	return out
}

// RecognizedMethods returns the method names the classifier is allowed to report
func RecognizedMethods() []string {
	return append([]string(nil), recognizedMethods...)
}

// SectionTitle returns the heading used for a category
func SectionTitle(category models.Category) string {
	if title, ok := sectionTitles[category]; ok {
		return title
	}
	return string(category)
}

// ParseCategory converts user input into a Category
func ParseCategory(value string) (models.Category, error) {
	normalized := models.Category(strings.ToLower(strings.TrimSpace(value)))
	for _, c := range models.Categories {
		if c == normalized {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", value)
}

// FilterByCategory returns the methods belonging to category, preserving order
func FilterByCategory(list []models.MethodRecord, category models.Category) []models.MethodRecord {
	var out []models.MethodRecord
	for _, m := range list {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// GroupByCategory splits methods into sections in category order.
// Categories with no methods are omitted.
func GroupByCategory(list []models.MethodRecord) []Section {
	var sections []Section
	for _, c := range models.Categories {
		matched := FilterByCategory(list, c)
		if len(matched) == 0 {
			continue
		}
		sections = append(sections, Section{
			Category: c,
			Title:    SectionTitle(c),
			Methods:  matched,
		})
	}
	return sections
}

// FindMethod looks a method up by id
func FindMethod(id string) (models.MethodRecord, bool) {
	for _, m := range methods {
		if m.ID == id {
			return copyMethod(m), true
		}
	}
	return models.MethodRecord{}, false
}

func copyMethod(m models.MethodRecord) models.MethodRecord {
	m.Details = append([]string(nil), m.Details...)
	return m
}
