package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"validation-guide/internal/models"
)

func TestMethodsHaveUniqueIDsAndKnownCategories(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Methods() {
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
		assert.Contains(t, models.Categories, m.Category)
		assert.NotEmpty(t, m.Details)
	}
	assert.Len(t, seen, 12)
}

func TestPhaseIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Phases() {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		for _, item := range p.Items {
			assert.NotEmpty(t, item.Deliverable)
		}
	}
	assert.Len(t, seen, 5)
}

func TestAccessorsReturnCopies(t *testing.T) {
	list := Methods()
	list[0].Title = "mutated"
	list[0].Details[0] = "mutated"

	phasesCopy := Phases()
	phasesCopy[0].Items[0].Points[0] = "mutated"

	fresh := Methods()
	assert.Equal(t, "Proof of Concept (POC)", fresh[0].Title)
	assert.Equal(t, "Focuses on technical feasibility.", fresh[0].Details[0])
	assert.Equal(t, "Define core problem.", Phases()[0].Items[0].Points[0])
}

func TestGroupByCategory(t *testing.T) {
	sections := GroupByCategory(Methods())
	require.Len(t, sections, len(models.Categories))

	for i, s := range sections {
		assert.Equal(t, models.Categories[i], s.Category)
		for _, m := range s.Methods {
			assert.Equal(t, s.Category, m.Category)
		}
	}
	assert.Equal(t, "Business & Implementation", sections[2].Title)
	assert.Equal(t, []string{"landing-page", "concierge-mvp", "wizard-of-oz"}, ids(sections[1].Methods))
}

func TestGroupByCategoryOmitsEmptyCategories(t *testing.T) {
	only := FilterByCategory(Methods(), models.CategoryUX)
	sections := GroupByCategory(only)
	require.Len(t, sections, 1)
	assert.Equal(t, models.CategoryUX, sections[0].Category)
	assert.Empty(t, GroupByCategory(nil))
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Category
		wantErr bool
	}{
		{in: "technical", want: models.CategoryTechnical},
		{in: " UX ", want: models.CategoryUX},
		{in: "Testing", want: models.CategoryTesting},
		{in: "finance", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecognizedMethods(t *testing.T) {
	names := RecognizedMethods()
	assert.Len(t, names, 20)
	assert.Contains(t, names, "Landing Page Test")
	assert.Contains(t, names, "Sandbox Testing")
}

func TestFindMethod(t *testing.T) {
	m, ok := FindMethod("pilot")
	require.True(t, ok)
	assert.Equal(t, "Pilot Program", m.Title)

	_, ok = FindMethod("missing")
	assert.False(t, ok)
}

func ids(list []models.MethodRecord) []string {
	out := make([]string, len(list))
	for i, m := range list {
		out[i] = m.ID
	}
	return out
}
