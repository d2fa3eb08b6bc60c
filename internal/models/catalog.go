package models

// Category groups validation methods into page sections
type Category string

const (
	CategoryTechnical Category = "technical"
	CategoryMarket    Category = "market"
	CategoryBusiness  Category = "business"
	CategoryUX        Category = "ux"
	CategoryTesting   Category = "testing"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryTechnical,
	CategoryMarket,
	CategoryBusiness,
	CategoryUX,
	CategoryTesting,
}

// MethodRecord represents a single validation method
type MethodRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
	Category    Category `json:"category"`
}

// TimelinePhaseRecord represents one phase of the idea-to-launch roadmap
type TimelinePhaseRecord struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Duration    string         `json:"duration"`
	Description string         `json:"description"`
	Items       []TimelineItem `json:"items"`
}

// TimelineItem represents a work item inside a phase
type TimelineItem struct {
	Title       string   `json:"title"`
	Points      []string `json:"points"`
	Deliverable string   `json:"deliverable"`
}

// DecisionGuide maps a kind of risk to the methods that address it
type DecisionGuide struct {
	Title   string   `json:"title"`
	Advice  string   `json:"advice"`
	Methods []string `json:"methods"`
}
