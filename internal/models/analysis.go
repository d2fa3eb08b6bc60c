package models

// Confidence is the model's self-reported certainty tier
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Confidences lists the allowed confidence values
var Confidences = []Confidence{ConfidenceHigh, ConfidenceMedium, ConfidenceLow}

// Valid reports whether c is one of the allowed tiers
func (c Confidence) Valid() bool {
	for _, allowed := range Confidences {
		if c == allowed {
			return true
		}
	}
	return false
}

// AnalysisResult represents the classification of an uploaded image
type AnalysisResult struct {
	Method      string     `json:"method"`
	Confidence  Confidence `json:"confidence"`
	Reasoning   string     `json:"reasoning"`
	Suggestions string     `json:"suggestions"`
}
