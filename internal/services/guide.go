package services

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"validation-guide/internal/catalog"
	"validation-guide/internal/helpers"
	"validation-guide/internal/models"
)

// GuideService renders guide content for the command line
type GuideService struct {
	wordWrap int
}

// NewGuideService creates a new guide service
func NewGuideService(wordWrap int) *GuideService {
	if wordWrap <= 0 {
		wordWrap = 80
	}
	return &GuideService{wordWrap: wordWrap}
}

// DisplaySections displays grouped methods. Details are shown only when expanded is set.
func (s *GuideService) DisplaySections(sections []catalog.Section, expanded bool) {
	for _, section := range sections {
		helpers.PrintTitle("%s", section.Title)
		helpers.PrintSeparator()

		for _, method := range section.Methods {
			helpers.PrintInfo("%s", method.Title)
			helpers.PrintMuted(1, "%s", method.Description)
			if expanded {
				for _, detail := range method.Details {
					helpers.PrintText(2, "• %s", detail)
				}
			}
		}
		helpers.PrintSeparator()
	}

	total := 0
	for _, section := range sections {
		total += len(section.Methods)
	}
	helpers.PrintInfo("Summary: %d sections, %d methods", len(sections), total)
}

// DisplayTimeline displays every phase with its work items and deliverables
func (s *GuideService) DisplayTimeline(phases []models.TimelinePhaseRecord) {
	helpers.PrintTitle("%s", catalog.TimelineTitle)
	helpers.PrintSeparator()

	for _, phase := range phases {
		helpers.PrintInfo("%s (%s)", phase.Title, phase.Duration)
		helpers.PrintMuted(1, "%s", phase.Description)

		for _, item := range phase.Items {
			helpers.PrintText(1, "%s", item.Title)
			for _, point := range item.Points {
				helpers.PrintText(2, "• %s", point)
			}
			helpers.PrintText(2, "Deliverable: %s", item.Deliverable)
		}
		helpers.PrintSeparator()
	}
}

// DisplayResult displays an analysis result
func (s *GuideService) DisplayResult(result *models.AnalysisResult) {
	helpers.PrintTitle("Detected Method: %s", result.Method)
	helpers.PrintConfidence(result.Confidence)
	helpers.PrintSeparator()
	helpers.PrintInfo("Why this method?")
	helpers.PrintText(1, "%s", result.Reasoning)
	helpers.PrintInfo("Recommended Next Steps")
	helpers.PrintText(1, "%s", result.Suggestions)
}

// MarkdownSummary builds a markdown document of the whole guide
func (s *GuideService) MarkdownSummary(sections []catalog.Section, phases []models.TimelinePhaseRecord, guides []models.DecisionGuide) string {
	var summary strings.Builder

	summary.WriteString("# Project Validation Guide\n\n")

	summary.WriteString(fmt.Sprintf("## %s\n\n", catalog.TimelineTitle))
	for _, phase := range phases {
		summary.WriteString(fmt.Sprintf("### %s\n\n", phase.Title))
		summary.WriteString(fmt.Sprintf("**Duration:** %s\n\n", phase.Duration))
		summary.WriteString(fmt.Sprintf("*%s*\n\n", phase.Description))

		for _, item := range phase.Items {
			summary.WriteString(fmt.Sprintf("#### %s\n\n", item.Title))
			for _, point := range item.Points {
				summary.WriteString(fmt.Sprintf("- %s\n", point))
			}
			summary.WriteString(fmt.Sprintf("\n**Deliverable:** %s\n\n", item.Deliverable))
		}
	}

	for _, section := range sections {
		summary.WriteString(fmt.Sprintf("## %s\n\n", section.Title))
		for _, method := range section.Methods {
			summary.WriteString(fmt.Sprintf("### %s\n\n", method.Title))
			summary.WriteString(fmt.Sprintf("%s\n\n", method.Description))
			for _, detail := range method.Details {
				summary.WriteString(fmt.Sprintf("- %s\n", detail))
			}
			summary.WriteString("\n")
		}
	}

	if len(guides) > 0 {
		summary.WriteString("## Ready to Validate?\n\n")
		for _, guide := range guides {
			summary.WriteString(fmt.Sprintf("- **%s:** %s Use %s.\n", guide.Title, guide.Advice, joinBold(guide.Methods)))
		}
	}

	return summary.String()
}

// RenderMarkdown renders markdown for the terminal
func (s *GuideService) RenderMarkdown(markdown string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(s.wordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

func joinBold(items []string) string {
	bold := make([]string, len(items))
	for i, item := range items {
		bold[i] = "**" + item + "**"
	}
	return strings.Join(bold, " and ")
}
