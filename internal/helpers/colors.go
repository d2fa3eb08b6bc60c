package helpers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"validation-guide/internal/models"
)

// Out receives all CLI output; tests replace it with a buffer
var Out io.Writer = color.Output

var (
	// SuccessColor for successful operations
	SuccessColor = color.New(color.FgGreen, color.Bold)

	// ErrorColor for error messages
	ErrorColor = color.New(color.FgRed, color.Bold)

	// WarningColor for warning messages
	WarningColor = color.New(color.FgYellow, color.Bold)

	// InfoColor for informational messages
	InfoColor = color.New(color.FgCyan, color.Bold)

	// TitleColor for titles and headers
	TitleColor = color.New(color.FgMagenta, color.Bold)

	// MutedColor for secondary text such as descriptions
	MutedColor = color.New(color.FgHiBlack)
)

var confidenceColors = map[models.Confidence]*color.Color{
	models.ConfidenceHigh:   SuccessColor,
	models.ConfidenceMedium: WarningColor,
	models.ConfidenceLow:    ErrorColor,
}

var confidenceEmoji = map[models.Confidence]string{
	models.ConfidenceHigh:   "🎯",
	models.ConfidenceMedium: "🤔",
	models.ConfidenceLow:    "❓",
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	SuccessColor.Fprintf(Out, "✅ "+format+"\n", args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	ErrorColor.Fprintf(Out, "❌ "+format+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	WarningColor.Fprintf(Out, "⚠️  "+format+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	InfoColor.Fprintf(Out, "ℹ️  "+format+"\n", args...)
}

// PrintTitle prints a title
func PrintTitle(format string, args ...interface{}) {
	TitleColor.Fprintf(Out, "🎯 "+format+"\n", args...)
}

// PrintText prints plain indented text
func PrintText(indent int, format string, args ...interface{}) {
	fmt.Fprintf(Out, strings.Repeat("  ", indent)+format+"\n", args...)
}

// PrintMuted prints de-emphasized indented text
func PrintMuted(indent int, format string, args ...interface{}) {
	MutedColor.Fprintf(Out, strings.Repeat("  ", indent)+format+"\n", args...)
}

// PrintConfidence prints a colored "<tier> confidence" badge
func PrintConfidence(c models.Confidence) {
	clr, ok := confidenceColors[c]
	if !ok {
		clr = InfoColor
	}
	clr.Fprintf(Out, "%s %s confidence\n", confidenceEmoji[c], c)
}

// PrintSeparator prints a visual separator
func PrintSeparator() {
	fmt.Fprintln(Out, strings.Repeat("─", 80))
}
