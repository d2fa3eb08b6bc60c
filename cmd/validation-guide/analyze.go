package main

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"validation-guide/internal/capture"
	"validation-guide/internal/helpers"
	"validation-guide/internal/services"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNoClipboardImage = errors.New("clipboard holds neither an image data URI nor an image file path")

func newAnalyzeCmd() *cobra.Command {
	var analyzeCmd = &cobra.Command{
		Use:   "analyze [image-file]",
		Short: "Identify the validation method shown in a screenshot",
		Long:  "Send a screenshot to Gemini and print the detected method, confidence and next steps",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().BoolP("paste", "p", false, "Read the image from the clipboard")
	return analyzeCmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	paste, _ := cmd.Flags().GetBool("paste")

	var (
		src capture.Source
		err error
	)
	switch {
	case paste:
		var text string
		text, err = clipboard.ReadAll()
		if err != nil {
			return fmt.Errorf("failed to read clipboard: %w", err)
		}
		src, err = sourceFromClipboard(text)
	case len(args) == 1:
		src, err = sourceFromFile(capture.ChannelFile, args[0])
	default:
		return errors.New("an image file or --paste is required")
	}
	if err != nil {
		return err
	}

	helpers.PrintTitle("Analyzing Screenshot")
	helpers.PrintInfo("Input: %s (%s)", src.Name, src.MediaType)

	widget := capture.NewWidget(newAIService())
	if err := <-widget.AcceptImage(src); err != nil {
		if errors.Is(err, capture.ErrNotImage) {
			return errors.New(capture.NotImageMessage)
		}
		return fmt.Errorf("failed to read image: %w", err)
	}

	if err := widget.Analyze(cmd.Context()); err != nil {
		logger.Debug("analysis failed", zap.Error(err))
		if errors.Is(err, services.ErrAnalysisFailed) {
			return errors.New(widget.Snapshot().Error)
		}
		return err
	}

	services.NewGuideService(0).DisplayResult(widget.Snapshot().Result)
	return nil
}

// sourceFromClipboard accepts either a copied data URI or a copied file path
func sourceFromClipboard(text string) (capture.Source, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "data:") {
		return capture.SourceFromDataURI(capture.ChannelPaste, "clipboard", text)
	}
	if text != "" && helpers.FileExists(text) {
		return sourceFromFile(capture.ChannelPaste, text)
	}
	return capture.Source{}, errNoClipboardImage
}

func sourceFromFile(channel capture.Channel, path string) (capture.Source, error) {
	data, err := helpers.ReadFile(path)
	if err != nil {
		return capture.Source{}, err
	}
	return capture.Source{
		Channel:   channel,
		Name:      filepath.Base(path),
		MediaType: helpers.DetectMediaType(path, data),
		Body:      bytes.NewReader(data),
	}, nil
}
