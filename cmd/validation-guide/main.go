package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"validation-guide/internal/catalog"
	"validation-guide/internal/config"
	"validation-guide/internal/helpers"
	"validation-guide/internal/logging"
	"validation-guide/internal/repositories"
	"validation-guide/internal/server"
	"validation-guide/internal/services"
	"validation-guide/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		helpers.PrintError("Error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "validation-guide",
		Short: "Validation Guide - project validation methods with AI screenshot analysis",
		Long: `Validation Guide catalogs project-validation methods (POC, MVP, landing
page tests and more), walks through a phased roadmap, and identifies the
method shown in a screenshot using Gemini.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the guide over HTTP",
			Long:  "Render the guide page and its JSON API until interrupted",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		newCatalogCmd(),
		&cobra.Command{
			Use:   "timeline",
			Short: "Print the phased roadmap",
			Args:  cobra.NoArgs,
			RunE:  runTimeline,
		},
		&cobra.Command{
			Use:   "browse",
			Short: "Browse the guide in an interactive terminal UI",
			Args:  cobra.NoArgs,
			RunE:  runBrowse,
		},
		newAnalyzeCmd(),
	)

	return rootCmd
}

func newCatalogCmd() *cobra.Command {
	var catalogCmd = &cobra.Command{
		Use:   "catalog",
		Short: "Print validation methods grouped by category",
		Args:  cobra.NoArgs,
		RunE:  runCatalog,
	}
	catalogCmd.Flags().String("category", "", "Only show one category (technical, market, business, ux, testing)")
	catalogCmd.Flags().Bool("details", false, "Show method details")
	catalogCmd.Flags().Bool("markdown", false, "Render the full guide as markdown")
	return catalogCmd
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err = logging.New(cfg.Logging, verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger.Debug("configuration loaded",
		zap.String("config", configFile),
		zap.String("command", cmd.Name()),
		zap.Bool("credential", cfg.Gemini.HasCredential()))
	return nil
}

func newAIService() *services.AIService {
	repo := repositories.NewGeminiRepository(&cfg.Gemini)
	return services.NewAIService(&cfg.Gemini, repo, logger)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if !cfg.Gemini.HasCredential() {
		helpers.PrintWarning("API_KEY is not set: analysis requests will fail")
	}

	srv, err := server.New(&cfg.Server, newAIService(), logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	helpers.PrintTitle("Serving Validation Guide")
	helpers.PrintInfo("Listening on http://%s", cfg.Server.Addr())

	if err := srv.Run(cmd.Context()); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	helpers.PrintSuccess("Server stopped")
	return nil
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	categoryFlag, _ := cmd.Flags().GetString("category")
	details, _ := cmd.Flags().GetBool("details")
	markdown, _ := cmd.Flags().GetBool("markdown")

	methods := catalog.Methods()
	if categoryFlag != "" {
		category, err := catalog.ParseCategory(categoryFlag)
		if err != nil {
			return err
		}
		methods = catalog.FilterByCategory(methods, category)
	}
	sections := catalog.GroupByCategory(methods)

	guide := services.NewGuideService(0)
	if markdown {
		out, err := guide.RenderMarkdown(guide.MarkdownSummary(sections, catalog.Phases(), catalog.DecisionGuides()))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	guide.DisplaySections(sections, details)
	return nil
}

func runTimeline(_ *cobra.Command, _ []string) error {
	services.NewGuideService(0).DisplayTimeline(catalog.Phases())
	return nil
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	program := tea.NewProgram(tui.New(nil), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
