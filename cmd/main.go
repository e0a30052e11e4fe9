package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"adpilot/internal/adapter/adplatform"
	"adpilot/internal/adapter/gemini"
	httpadapter "adpilot/internal/adapter/http"
	"adpilot/internal/adapter/ollama"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/config"
	"adpilot/internal/config/configs"
	"adpilot/internal/core/compliance"
	"adpilot/internal/core/planner"
	"adpilot/internal/core/port"
	"adpilot/internal/db"
	"adpilot/internal/telemetry"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "adpilot",
	Short:         "Generate, validate and sync search ad campaigns",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			slog.Error("failed to load config", slog.Any("error", err))
			return err
		}
		logger = slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))
		return nil
	},
}

func init() {
	migrateCmd.Flags().Bool("down", false, "roll back every migration instead of applying them")
	checkCmd.Flags().String("context", compliance.ContextCampaignSpec, "compliance context reported in reasons")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, checkCmd)
}

func loadValidator() (*compliance.Validator, error) {
	var (
		p   *compliance.Policy
		err error
	)
	if cfg.Compliance.PolicyPath != "" {
		p, err = compliance.LoadPolicy(cfg.Compliance.PolicyPath)
	} else {
		p, err = compliance.DefaultPolicy()
	}
	if err != nil {
		return nil, fmt.Errorf("load compliance policy: %w", err)
	}
	return compliance.New(p)
}

// newGenerator picks the text generation backend. An unknown provider is an
// error; "none" yields a generator that is never configured.
func newGenerator(ctx context.Context, c configs.GenAI) (port.TextGenerator, error) {
	switch strings.ToLower(c.Provider) {
	case "gemini":
		return gemini.New(ctx, c)
	case "ollama":
		return ollama.New(c.OllamaURL, c.Model, c.Temperature, c.Timeout), nil
	case "none", "":
		c.APIKey = ""
		return gemini.New(ctx, c)
	default:
		return nil, fmt.Errorf("unknown generation provider %q", c.Provider)
	}
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return err
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return err
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return err
			}
		}

		validator, err := loadValidator()
		if err != nil {
			return err
		}
		gen, err := newGenerator(ctx, cfg.GenAI)
		if err != nil {
			return err
		}
		metrics := telemetry.New()

		expander := planner.NewKeywordExpander(validator, cfg.Pipeline.Modifiers)
		plans, err := planner.NewAdPlanBuilder(validator, expander,
			planner.DefaultPlanConfig(cfg.Pipeline.LandingBaseURL, validator.Policy().NegativeKeywords))
		if err != nil {
			return fmt.Errorf("ad plan builder: %w", err)
		}

		campaigns := postgres.NewCampaignRepository(pool)
		runs := postgres.NewRunRepository(pool)
		pipeline := usecase.NewArtifactPipeline(postgres.NewArtifactRepository(pool), logger, metrics)
		platform := adplatform.New(cfg.Ads, logger, metrics)

		specs := usecase.NewCampaignSpecGenerator(gen, validator, campaigns, usecase.SpecDefaults{
			Timeout:     cfg.GenAI.Timeout,
			BudgetDaily: cfg.Pipeline.DefaultBudget,
			TargetCPA:   cfg.Pipeline.DefaultTargetCPA,
			Geo:         cfg.Pipeline.DefaultGeo,
		}, logger, metrics)
		landing := usecase.NewLandingPageGenerator(gen, validator, cfg.GenAI.Timeout, logger, metrics)
		uploader := usecase.NewConversionUploader(platform, usecase.ConversionConfig{
			ActionName: cfg.Conversion.ActionName,
			Value:      cfg.Conversion.Value,
			Currency:   cfg.Conversion.Currency,
			Timeout:    cfg.Ads.Timeout,
		}, logger, metrics)

		handler := httpadapter.NewHandler(httpadapter.Services{
			Campaigns: usecase.NewCampaignUseCase(campaigns, runs, pipeline, validator, specs, plans, landing, logger),
			Sync: usecase.NewAdPlatformSync(platform, runs, pipeline, usecase.SyncConfig{
				StepTimeout: cfg.Ads.Timeout,
				CPCBid:      cfg.Ads.CPCBid,
			}, logger, metrics),
			Metrics: usecase.NewMetricsReconciler(platform, runs, postgres.NewMetricsRepository(pool), cfg.Pipeline.MetricsWindowDays, logger),
			Leads:   usecase.NewLeadUseCase(postgres.NewLeadRepository(pool), runs, uploader, logger),
		}, validator, metrics, logger)

		if !platform.IsConfigured() {
			logger.Warn("ad platform not configured, live sync disabled",
				slog.Any("missing", platform.MissingSettings()))
		}
		if !gen.IsConfigured() {
			logger.Warn("text generator not configured, using templates",
				slog.String("provider", cfg.GenAI.Provider))
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler: handler.Router(),
		}
		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err = <-errCh:
			if err != nil {
				logger.Error("server error", slog.Any("error", err))
				return err
			}
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err = srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}
		if err = uploader.Wait(shutdownCtx); err != nil {
			logger.Warn("pending conversion uploads abandoned", slog.Any("error", err))
		}
		logger.Info("server gracefully stopped")
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		down, _ := cmd.Flags().GetBool("down")
		if down {
			if err := db.Rollback(cfg.Psql.Addr.String()); err != nil {
				logger.Error("rollback error", slog.Any("error", err))
				return err
			}
			logger.Info("migrations rolled back")
			return nil
		}
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return err
		}
		logger.Info("migrations applied successfully")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo campaign with a DRAFT run",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return err
		}
		defer pool.Close()
		if err = db.Seed(cmd.Context(), pool); err != nil {
			return err
		}
		logger.Info("demo campaign seeded", slog.String("spec_id", db.DemoSpecID), slog.String("run_id", db.DemoRunID))
		return nil
	},
}

// checkCmd validates copy against the policy without touching the database.
// Each argument, or each stdin line when there are none, is one text.
var checkCmd = &cobra.Command{
	Use:   "check [text...]",
	Short: "Check ad copy against the compliance policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		validator, err := loadValidator()
		if err != nil {
			return err
		}
		textCtx, _ := cmd.Flags().GetString("context")

		texts := args
		if len(texts) == 0 {
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				if line := strings.TrimSpace(sc.Text()); line != "" {
					texts = append(texts, line)
				}
			}
			if err = sc.Err(); err != nil {
				return err
			}
		}

		failed := 0
		out := cmd.OutOrStdout()
		for _, text := range texts {
			res := validator.Validate(text, textCtx)
			fmt.Fprintf(out, "%s\t%s\n", res.Status, text)
			for _, r := range res.Reasons {
				fmt.Fprintf(out, "\t- %s\n", r)
			}
			if !res.Passed() {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d texts failed compliance", failed, len(texts))
		}
		return nil
	},
}
