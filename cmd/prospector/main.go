package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/amosroger91/AI-Marketing-Agent/internal/business"
	"github.com/amosroger91/AI-Marketing-Agent/internal/config"
	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
	"github.com/amosroger91/AI-Marketing-Agent/internal/fingerprint"
	"github.com/amosroger91/AI-Marketing-Agent/internal/metrics"
	"github.com/amosroger91/AI-Marketing-Agent/internal/osint"
	"github.com/amosroger91/AI-Marketing-Agent/internal/outreach"
	"github.com/amosroger91/AI-Marketing-Agent/internal/pipeline"
	"github.com/amosroger91/AI-Marketing-Agent/internal/report"
	"github.com/amosroger91/AI-Marketing-Agent/internal/scoring"
	"github.com/amosroger91/AI-Marketing-Agent/internal/verify"
	"github.com/amosroger91/AI-Marketing-Agent/internal/wpscan"
	"golang.org/x/time/rate"
)

func main() {
	var (
		city      = flag.String("city", "", "city to process (required)")
		state     = flag.String("state", "", "state abbreviation (required)")
		input     = flag.String("input", "", "business CSV path (overrides the data dir convention)")
		withXLSX  = flag.Bool("xlsx", false, "also write an XLSX report")
		withMails = flag.Bool("emails", false, "also write outreach emails for CONTACT/MAYBE prospects")
	)
	flag.Parse()

	if *city == "" || *state == "" {
		fmt.Fprintln(os.Stderr, "usage: prospector -city \"Fort Smith\" -state AR [-input file.csv] [-xlsx] [-emails]")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	inputPath := *input
	if inputPath == "" {
		inputPath = filepath.Join(cfg.Output.DataDir, business.CityFilename(*city, *state))
	}
	businesses, err := business.LoadCSV(inputPath)
	if err != nil {
		logger.Fatal("Failed to load business data", zap.String("path", inputPath), zap.Error(err))
	}
	logger.Info("Business data loaded",
		zap.String("city", *city),
		zap.String("state", *state),
		zap.Int("businesses", len(businesses)),
	)

	p := buildPipeline(cfg, logger)

	logger.Info("Starting verified crawl")
	prospects := p.Run(ctx, businesses)

	slug := citySlug(*city, *state)
	csvPath := filepath.Join(cfg.Output.Dir, slug+"_verified_results.csv")
	if err := report.WriteCSV(csvPath, prospects); err != nil {
		logger.Fatal("Failed to write CSV report", zap.Error(err))
	}
	logger.Info("CSV report written", zap.String("path", csvPath))

	if *withXLSX {
		xlsxPath := filepath.Join(cfg.Output.Dir, slug+"_verified_results.xlsx")
		if err := report.WriteXLSX(xlsxPath, prospects); err != nil {
			logger.Fatal("Failed to write XLSX report", zap.Error(err))
		}
		logger.Info("XLSX report written", zap.String("path", xlsxPath))
	}

	if *withMails {
		if err := writeOutreach(cfg, slug, prospects, logger); err != nil {
			logger.Fatal("Failed to write outreach emails", zap.Error(err))
		}
	}

	summary := report.BuildSummary(prospects)
	if err := report.WriteSummary(os.Stdout, summary); err != nil {
		logger.Fatal("Failed to write summary", zap.Error(err))
	}
	logger.Info("Run complete",
		zap.Int("processed", summary.Total),
		zap.Int("verified", summary.Verified),
		zap.Int("contact", summary.Contact),
	)
}

func buildPipeline(cfg *config.Config, logger *zap.Logger) *pipeline.Pipeline {
	verifier := verify.NewVerifier(verify.Options{
		Timeout:     cfg.Verify.Timeout,
		Retries:     cfg.Verify.Retries,
		RetryDelay:  cfg.Verify.RetryDelay,
		RequireDNS:  cfg.Verify.RequireDNS,
		RequireHTTP: cfg.Verify.RequireHTTP,
		RateLimit:   rate.Limit(cfg.Verify.RateLimit),
	}, logger)

	var scanner wpscan.Scanner = wpscan.Noop{}
	if cfg.Scanner.Enabled {
		scanner = wpscan.NewExecScanner(cfg.Scanner.Binary, cfg.Scanner.Timeout, logger)
	}
	detector := fingerprint.NewDetector(scanner, logger)

	var assessor scoring.Assessor
	if cfg.Assessor.Enabled && cfg.Assessor.Command != "" {
		assessor = scoring.NewExecAssessor(cfg.Assessor.Command, cfg.Assessor.Timeout, logger)
	}

	return pipeline.New(
		pipeline.Config{
			Workers:       cfg.Pipeline.Workers,
			GuessFallback: cfg.Pipeline.GuessFallback,
			EnableOSINT:   cfg.Pipeline.EnableOSINT,
		},
		pipeline.Deps{
			Verifier: verifier,
			Detector: detector,
			Scorer:   scoring.NewScorer(cfg.ExcludeKeywords),
			Assessor: assessor,
			Gatherer: osint.NewGatherer(cfg.Verify.Timeout, logger),
			Metrics:  metrics.NewCollector(prometheus.DefaultRegisterer),
			Logger:   logger,
		},
	)
}

func writeOutreach(cfg *config.Config, slug string, prospects []core.ScoredProspect, logger *zap.Logger) error {
	sender := outreach.Sender{
		Name:  cfg.Outreach.SenderName,
		Phone: cfg.Outreach.SenderPhone,
		Email: cfg.Outreach.SenderEmail,
	}
	emails, err := outreach.NewGenerator().GenerateBatch(prospects, sender)
	if err != nil {
		return err
	}
	path := filepath.Join(cfg.Output.Dir, slug+"_outreach_emails.txt")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	for _, email := range emails {
		fmt.Fprintf(f, "=== %s (%s) [%s] ===\n", email.Company, email.Domain, email.TemplateUsed)
		fmt.Fprintf(f, "Subject: %s\n\n%s\n\n", email.Subject, email.Body)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("Outreach emails written", zap.String("path", path), zap.Int("emails", len(emails)))
	return nil
}

func citySlug(city, state string) string {
	slug := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	}
	return slug(city) + "_" + slug(state)
}
