package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/enrich"
	"github.com/jonathan/resume-analyzer/internal/jobsearch"
	"github.com/jonathan/resume-analyzer/internal/match"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/profile"
	"github.com/jonathan/resume-analyzer/internal/store"
)

// buildRunner wires the pipeline from configuration. Collaborators
// without credentials are simply left out; the pipeline degrades
// gracefully around them. The returned cleanup releases held resources.
func buildRunner(ctx context.Context, cfg config.Config) (*pipeline.Runner, func(), error) {
	chain := profile.NewChain(nil,
		profile.NewPremiumProvider("premium-a", cfg.PremiumAEndpoint, cfg.PremiumAKey),
		profile.NewPremiumProvider("premium-b", cfg.PremiumBEndpoint, cfg.PremiumBKey),
	)

	cleanups := []func(){}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	var enricher pipeline.Enricher
	if cfg.APIKey != "" {
		client, err := enrich.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create enrichment client: %w", err)
		}
		cleanups = append(cleanups, func() { _ = client.Close() })

		adapter, err := enrich.NewAdapter(client)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		enricher = adapter
	}

	var jobs pipeline.JobSearcher
	if cfg.JobSearchEndpoint != "" {
		jobs = jobsearch.NewClient(cfg.JobSearchEndpoint, cfg.JobSearchKey)
	}

	var saver pipeline.Saver
	if cfg.DatabaseURL != "" {
		st, err := store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			// Persistence is best-effort; analysis still works without it.
			log.Printf("database unavailable, continuing without persistence: %v", err)
		} else {
			cleanups = append(cleanups, st.Close)
			saver = st
		}
	}

	runner := pipeline.NewRunner(
		chain,
		match.NewMatcher(match.DefaultMatcherConfig()),
		match.NewAnalyzer(nil),
		enricher,
		jobs,
		saver,
	)
	return runner, cleanup, nil
}

// resolveConfig layers a config file (if given) over environment
// variables.
func resolveConfig(path string) (config.Config, error) {
	cfg := config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}
	merged := cfg.MergeWithDefaults(config.FromEnv())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}
