package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kevinflint-cs2/watchtower/internal/config"
	"github.com/kevinflint-cs2/watchtower/internal/domainlist"
	"github.com/kevinflint-cs2/watchtower/internal/harpoon"
)

func main() {
	var (
		configPath   = flag.String("config", "", "Optional YAML config file")
		approvedPath = flag.String("approved-domains", "", "Path to approved domains list (markdown, CSV, or plain text)")
		newPath      = flag.String("new-domains", "", "Path to newly registered domains list")
		outputPath   = flag.String("output", "", "Path to output candidates JSON file")
		threshold    = flag.Float64("similarity-threshold", harpoon.DefaultThreshold, "Similarity threshold in [0,1]")
		verbose      = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()
	setFlags := make(map[string]struct{})
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = struct{}{} })

	cfg, err := resolveConfig(*configPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if strings.TrimSpace(*approvedPath) != "" {
		cfg.ApprovedPath = *approvedPath
	}
	if strings.TrimSpace(*newPath) != "" {
		cfg.NewDomainsPath = *newPath
	}
	if strings.TrimSpace(*outputPath) != "" {
		cfg.OutputPath = *outputPath
	}
	if _, ok := setFlags["similarity-threshold"]; ok {
		cfg.SimilarityThreshold = *threshold
	}

	configureLogging(cfg.LogLevel, *verbose)

	runID := uuid.NewString()
	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"threshold": cfg.SimilarityThreshold,
	}).Info("starting domain squat scan")

	approved, err := domainlist.LoadFile(cfg.ApprovedPath)
	if err != nil {
		logrus.Fatalf("load approved domains: %v", err)
	}
	observed, err := domainlist.LoadFile(cfg.NewDomainsPath)
	if err != nil {
		logrus.Fatalf("load new domains: %v", err)
	}
	if len(approved) == 0 {
		logrus.Fatal("no approved domains loaded")
	}
	if len(observed) == 0 {
		logrus.Fatal("no new domains loaded")
	}

	scanner, err := harpoon.NewScanner(cfg.SimilarityThreshold)
	if err != nil {
		logrus.Fatalf("configure scanner: %v", err)
	}

	report, err := scanner.Scan(approved, observed)
	if err != nil {
		if errors.Is(err, harpoon.ErrNoApprovedDomains) || errors.Is(err, harpoon.ErrNoCandidateDomains) {
			logrus.Fatalf("scan aborted: %v", err)
		}
		logrus.Fatalf("scan domains: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":        runID,
		"candidates":    len(report.Candidates),
		"variants":      report.VariantCount,
		"processing_ms": report.ProcessingMs,
	}).Info("scan complete")

	printSummary(report)

	if err := writeCandidates(cfg.OutputPath, report.Candidates); err != nil {
		logrus.Fatalf("write candidates: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"path":       cfg.OutputPath,
		"candidates": len(report.Candidates),
	}).Info("candidates written")

	printReport(report)
}

// resolveConfig layers the optional YAML file and HARPOON_* environment
// variables over the built-in defaults. Explicit flags are applied by the
// caller on top of the result.
func resolveConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if strings.TrimSpace(path) != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configureLogging(level string, verbose bool) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("log_level", level).Warn("unknown log level, using info")
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

func printSummary(report *harpoon.Report) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("HARPOON SUMMARY")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("Clean approved domains: %d\n", len(report.CleanApproved))
	fmt.Printf("Clean new domains: %d\n", len(report.CleanNew))
	fmt.Printf("Rejected entries: %d\n", len(report.Rejected))
	fmt.Printf("Generated variants: %d\n", report.VariantCount)
	fmt.Printf("Suspicious candidates: %d\n", len(report.Candidates))
	fmt.Println(strings.Repeat("=", 80))

	if len(report.Candidates) == 0 {
		return
	}

	top := report.Candidates
	if len(top) > 10 {
		top = top[:10]
	}

	fmt.Println()
	fmt.Println("Top 10 Candidates by Similarity:")
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("%-30s %-25s %-12s %-15s\n", "Domain", "Looks Like", "Similarity", "Reason")
	fmt.Println(strings.Repeat("-", 80))
	for _, candidate := range top {
		fmt.Printf("%-30s %-25s %-12.3f %-15s\n",
			truncate(candidate.Domain, 29),
			truncate(candidate.LooksLike, 24),
			candidate.Similarity,
			truncate(string(candidate.Reason), 14))
	}
	fmt.Println(strings.Repeat("-", 80))
}

func writeCandidates(path string, candidates []harpoon.Candidate) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			if !os.IsExist(err) {
				return err
			}
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(candidates)
}

func printReport(report *harpoon.Report) {
	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logrus.WithError(err).Warn("encode full report")
		return
	}
	fmt.Println()
	fmt.Println("Full results (JSON):")
	fmt.Println(string(encoded))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
