package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"job-trends/internal/config"
	"job-trends/internal/dictionary"
	"job-trends/internal/extract"
	"job-trends/internal/pipeline"
	"job-trends/internal/taxonomy"

	"github.com/joho/godotenv"
)

func main() {
	input := flag.String("input", "", "path to the raw scraped CSV (defaults to <data dir>/raw/linkedin_jobs.csv)")
	workers := flag.Int("workers", 0, "extraction worker count (0 uses the default)")
	taxonomyFile := flag.String("taxonomy", "", "optional YAML taxonomy override (defaults to TAXONOMY_FILE)")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("dotenv load skipped: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *taxonomyFile != "" {
		cfg.Data.TaxonomyFile = *taxonomyFile
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	tax := taxonomy.Default()
	if cfg.Data.TaxonomyFile != "" {
		tax, err = taxonomy.Load(cfg.Data.TaxonomyFile)
		if err != nil {
			log.Fatalf("failed to load taxonomy: %v", err)
		}
	}

	dict := dictionary.Build(tax.SkillCategories)
	logger.Printf("pipeline=full dictionary_entries=%d", dict.Len())

	ex := extract.New(dict, tax)
	p := pipeline.NewFullPipeline(ex, cfg.Data, cfg.Analytics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rawCSV := *input
	if rawCSV == "" {
		rawCSV = cfg.Data.RawCSV()
	}

	if err := p.Run(ctx, pipeline.FullParams{RawCSV: rawCSV, Workers: *workers}); err != nil {
		log.Fatalf("pipeline failed: %v", err)
	}
}
