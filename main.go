package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rwescore/adapters/csvfile"
	"rwescore/adapters/excel"
	"rwescore/adapters/export"
	"rwescore/app"
	"rwescore/domain/standards"
	"rwescore/internal/config"
	"rwescore/internal/logging"
	"rwescore/ports"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: rwescore <dataset.csv|dataset.xlsx> [source]")
		os.Exit(2)
	}
	path := os.Args[1]

	source := standards.SourceGeneric
	if len(os.Args) > 2 {
		source = standards.ParseSourceKind(os.Args[2])
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewLogger(cfg.Logging)

	var reader ports.DatasetReader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		reader = excel.NewReader()
	default:
		reader = csvfile.NewReader()
	}

	ds, err := reader.Read(path)
	if err != nil {
		logger.WithError(err).Error("Failed to read dataset")
		os.Exit(1)
	}

	svc := app.NewEvaluationService(cfg, logger)
	req := app.EvaluationRequest{Dataset: ds, Source: source}
	if source == standards.SourceCDC {
		// Surveillance feeds arrive pre-aggregated; derive the summary
		// the shape scorer needs from the table itself.
		summary := standards.SummarizeSource(ds)
		req.Summary = &summary
	}
	ev := svc.Evaluate(req)

	out, err := export.Marshal(export.EvaluationMap(ev))
	if err != nil {
		logger.WithError(err).Error("Failed to serialize evaluation")
		os.Exit(1)
	}
	fmt.Println(string(out))
}
