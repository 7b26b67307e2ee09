package main

import (
	"fmt"
	"os"

	"airbnb-cleaner/config"
	"airbnb-cleaner/services"
	"airbnb-cleaner/storage"
	"airbnb-cleaner/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()
	logger.SetDebug(cfg.Debug)

	logger.Info("=== Airbnb Cleaning Pipeline starting ===")
	logger.Info("Config — raw: %s | clean: %s", cfg.RawCSVPath, cfg.CleanCSVPath)

	reader := storage.NewCSVReader(cfg.RawCSVPath)
	table, err := reader.Read()
	if err != nil {
		logger.Error("Failed to load raw CSV: %v", err)
		os.Exit(1)
	}
	logger.Info("Loaded %d rows × %d columns from %s",
		len(table.Rows), len(table.Columns), cfg.RawCSVPath)

	normalizer := services.NewNormalizer(logger)
	dataset := normalizer.Normalize(table)

	services.NewClassifier(logger).Classify(dataset)
	services.NewOutlierFilter(logger).Filter(dataset)

	// A run that drops every row is still a successful run: the consumer
	// gets a header-only file rather than a stale dataset.
	if len(dataset.Listings) == 0 {
		logger.Warn("All rows were dropped during cleaning — exporting an empty dataset")
	}

	writer := storage.NewCSVWriter(cfg.CleanCSVPath)
	if err := writer.Write(dataset); err != nil {
		logger.Error("Failed to write cleaned CSV: %v", err)
		os.Exit(1)
	}
	logger.Info("Cleaned dataset saved to %s", cfg.CleanCSVPath)

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(dataset)
	insightSvc.Print(report)

	fmt.Printf("  Done. %d cleaned listings → %s\n\n",
		len(dataset.Listings), cfg.CleanCSVPath)
}
