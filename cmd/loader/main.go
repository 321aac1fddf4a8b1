package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"stoxyloader/internal/config"
	"stoxyloader/internal/logger"
	"stoxyloader/internal/pipeline"
	"stoxyloader/internal/repository"
	"stoxyloader/internal/source"
	"stoxyloader/types"
)

func main() {
	cfgPath := os.Getenv("LOADER_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := repository.NewDatabase(cfg.DB.DSN)
	if err != nil {
		log.Fatal("database connect failed", zap.Error(err))
	}
	defer db.Close()

	rows, err := readInput(cfg.Input)
	if err != nil {
		log.Fatal("read input file failed", zap.String("path", cfg.Input.Path), zap.Error(err))
	}
	log.Info("input file loaded", zap.String("path", cfg.Input.Path), zap.Int("rows", len(rows)))

	ledger, report := pipeline.Ingest(rows, cfg.Owners)
	for _, dropped := range report.Dropped {
		log.Warn("row dropped, owner not configured",
			zap.Int("row", dropped.Index),
			zap.String("owner", dropped.Owner))
	}

	holdings := pipeline.Consolidate(ledger)
	ownerIDs := sortedOwnerIDs(cfg.Owners)
	totals := pipeline.Aggregate(holdings, ownerIDs)

	ctx := context.Background()
	for _, ownerID := range ownerIDs {
		if err := db.EnsurePortfolio(ownerID, ctx); err != nil {
			log.Fatal("ensure portfolio failed", zap.Int("owner", ownerID), zap.Error(err))
		}
	}
	if err := db.ClearHoldings(ownerIDs, ctx); err != nil {
		log.Fatal("clear holdings failed", zap.Error(err))
	}

	bar := initProgressBar(len(holdings))
	result := db.SaveHoldings(holdings, func() { bar.Add(1) }, ctx)
	for _, failed := range result.Failed {
		log.Warn("holding insert failed",
			zap.Int("owner", failed.OwnerID),
			zap.String("symbol", failed.Symbol),
			zap.Error(failed.Err))
	}

	totalsUpdated := 0
	for _, t := range totals {
		if err := db.UpdateTotals(t, ctx); err != nil {
			log.Warn("totals update failed", zap.Int("owner", t.OwnerID), zap.Error(err))
			continue
		}
		totalsUpdated++
	}

	log.Info("load complete",
		zap.Int("rows_read", report.RowsSeen),
		zap.Int("rows_dropped", len(report.Dropped)),
		zap.Int("holdings_inserted", result.Inserted),
		zap.Int("holdings_failed", len(result.Failed)),
		zap.Int("owners_updated", totalsUpdated))

	if len(holdings) > 0 && result.Inserted == 0 {
		log.Error("every holding insert failed")
		os.Exit(1)
	}
}

func readInput(input config.InputConfig) ([]types.RawRecord, error) {
	if strings.EqualFold(filepath.Ext(input.Path), ".xlsx") {
		return source.ReadXLSX(input.Path, input.Sheet)
	}
	return source.ReadCSVFile(input.Path)
}

func sortedOwnerIDs(owners map[string]int) []int {
	ids := make([]int, 0, len(owners))
	for _, id := range owners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func initProgressBar(maxTicks int) *progressbar.ProgressBar {
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Loading holdings..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
