// Package app wires the analysis pipeline: config, storage, feature
// extraction, export, report rendering, and the optional schedule.
package app

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"autoready/internal/config"
	"autoready/internal/domain"
	"autoready/internal/export"
	"autoready/internal/notify"
	"autoready/internal/recognizer"
	"autoready/internal/report"
	"autoready/internal/sentiment"
	"autoready/internal/storage/sqlite"
	"autoready/internal/summarize"
)

func Main() {
	cfg := config.LoadConfig()

	db, err := sqlite.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	defer db.Close()

	// Load the lexicon up front so the first run doesn't pay for it.
	sentiment.Init()

	rec := recognizer.New(cfg.FocusKeys()...)

	if cfg.Schedule == "" {
		if err := RunOnce(cfg, db, rec); err != nil {
			log.Fatalf("Analysis run failed: %v", err)
		}
		return
	}

	c := cron.New()
	_, err = c.AddFunc(cfg.Schedule, func() {
		if err := RunOnce(cfg, db, rec); err != nil {
			log.Printf("Scheduled analysis run failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule analysis: %v", err)
	}
	log.Printf("Scheduled analysis '%s' over %s", cfg.Schedule, cfg.InputPath)
	c.Run()
}

// RunOnce executes one full pipeline pass over the configured input.
func RunOnce(cfg config.Config, db *sql.DB, rec *recognizer.Recognizer) error {
	started := time.Now()

	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	doc, err := domain.ParseDocument(data)
	if err != nil {
		return err
	}

	table, err := rec.ExtractFeatures(doc)
	if err != nil {
		return err
	}

	runID, err := sqlite.InsertRun(db, sqlite.Run{
		InputPath:   cfg.InputPath,
		Departments: len(table),
		RanAt:       started,
	})
	if err != nil {
		return fmt.Errorf("persist run: %w", err)
	}
	if _, err := sqlite.InsertFeatureRows(db, runID, table); err != nil {
		return fmt.Errorf("persist feature rows: %w", err)
	}

	if err := export.Write(cfg.ResultsPath, table, doc.RawDepartmentCount); err != nil {
		return fmt.Errorf("write results json: %w", err)
	}

	explanation := summarize.Explanation(cfg, table)
	reportPath, err := report.RenderToFile(table, explanation, cfg.TemplatePath, cfg.ReportOutputDir, started)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if err := notify.PostRunSummary(cfg, table, reportPath); err != nil {
		log.Printf("Slack notification failed: %v", err)
	}

	log.Printf("Analyzed %d department(s) in %s. Results: %s Report: %s",
		len(table), time.Since(started).Round(time.Millisecond), cfg.ResultsPath, reportPath)
	return nil
}
