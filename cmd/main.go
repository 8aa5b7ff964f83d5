package main

import (
	"context"
	"sync/atomic"
	"time"

	"insurance-docai/internal/attachments"
	"insurance-docai/internal/classify"
	"insurance-docai/internal/config"
	"insurance-docai/internal/docai"
	imapclient "insurance-docai/internal/imap"
	"insurance-docai/internal/logging"
	"insurance-docai/internal/notify"
	"insurance-docai/internal/pdf"
	"insurance-docai/internal/pipeline"
	"insurance-docai/internal/storage"
)

var mailFailureCount atomic.Int32

const failureSleepDuration = 30 * time.Minute

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		logging.Log.Fatalf("Error reading configuration file: %v", err)
	}

	ctx := context.Background()

	store, err := attachments.NewStore(cfg.Paths.ScansDir)
	if err != nil {
		logging.Log.Fatalf("Error preparing scans directory: %v", err)
	}

	gateway, err := storage.Open(cfg.Database.DSN)
	if err != nil {
		logging.Log.Fatalf("Error connecting to database: %v", err)
	}

	processor, err := docai.NewClient(ctx, cfg.DocumentAI)
	if err != nil {
		logging.Log.Fatalf("Error creating Document AI client: %v", err)
	}
	defer func() {
		_ = processor.Close()
	}()

	driver, err := pipeline.NewDriver(cfg, pipeline.Deps{
		NewIMAPClient: func() imapclient.Client { return imapclient.NewStandardClient() },
		Attachments:   store,
		Splitter:      pdf.NewSplitter(),
		Processor:     processor,
		Classifier:    classify.FromConfig(cfg.Classifier),
		Store:         gateway,
		Notifier:      notify.NewMailer(cfg.Notify),
	})
	if err != nil {
		logging.Log.Fatalf("Error building pipeline: %v", err)
	}

	logging.Log.Infof("Starting document intake pipeline, refresh every %s", cfg.Email.RefreshTime)

	for {
		if err := driver.RunCycle(ctx); err != nil {
			handleMailFailure(err)
		} else {
			mailFailureCount.Store(0)
		}
		time.Sleep(cfg.Email.RefreshTime)
	}
}

// handleMailFailure increments the failure count and implements an exponential backoff strategy
func handleMailFailure(err error) {
	failures := mailFailureCount.Add(1)
	logging.Log.Errorf("Mail cycle error: %v", err)

	if failures >= 5 {
		base := 5 * time.Minute
		maxSteps := int32(10)

		n := failures - 5
		if n > maxSteps {
			n = maxSteps
		}

		backoff := base * time.Duration(1<<n)
		if backoff > failureSleepDuration {
			backoff = failureSleepDuration
		}

		logging.Log.Warnf("Mail check failed %d times, waiting %s before next attempt", failures, backoff)
		time.Sleep(backoff)
	}
}
