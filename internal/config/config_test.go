package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	yamlContent := `email:
  imap: "imap.test.com:993"
  login: "intake@example.com"
  password: "testpass"
  refreshTime: 30s
  mailbox: "INBOX"
  subfolder: "HEAD_OFFICE"
paths:
  scansDir: "PDFs"
  bolDir: "BillOfLading"
  invoiceDir: "Invoice"
documentAI:
  projectID: "test-project"
  location: "us"
  processorID: "abc123"
database:
  dsn: "user:pass@tcp(localhost:3306)/document_db"
notify:
  smtpHost: "smtp.test.com"
  smtpPort: 587
  login: "intake@example.com"
  password: "testpass"
  operator: "ops@example.com"
maxPages: 15
classifier:
  rules:
    - category: "Invoice"
      keywords: ["Invoice Number", "Total Due"]
      threshold: 2
`

	cfg, err := Load(writeConfig(t, yamlContent))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Email.Imap != "imap.test.com:993" {
		t.Errorf("Expected imap 'imap.test.com:993', got '%s'", cfg.Email.Imap)
	}
	if cfg.Email.RefreshTime != 30*time.Second {
		t.Errorf("Expected refreshTime 30s, got %v", cfg.Email.RefreshTime)
	}
	if cfg.Email.Subfolder != "HEAD_OFFICE" {
		t.Errorf("Expected subfolder 'HEAD_OFFICE', got '%s'", cfg.Email.Subfolder)
	}
	if cfg.DocumentAI.ProcessorID != "abc123" {
		t.Errorf("Expected processorID 'abc123', got '%s'", cfg.DocumentAI.ProcessorID)
	}
	if cfg.MaxPages != 15 {
		t.Errorf("Expected maxPages 15, got %d", cfg.MaxPages)
	}
	if len(cfg.Classifier.Rules) != 1 {
		t.Fatalf("Expected 1 classifier rule, got %d", len(cfg.Classifier.Rules))
	}
	if cfg.Classifier.Rules[0].Threshold != 2 {
		t.Errorf("Expected threshold 2, got %d", cfg.Classifier.Rules[0].Threshold)
	}
}

func TestLoad_Defaults(t *testing.T) {
	yamlContent := `email:
  imap: "imap.test.com:993"
  login: "intake@example.com"
  password: "testpass"
  refreshTime: 1m
`

	cfg, err := Load(writeConfig(t, yamlContent))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Email.MailBox != "INBOX" {
		t.Errorf("Expected default mailbox 'INBOX', got '%s'", cfg.Email.MailBox)
	}
	if cfg.MaxPages != 15 {
		t.Errorf("Expected default maxPages 15, got %d", cfg.MaxPages)
	}
	if cfg.Paths.ScansDir != "PDFs" {
		t.Errorf("Expected default scansDir 'PDFs', got '%s'", cfg.Paths.ScansDir)
	}
	if cfg.Paths.BOLDir != "BillOfLading" || cfg.Paths.InvoiceDir != "Invoice" {
		t.Errorf("Unexpected default destination dirs: %s, %s", cfg.Paths.BOLDir, cfg.Paths.InvoiceDir)
	}
	if cfg.Notify.SMTPPort != 587 {
		t.Errorf("Expected default SMTP port 587, got %d", cfg.Notify.SMTPPort)
	}
	if len(cfg.Classifier.Rules) != 0 {
		t.Errorf("Expected no configured rules, got %d", len(cfg.Classifier.Rules))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
