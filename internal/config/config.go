package config

import (
	"os"

	"insurance-docai/internal/models"

	"gopkg.in/yaml.v2"
)

// Load reads the configuration from the specified YAML file and returns a Config struct
func Load(filepath string) (*models.Config, error) {
	configFile, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var config models.Config
	if err := yaml.Unmarshal(configFile, &config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	return &config, nil
}

func applyDefaults(cfg *models.Config) {
	if cfg.Email.MailBox == "" {
		cfg.Email.MailBox = "INBOX"
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 15
	}
	if cfg.Paths.ScansDir == "" {
		cfg.Paths.ScansDir = "PDFs"
	}
	if cfg.Paths.BOLDir == "" {
		cfg.Paths.BOLDir = "BillOfLading"
	}
	if cfg.Paths.InvoiceDir == "" {
		cfg.Paths.InvoiceDir = "Invoice"
	}
	if cfg.Notify.SMTPPort == 0 {
		cfg.Notify.SMTPPort = 587
	}
}
