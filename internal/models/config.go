package models

import "time"

// Config represents the application configuration
type Config struct {
	Email      EmailConfig      `yaml:"email"`
	Paths      PathsConfig      `yaml:"paths"`
	DocumentAI DocumentAIConfig `yaml:"documentAI"`
	Database   DatabaseConfig   `yaml:"database"`
	Notify     NotifyConfig     `yaml:"notify"`
	Classifier ClassifierConfig `yaml:"classifier"`
	// MaxPages is the page count above which an incoming PDF is split
	// into groups of MaxPages pages before intake.
	MaxPages int `yaml:"maxPages"`
}

// EmailConfig represents IMAP email configuration
type EmailConfig struct {
	Imap        string        `yaml:"imap"`
	Login       string        `yaml:"login"`
	Password    string        `yaml:"password"`
	RefreshTime time.Duration `yaml:"refreshTime"` // ex: "30s", "1m"
	MailBox     string        `yaml:"mailbox"`
	Subfolder   string        `yaml:"subfolder"` // selected under INBOX/ when set
}

// PathsConfig represents the on-disk layout for incoming and routed files
type PathsConfig struct {
	ScansDir   string `yaml:"scansDir"`
	BOLDir     string `yaml:"bolDir"`
	InvoiceDir string `yaml:"invoiceDir"`
}

// DocumentAIConfig identifies the Document AI processor used for intake
type DocumentAIConfig struct {
	ProjectID   string `yaml:"projectID"`
	Location    string `yaml:"location"` // "us" or "eu"
	ProcessorID string `yaml:"processorID"`
}

// DatabaseConfig represents the MySQL connection settings
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// NotifyConfig represents the SMTP settings for operator error notifications
type NotifyConfig struct {
	SMTPHost string `yaml:"smtpHost"`
	SMTPPort int    `yaml:"smtpPort"`
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	Operator string `yaml:"operator"`
}

// ClassifierRule represents one configurable classification rule
type ClassifierRule struct {
	Category  string   `yaml:"category"`
	Keywords  []string `yaml:"keywords"`
	Threshold int      `yaml:"threshold"`
}

// ClassifierConfig represents the ordered rule table; an empty rule list
// falls back to the built-in defaults
type ClassifierConfig struct {
	Rules []ClassifierRule `yaml:"rules"`
}
