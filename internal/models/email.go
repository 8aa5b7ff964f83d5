package models

import "time"

// Email represents a normalized parsed email message
type Email struct {
	UID          uint32
	From         string
	To           []string // first three recipients, in header order
	ReceiverList string   // the same recipients joined for persistence
	Subject      string
	BodyText     string
	Attachments  []Attachment
	InternalDate time.Time
	TraceID      string
}

// Attachment is one attachment part as carried in the message,
// before any filename sanitization
type Attachment struct {
	Filename string
	Data     []byte
}
