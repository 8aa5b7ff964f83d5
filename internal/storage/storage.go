package storage

// Store is the persistence boundary of the pipeline: one insert per processed
// email and one insert per classified document, nothing read back.
type Store interface {
	InsertEmail(sender, receiver, body string) error
	InsertDocument(id, name string, blockTexts []string, table string) error
}

// Destination tables for classified documents
const (
	TableBOL       = "bol"
	TableDocuments = "documents"
)
