package storage

import (
	"encoding/json"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// EmailRecord mirrors the emails table
type EmailRecord struct {
	SenderAddress   string `gorm:"column:sender_address"`
	ReceiverAddress string `gorm:"column:receiver_address"`
	EmailBody       string `gorm:"column:email_body"`
}

func (EmailRecord) TableName() string {
	return "emails"
}

// DocumentRecord mirrors the shared shape of the bol and documents tables.
// The destination table is chosen per insert, so no TableName is fixed here.
type DocumentRecord struct {
	UniqueID      string `gorm:"column:unique_id"`
	DocumentName  string `gorm:"column:document_name"`
	BlockTextList string `gorm:"column:block_text_list"`
}

// Gateway is the gorm-backed Store implementation
type Gateway struct {
	db *gorm.DB
}

// Open connects to MySQL with the given DSN and returns a Gateway. The
// connection is created once per run and shared across all inserts.
func Open(dsn string) (*Gateway, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	return &Gateway{db: db}, nil
}

// InsertEmail adds one row to the emails table
func (g *Gateway) InsertEmail(sender, receiver, body string) error {
	rec := EmailRecord{
		SenderAddress:   sender,
		ReceiverAddress: receiver,
		EmailBody:       body,
	}
	if err := g.db.Create(&rec).Error; err != nil {
		return fmt.Errorf("error inserting email record: %w", err)
	}
	return nil
}

// InsertDocument adds one classified-document row to the given table
// (TableBOL or TableDocuments), serializing the block texts as JSON.
func (g *Gateway) InsertDocument(id, name string, blockTexts []string, table string) error {
	blocks, err := json.Marshal(blockTexts)
	if err != nil {
		return fmt.Errorf("error serializing block texts: %w", err)
	}

	rec := DocumentRecord{
		UniqueID:      id,
		DocumentName:  name,
		BlockTextList: string(blocks),
	}
	if err := g.db.Table(table).Create(&rec).Error; err != nil {
		return fmt.Errorf("error inserting document record into %s: %w", table, err)
	}
	return nil
}
