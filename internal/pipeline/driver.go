package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"insurance-docai/internal/attachments"
	"insurance-docai/internal/classify"
	"insurance-docai/internal/docai"
	imapclient "insurance-docai/internal/imap"
	"insurance-docai/internal/logging"
	"insurance-docai/internal/mailparse"
	"insurance-docai/internal/models"
	"insurance-docai/internal/notify"
	"insurance-docai/internal/storage"
)

// Splitter partitions oversized PDFs before intake
type Splitter interface {
	PageCount(path string) (int, error)
	Split(path, outputDir string, groupSize int) ([]string, error)
}

// Deps are the external collaborators of one Driver. The IMAP client is
// created fresh per cycle, so it is injected as a factory.
type Deps struct {
	NewIMAPClient func() imapclient.Client
	Attachments   *attachments.Store
	Splitter      Splitter
	Processor     docai.Processor
	Classifier    *classify.Classifier
	Store         storage.Store
	Notifier      notify.Notifier
}

// Driver runs the sequential intake cycle: poll mail, save attachments,
// split oversized PDFs, then intake, classify and route each file. It holds
// no state across cycles; every cycle recomputes the file list from disk.
type Driver struct {
	cfg        *models.Config
	deps       Deps
	bolDir     string
	invoiceDir string
}

// NewDriver creates a Driver and the destination folders for routed files.
// Relative destination folders live under the scans directory.
func NewDriver(cfg *models.Config, deps Deps) (*Driver, error) {
	d := &Driver{
		cfg:        cfg,
		deps:       deps,
		bolDir:     resolveDir(deps.Attachments.Dir(), cfg.Paths.BOLDir),
		invoiceDir: resolveDir(deps.Attachments.Dir(), cfg.Paths.InvoiceDir),
	}

	for _, dir := range []string{d.bolDir, d.invoiceDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating destination directory %s: %w", dir, err)
		}
	}

	return d, nil
}

// RunCycle executes one full processing cycle. Per-item failures are logged
// and skipped; only mail connection failures surface to the caller.
func (d *Driver) RunCycle(ctx context.Context) error {
	if err := d.checkMail(); err != nil {
		if perr, ok := err.(*Error); ok && perr.Fatal() {
			return err
		}
		logging.Log.Errorf("Mail check ended early: %v", err)
	}

	d.splitOversized()
	d.processFiles(ctx)

	return nil
}

// checkMail connects to the mailbox, fetches every unseen message oldest
// first, persists its metadata and saves its attachments. The logout runs
// unconditionally once the phase ends.
func (d *Driver) checkMail() error {
	client := d.deps.NewIMAPClient()

	if err := client.Connect(d.cfg.Email.Imap); err != nil {
		return wrap(KindConnectivity, err)
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Login(d.cfg.Email.Login, d.cfg.Email.Password); err != nil {
		return wrap(KindAuth, err)
	}

	if err := client.SelectMailbox(d.cfg.Email.MailBox); err != nil {
		return wrap(KindConnectivity, err)
	}

	if d.cfg.Email.Subfolder != "" {
		if client.SelectSubfolder(d.cfg.Email.Subfolder) {
			logging.Log.Infof("Selected subfolder INBOX/%s", d.cfg.Email.Subfolder)
		} else {
			logging.Log.Warnf("Failed to select subfolder %s, staying on %s",
				d.cfg.Email.Subfolder, d.cfg.Email.MailBox)
		}
	}

	uids, err := client.ListUnseenUIDs()
	if err != nil {
		return wrap(KindFetch, err)
	}

	if len(uids) == 0 {
		logging.Log.Info("No new unread emails")
		return nil
	}

	for _, uid := range uids {
		if err := d.processMessage(client, uid); err != nil {
			logging.Log.Errorf("Error processing email UID %d: %v", uid, err)
		}
	}

	return nil
}

// processMessage fetches and parses one message, inserts its email record and
// saves its attachments. Fetching without PEEK marks the message seen.
func (d *Driver) processMessage(client imapclient.Client, uid uint32) error {
	msg, err := client.FetchMessage(uid)
	if err != nil {
		return wrap(KindFetch, err)
	}

	email, err := mailparse.Parse(msg)
	if err != nil {
		return wrap(KindFetch, fmt.Errorf("error parsing message: %w", err))
	}

	locallog := logging.Log.WithField("trace_id", email.TraceID)
	locallog.Infof("Processing email from %s", email.From)

	if err := d.deps.Store.InsertEmail(email.From, email.ReceiverList, email.BodyText); err != nil {
		// The attachments are still worth saving; the email row is metadata.
		locallog.Errorf("%v", wrap(KindPersistence, err))
	}

	saved, err := d.deps.Attachments.SaveAll(email)
	if err != nil {
		return wrap(KindFilesystem, err)
	}
	if !saved {
		locallog.Info("No attachment downloaded")
	}

	return nil
}

// splitOversized splits every PDF in the scans directory whose page count
// exceeds the configured maximum into groups of at most that many pages,
// deleting the source after a successful split.
func (d *Driver) splitOversized() {
	scansDir := d.deps.Attachments.Dir()

	for _, file := range d.listFiles() {
		if !strings.EqualFold(filepath.Ext(file), ".pdf") {
			continue
		}
		path := filepath.Join(scansDir, file)

		pages, err := d.deps.Splitter.PageCount(path)
		if err != nil {
			logging.Log.Errorf("Error processing file %s: %v", file, wrap(KindFilesystem, err))
			continue
		}
		if pages <= d.cfg.MaxPages {
			continue
		}

		written, err := d.deps.Splitter.Split(path, scansDir, d.cfg.MaxPages)
		if err != nil {
			logging.Log.Errorf("Error splitting %s: %v", file, wrap(KindFilesystem, err))
			continue
		}
		logging.Log.Infof("Split %s (%d pages) into %d parts", file, pages, len(written))

		if err := os.Remove(path); err != nil {
			logging.Log.Errorf("Error deleting split source %s: %v", file, wrap(KindFilesystem, err))
		}
	}
}

// processFiles runs intake, classification and routing over every file left
// in the scans directory. A failing file is left in place for manual
// handling and the batch continues.
func (d *Driver) processFiles(ctx context.Context) {
	scansDir := d.deps.Attachments.Dir()

	for _, file := range d.listFiles() {
		path := filepath.Join(scansDir, file)
		if err := d.processFile(ctx, path, file); err != nil {
			logging.Log.Errorf("Error processing file %s: %v", file, err)
		}
	}
}

func (d *Driver) processFile(ctx context.Context, path, file string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return wrap(KindFilesystem, err)
	}

	mimeType, err := docai.DetectMimeType(file)
	if err != nil {
		return wrap(KindIntake, err)
	}

	result, err := d.deps.Processor.Process(ctx, data, mimeType)
	if err != nil {
		d.notifyOperator(path, file)
		return wrap(KindIntake, err)
	}

	blockTexts := result.BlockTexts()
	category := d.deps.Classifier.Classify(blockTexts)

	return d.route(path, file, category, blockTexts)
}

// route persists and moves a classified file. The insert happens before the
// move so an insert failure leaves the file in the scans directory for the
// next cycle; Undetermined files stay put for human review.
func (d *Driver) route(path, file string, category classify.Category, blockTexts []string) error {
	var table, destDir string

	switch category {
	case classify.BillOfLading:
		table, destDir = storage.TableBOL, d.bolDir
	case classify.Invoice:
		table, destDir = storage.TableDocuments, d.invoiceDir
	default:
		logging.Log.Infof("Document %s is undetermined, leaving for human review", file)
		return nil
	}

	id := uuid.New().String()
	if err := d.deps.Store.InsertDocument(id, file, blockTexts, table); err != nil {
		return wrap(KindPersistence, err)
	}

	if err := os.Rename(path, filepath.Join(destDir, file)); err != nil {
		return wrap(KindFilesystem, err)
	}

	logging.Log.Infof("Routed %s as %s (id %s)", file, category, id)
	return nil
}

func (d *Driver) notifyOperator(path, file string) {
	if d.deps.Notifier == nil {
		return
	}
	logging.Log.Infof("Sending %s to %s for human intervention", file, d.cfg.Notify.Operator)
	if err := d.deps.Notifier.SendErrorNotification(path, file); err != nil {
		logging.Log.Errorf("Error notifying operator about %s: %v", file, err)
	}
}

// listFiles returns the supported files currently in the scans directory,
// in directory order. Subdirectories (including the routed-file folders when
// configured as relative paths) are skipped.
func (d *Driver) listFiles() []string {
	entries, err := os.ReadDir(d.deps.Attachments.Dir())
	if err != nil {
		logging.Log.Errorf("Error listing scans directory: %v", wrap(KindFilesystem, err))
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !attachments.IsSupportedExtension(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files
}

func resolveDir(base, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}
