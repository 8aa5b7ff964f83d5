package attachments

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"insurance-docai/internal/logging"
	"insurance-docai/internal/models"
)

// tnefConverter is the external tool that unpacks legacy winmail.dat
// (TNEF) containers into their real attachments.
const tnefConverter = "tnefparse"

var supportedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tiff": true,
}

// Store writes supported email attachments into a single scans directory
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir, creating the directory if needed
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating scans directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes into
func (s *Store) Dir() string {
	return s.dir
}

// SaveAll persists every supported attachment of the email into the store
// directory and reports whether at least one file was saved. Attachments with
// unsupported extensions are skipped silently; a write failure aborts the
// remaining attachments of this email.
func (s *Store) SaveAll(email *models.Email) (bool, error) {
	locallog := logging.Log.WithField("trace_id", email.TraceID)
	saved := false

	for _, att := range email.Attachments {
		// winmail.dat is a TNEF container, not a document: it bypasses the
		// allow-list so its contents can be unpacked into the scans directory.
		isWinmail := strings.EqualFold(att.Filename, "winmail.dat")
		if att.Filename == "" || (!isWinmail && !IsSupportedExtension(att.Filename)) {
			continue
		}

		name := SanitizeFilename(att.Filename)
		path := filepath.Join(s.dir, name)

		if err := os.WriteFile(path, att.Data, 0o644); err != nil {
			return saved, fmt.Errorf("error writing attachment %s: %w", name, err)
		}
		locallog.Infof("Saved attachment %s", name)

		if isWinmail {
			if err := s.convertWinmail(path); err != nil {
				locallog.Errorf("Error converting winmail.dat: %v", err)
			}
		}

		saved = true
	}

	return saved, nil
}

// convertWinmail unpacks a TNEF container into the store directory and
// removes the container. Run blocks until the converter exits, so the
// unpacked files are on disk before the container is deleted.
func (s *Store) convertWinmail(path string) error {
	cmd := exec.Command(tnefConverter, "-p", s.dir, "-a", path)
	if err := cmd.Run(); err != nil {
		// Remove the container regardless: it is never processable as-is
		// and would otherwise be retried every cycle.
		_ = os.Remove(path)
		return fmt.Errorf("%s failed: %w", tnefConverter, err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("error removing converted container: %w", err)
	}
	return nil
}

// IsSupportedExtension reports whether the filename carries one of the
// intake extensions (.pdf, .jpg, .jpeg, .png, .tiff)
func IsSupportedExtension(filename string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SanitizeFilename replaces each character that is invalid in a Windows
// filename (and spaces) with an underscore. Every invalid character maps to
// its own underscore, so consecutive invalid characters yield consecutive
// underscores.
func SanitizeFilename(filename string) string {
	const invalid = `\/:*?"<>| `
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalid, r) {
			return '_'
		}
		return r
	}, filename)
}
