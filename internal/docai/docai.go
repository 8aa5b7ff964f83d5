package docai

import (
	"context"
	"fmt"
	"strings"

	"insurance-docai/internal/layout"
)

// Processor submits one document to the document-understanding service and
// returns its extracted text and layout.
type Processor interface {
	Process(ctx context.Context, content []byte, mimeType string) (*Result, error)
}

// Result is the service response reduced to what the pipeline consumes:
// the flat extracted text and the per-page layout blocks anchored into it.
type Result struct {
	Text  string
	Pages []Page
}

// Page holds the layout blocks detected on one page
type Page struct {
	Number int
	Blocks []layout.Block
}

// BlockTexts resolves every block of every page against the full text,
// in page then block order.
func (r *Result) BlockTexts() []string {
	var texts []string
	for _, page := range r.Pages {
		for _, block := range page.Blocks {
			texts = append(texts, block.Text(r.Text))
		}
	}
	return texts
}

// DetectMimeType maps a filename to the MIME type declared to the service.
// Unsupported extensions are an error, not a guess.
func DetectMimeType(filename string) (string, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return "application/pdf", nil
	case strings.HasSuffix(name, ".jpg"), strings.HasSuffix(name, ".jpeg"):
		return "image/jpeg", nil
	case strings.HasSuffix(name, ".png"):
		return "image/png", nil
	case strings.HasSuffix(name, ".tiff"):
		return "image/tiff", nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filename)
	}
}
