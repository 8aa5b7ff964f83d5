package docai

import (
	"context"
	"fmt"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"

	"insurance-docai/internal/layout"
	"insurance-docai/internal/models"
)

// Client calls a Google Cloud Document AI processor. It satisfies Processor.
type Client struct {
	client        *documentai.DocumentProcessorClient
	processorName string
}

// NewClient connects to the regional Document AI endpoint for the configured
// location and targets the configured processor. Credentials come from the
// ambient GOOGLE_APPLICATION_CREDENTIALS environment.
func NewClient(ctx context.Context, cfg models.DocumentAIConfig) (*Client, error) {
	endpoint := fmt.Sprintf("%s-documentai.googleapis.com:443", cfg.Location)

	cl, err := documentai.NewDocumentProcessorClient(ctx, option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("error creating Document AI client: %w", err)
	}

	return &Client{
		client: cl,
		processorName: fmt.Sprintf("projects/%s/locations/%s/processors/%s",
			cfg.ProjectID, cfg.Location, cfg.ProcessorID),
	}, nil
}

// Process submits the raw document bytes with their MIME type and converts
// the response into the pipeline's layout types. The call is synchronous with
// no local retry; the service's own deadline applies.
func (c *Client) Process(ctx context.Context, content []byte, mimeType string) (*Result, error) {
	req := &documentaipb.ProcessRequest{
		Name: c.processorName,
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  content,
				MimeType: mimeType,
			},
		},
	}

	resp, err := c.client.ProcessDocument(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("error processing document: %w", err)
	}

	return fromDocument(resp.GetDocument()), nil
}

// Close releases the underlying gRPC connection
func (c *Client) Close() error {
	return c.client.Close()
}

func fromDocument(doc *documentaipb.Document) *Result {
	result := &Result{Text: doc.GetText()}

	for _, page := range doc.GetPages() {
		p := Page{Number: int(page.GetPageNumber())}
		for _, block := range page.GetBlocks() {
			p.Blocks = append(p.Blocks, fromLayout(block.GetLayout()))
		}
		result.Pages = append(result.Pages, p)
	}

	return result
}

func fromLayout(l *documentaipb.Document_Page_Layout) layout.Block {
	var b layout.Block
	for _, seg := range l.GetTextAnchor().GetTextSegments() {
		b.Segments = append(b.Segments, layout.Segment{
			Start: int64(seg.GetStartIndex()),
			End:   int64(seg.GetEndIndex()),
		})
	}
	return b
}
