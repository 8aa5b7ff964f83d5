// Package layout models the offset-based text anchors returned by the
// document-understanding service. The service identifies text in different
// parts of a document by offsets into the entirety of the document's text;
// Resolve converts those offsets back to a string.
package layout

import "strings"

// Segment is one contiguous [Start, End) range into a document's full text.
// Invariant: 0 <= Start <= End <= len(text). Offsets outside the text are a
// caller error; Resolve does not clamp.
type Segment struct {
	Start int64
	End   int64
}

// Block is one structural unit (block, paragraph, line, token) of a page.
// A unit whose text spans several lines is stored as multiple segments.
type Block struct {
	Segments []Segment
}

// Resolve concatenates the text covered by the segments, in the order given.
// It is a pure function and safe to call repeatedly.
func Resolve(segments []Segment, fullText string) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(fullText[seg.Start:seg.End])
	}
	return b.String()
}

// Text resolves the block's segments against the document's full text
func (b Block) Text(fullText string) string {
	return Resolve(b.Segments, fullText)
}
