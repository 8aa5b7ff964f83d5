package pdf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageRange is a 1-based inclusive span of pages forming one output group
type PageRange struct {
	From int
	Thru int
}

// Splitter partitions multi-page PDFs into fixed-size page groups
type Splitter struct{}

func NewSplitter() *Splitter {
	return &Splitter{}
}

// PageCount returns the number of pages in the PDF at path
func (s *Splitter) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("error counting pages of %s: %w", path, err)
	}
	return n, nil
}

// Split writes the PDF at path into ceil(total/groupSize) group files in
// outputDir, named {base}_part_{n}.pdf with n starting at 1. It returns the
// paths of the files written. Deleting the source is the caller's
// responsibility; a failure mid-split leaves the already written groups on
// disk.
func (s *Splitter) Split(path, outputDir string, groupSize int) ([]string, error) {
	if groupSize < 1 {
		return nil, fmt.Errorf("invalid group size %d", groupSize)
	}

	total, err := s.PageCount(path)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var written []string
	for i, group := range PlanGroups(total, groupSize) {
		outPath := filepath.Join(outputDir, fmt.Sprintf("%s_part_%d.pdf", base, i+1))
		pages := []string{fmt.Sprintf("%d-%d", group.From, group.Thru)}

		if err := api.TrimFile(path, outPath, pages, nil); err != nil {
			return written, fmt.Errorf("error writing group %d of %s: %w", i+1, path, err)
		}
		written = append(written, outPath)
	}

	return written, nil
}

// PlanGroups computes the page spans for splitting total pages into groups of
// groupSize. Spans are 1-based and inclusive; the last group holds the
// remainder. groupSize of 1 yields one span per page.
func PlanGroups(total, groupSize int) []PageRange {
	if total < 1 || groupSize < 1 {
		return nil
	}

	numGroups := (total + groupSize - 1) / groupSize
	groups := make([]PageRange, 0, numGroups)

	for g := 0; g < numGroups; g++ {
		from := g*groupSize + 1
		thru := (g + 1) * groupSize
		if thru > total {
			thru = total
		}
		groups = append(groups, PageRange{From: from, Thru: thru})
	}

	return groups
}
