package classify

import (
	"testing"

	"insurance-docai/internal/models"
)

// bolBlocks returns n distinct blocks, each containing one bill-of-lading keyword
func bolBlocks(n int) []string {
	keywords := DefaultRules()[0].Keywords
	blocks := make([]string, 0, n)
	for i := 0; i < n; i++ {
		blocks = append(blocks, "... "+keywords[i%len(keywords)]+" ...")
	}
	return blocks
}

func invoiceBlocks(n int) []string {
	keywords := DefaultRules()[1].Keywords
	blocks := make([]string, 0, n)
	for i := 0; i < n; i++ {
		blocks = append(blocks, "... "+keywords[i%len(keywords)]+" ...")
	}
	return blocks
}

func TestClassify_BillOfLading(t *testing.T) {
	c := New(nil)

	blocks := []string{
		"Transportation Bill of Lading",
		"Consignee name and address: ACME Corp",
		"Description Of Goods: machinery",
		"Container No. MSCU1234567",
		"Shipper Signature: ____",
	}

	if got := c.Classify(blocks); got != BillOfLading {
		t.Errorf("Classify() = %v, want %v", got, BillOfLading)
	}
}

func TestClassify_Invoice(t *testing.T) {
	c := New(nil)

	blocks := []string{
		"Invoice Number: 10023",
		"Invoice Date: 2023-09-08",
		"Payment Terms: Net 30",
		"Due Date: 2023-10-08",
		"Freight Subtotal: $1,200.00",
	}

	if got := c.Classify(blocks); got != Invoice {
		t.Errorf("Classify() = %v, want %v", got, Invoice)
	}
}

func TestClassify_Undetermined(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name   string
		blocks []string
	}{
		{name: "No blocks", blocks: nil},
		{name: "No keywords", blocks: []string{"Dear Sir or Madam", "please find attached", "regards"}},
		{name: "Four BOL hits", blocks: bolBlocks(4)},
		{
			// Four hits from keywords that are not substrings of each other;
			// the bare "Invoice" keyword matches none of these blocks.
			name:   "Four invoice hits",
			blocks: []string{"Payment Terms", "Due Date", "Freight Subtotal", "Total Due"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.blocks); got != Undetermined {
				t.Errorf("Classify() = %v, want %v", got, Undetermined)
			}
		})
	}
}

func TestClassify_ThresholdBoundary(t *testing.T) {
	c := New(nil)

	if got := c.Classify(bolBlocks(5)); got != BillOfLading {
		t.Errorf("Classify() with 5 BOL hits = %v, want %v", got, BillOfLading)
	}
	if got := c.Classify(invoiceBlocks(5)); got != Invoice {
		t.Errorf("Classify() with 5 invoice hits = %v, want %v", got, Invoice)
	}
}

// Both categories reaching their threshold resolves to the first rule in
// order, which lists bill of lading before invoice. This matches the source
// system and must not change silently.
func TestClassify_TieGoesToFirstRule(t *testing.T) {
	c := New(nil)

	blocks := append(bolBlocks(5), invoiceBlocks(5)...)
	if got := c.Classify(blocks); got != BillOfLading {
		t.Errorf("Classify() on tie = %v, want %v", got, BillOfLading)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	c := New(nil)

	blocks := []string{
		"TRANSPORTATION BILL OF LADING",
		"consignee NAME and ADDRESS",
		"description of goods",
		"CONTAINER no.",
		"shipper signature",
	}

	if got := c.Classify(blocks); got != BillOfLading {
		t.Errorf("Classify() = %v, want %v", got, BillOfLading)
	}
}

// Two distinct keywords inside one block contribute one hit each
func TestClassify_MultipleKeywordsPerBlock(t *testing.T) {
	c := New(nil)

	blocks := []string{
		"Invoice Number 10023, Invoice Date 2023-09-08, Payment Terms Net 30",
		"Due Date 2023-10-08, Total Due $1,200.00",
	}

	// Block one carries Invoice Number, Invoice Date, Payment Terms and the
	// bare "Invoice" keyword; block two carries Due Date and Total Due.
	if got := c.Classify(blocks); got != Invoice {
		t.Errorf("Classify() = %v, want %v", got, Invoice)
	}
}

func TestFromConfig_OverridesDefaults(t *testing.T) {
	cfg := models.ClassifierConfig{
		Rules: []models.ClassifierRule{
			{Category: "Invoice", Keywords: []string{"remittance"}, Threshold: 1},
		},
	}

	c := FromConfig(cfg)

	if got := c.Classify([]string{"Remittance advice"}); got != Invoice {
		t.Errorf("Classify() = %v, want %v", got, Invoice)
	}
	// The default BOL rule is gone under the override
	if got := c.Classify(bolBlocks(5)); got != Undetermined {
		t.Errorf("Classify() = %v, want %v", got, Undetermined)
	}
}

func TestFromConfig_EmptyUsesDefaults(t *testing.T) {
	c := FromConfig(models.ClassifierConfig{})

	if got := c.Classify(bolBlocks(5)); got != BillOfLading {
		t.Errorf("Classify() = %v, want %v", got, BillOfLading)
	}
}
