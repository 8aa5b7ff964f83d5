// Package classify assigns extracted document text to a document category
// using an ordered, configurable keyword rule table.
package classify

import (
	"strings"

	"insurance-docai/internal/models"
)

// Category is the classification outcome for one document
type Category string

const (
	BillOfLading Category = "BillOfLading"
	Invoice      Category = "Invoice"
	Undetermined Category = "Undetermined"
)

// Rule maps a keyword set to a category. A document matches when its keyword
// hit count reaches Threshold.
type Rule struct {
	Category  Category
	Keywords  []string
	Threshold int
}

// Classifier evaluates rules in order; the first rule to reach its threshold
// wins, so ties between rules resolve to the earlier one.
type Classifier struct {
	rules []Rule
}

// DefaultRules returns the built-in rule table: bill-of-lading indicators
// first, then invoice indicators, both with a threshold of 5 hits.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: BillOfLading,
			Keywords: []string{
				"Bill of Lading",
				"b/l",
				"Manifest From",
				"Consignee name and address",
				"Description Of Goods",
				"Container No.",
				"Point of origin",
				"Destination And Route",
				"Transportation bill of lading",
				"Shipper Signature",
			},
			Threshold: 5,
		},
		{
			Category: Invoice,
			Keywords: []string{
				"Invoice Number",
				"Invoice Date",
				"Payment Terms",
				"Due Date",
				"Invoice",
				"Freight Subtotal",
				"Total Due",
				"Invoice #",
			},
			Threshold: 5,
		},
	}
}

// New creates a Classifier from the given rules; nil or empty falls back to
// the defaults.
func New(rules []Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// FromConfig builds a Classifier from the configured rule table. Configured
// rules with a non-positive threshold default to 5.
func FromConfig(cfg models.ClassifierConfig) *Classifier {
	var rules []Rule
	for _, rc := range cfg.Rules {
		threshold := rc.Threshold
		if threshold <= 0 {
			threshold = 5
		}
		rules = append(rules, Rule{
			Category:  Category(rc.Category),
			Keywords:  rc.Keywords,
			Threshold: threshold,
		})
	}
	return New(rules)
}

// Classify scans the block texts against each rule in order and returns the
// category of the first rule whose hit count reaches its threshold, or
// Undetermined. Matching is case-insensitive substring containment; every
// (block, keyword) pair counts at most once, so two distinct keywords found
// in the same block contribute two hits.
func (c *Classifier) Classify(blockTexts []string) Category {
	lowered := make([]string, len(blockTexts))
	for i, text := range blockTexts {
		lowered[i] = strings.ToLower(text)
	}

	for _, rule := range c.rules {
		count := 0
		for _, keyword := range rule.Keywords {
			kw := strings.ToLower(keyword)
			for _, text := range lowered {
				if strings.Contains(text, kw) {
					count++
				}
			}
		}
		if count >= rule.Threshold {
			return rule.Category
		}
	}

	return Undetermined
}
