package layout

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
		text     string
		expected string
	}{
		{
			name:     "Single segment",
			segments: []Segment{{Start: 0, End: 3}},
			text:     "abcdefghij",
			expected: "abc",
		},
		{
			name:     "Ordered concatenation",
			segments: []Segment{{Start: 0, End: 3}, {Start: 5, End: 8}},
			text:     "abcdefghij",
			expected: "abcfgh",
		},
		{
			name:     "Order preserved even when segments are reversed",
			segments: []Segment{{Start: 5, End: 8}, {Start: 0, End: 3}},
			text:     "abcdefghij",
			expected: "fghabc",
		},
		{
			name:     "Empty segment",
			segments: []Segment{{Start: 4, End: 4}},
			text:     "abcdefghij",
			expected: "",
		},
		{
			name:     "No segments",
			segments: nil,
			text:     "abcdefghij",
			expected: "",
		},
		{
			name:     "Full text",
			segments: []Segment{{Start: 0, End: 10}},
			text:     "abcdefghij",
			expected: "abcdefghij",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.segments, tt.text); got != tt.expected {
				t.Errorf("Resolve() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestResolve_Pure(t *testing.T) {
	segments := []Segment{{Start: 2, End: 5}}
	text := "abcdefghij"

	first := Resolve(segments, text)
	second := Resolve(segments, text)

	if first != second {
		t.Errorf("Resolve() not stable: %q then %q", first, second)
	}
}

func TestBlockText(t *testing.T) {
	b := Block{Segments: []Segment{{Start: 0, End: 5}, {Start: 6, End: 11}}}

	if got := b.Text("Hello World"); got != "HelloWorld" {
		t.Errorf("Text() = %q, want %q", got, "HelloWorld")
	}
}
