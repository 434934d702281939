// Package extract implements the member extraction pipeline shared by every
// structural kind: discriminator filter, field extraction, type classification,
// geometry deduplication and point normalization.
package extract

import (
	"fmt"
	"regexp"
)

// Unknown is the type code reported when a label matches no series pattern.
const Unknown = "UNKNOWN"

// Kind configures one pipeline instance.
type Kind struct {
	Name          string     // registry name, e.g. "joists-by-name"
	Label         string     // output label; the type array is keyed "<Label>_types"
	Discriminator string     // exact, case-sensitive discriminator value
	LabelField    string     // field holding the name or designation
	LineField     string     // field holding the {Start, End} reference line
	Classifier    Classifier // derives the type code from the label
	Output        string     // default output file name
}

// Validate checks that the kind can drive a pipeline.
func (k Kind) Validate() error {
	switch {
	case k.Name == "":
		return fmt.Errorf("kind: name is required")
	case k.Label == "":
		return fmt.Errorf("kind %s: label is required", k.Name)
	case k.Discriminator == "":
		return fmt.Errorf("kind %s: discriminator is required", k.Name)
	case k.LabelField == "":
		return fmt.Errorf("kind %s: label field is required", k.Name)
	case k.LineField == "":
		return fmt.Errorf("kind %s: line field is required", k.Name)
	case k.Classifier == nil:
		return fmt.Errorf("kind %s: classifier is required", k.Name)
	}
	return nil
}

// Classifier derives a short type code from a name or designation.
type Classifier interface {
	Classify(label string) (code string, ok bool)
	String() string
}

// Verbatim uses the label itself as the type code and never rejects.
type Verbatim struct{}

func (Verbatim) Classify(label string) (string, bool) { return label, true }
func (Verbatim) String() string                       { return "verbatim" }

// Series matches a vendor series pattern anchored at the start of the label
// and returns the longest matching prefix.
type Series struct {
	pattern string
	re      *regexp.Regexp
}

// NewSeries compiles pattern. The pattern is always anchored at the start.
func NewSeries(pattern string) (*Series, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("series pattern %q: %w", pattern, err)
	}
	re.Longest()
	return &Series{pattern: pattern, re: re}, nil
}

// MustSeries is like NewSeries but panics on a bad pattern.
func MustSeries(pattern string) *Series {
	s, err := NewSeries(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

// Classify returns the matched prefix, or Unknown and false.
func (s *Series) Classify(label string) (string, bool) {
	m := s.re.FindString(label)
	if m == "" {
		return Unknown, false
	}
	return m, true
}

func (s *Series) String() string { return s.pattern }
