// Package ame holds the structural member kinds found in AME model exports
// and the series patterns used to read their type codes.
package ame

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/extract"
)

// Discriminator tags
const (
	ColumnTag = "Elements.AMEColumn"
	GirderTag = "Elements.AMEJoistGirder"
	JoistTag  = "Elements.AMEJoist"
)

// Series patterns, matched from the start of the label
var (
	// GirderSeries reads "300G" from "300G8N10K"
	GirderSeries = extract.MustSeries(`\d+G`)

	// JoistSeries reads "30K", "40LH" or "44DLH" from a joist designation
	JoistSeries = extract.MustSeries(`\d+(?:K|LH|DLH)`)

	// KSeries recognises K-series joists only
	KSeries = extract.MustSeries(`\d+K`)
)

var (
	Columns = extract.Kind{
		Name:          "columns",
		Label:         "column",
		Discriminator: ColumnTag,
		LabelField:    "ColumnName",
		LineField:     "CenterLine",
		Classifier:    extract.Verbatim{},
		Output:        "columns_for_grasshopper.json",
	}

	Girders = extract.Kind{
		Name:          "girders",
		Label:         "girder",
		Discriminator: GirderTag,
		LabelField:    "Name",
		LineField:     "TopOfSteelLine",
		Classifier:    GirderSeries,
		Output:        "girders_for_grasshopper.json",
	}

	// Joists reads the designation and accepts K, LH and DLH series.
	Joists = extract.Kind{
		Name:          "joists",
		Label:         "joist",
		Discriminator: JoistTag,
		LabelField:    "JoistDesignation",
		LineField:     "TopOfSteelSlopeLine",
		Classifier:    JoistSeries,
		Output:        "joists_for_grasshopper.json",
	}

	// JoistsByName reads the element name and accepts K series only.
	JoistsByName = extract.Kind{
		Name:          "joists-by-name",
		Label:         "joist",
		Discriminator: JoistTag,
		LabelField:    "Name",
		LineField:     "TopOfSteelSlopeLine",
		Classifier:    KSeries,
		Output:        "joists_by_name_for_grasshopper.json",
	}
)

// Builtin lists the built-in kinds in display order.
var Builtin = []extract.Kind{Columns, Girders, Joists, JoistsByName}

// Standard names the kinds converted by a full export.
var Standard = []string{Columns.Name, Girders.Name, Joists.Name}

// ErrUnknownKind is returned by Lookup for an unregistered name.
var ErrUnknownKind = errors.New("unknown kind")

// IsBuiltin reports whether name is a built-in kind.
func IsBuiltin(name string) bool {
	for _, k := range Builtin {
		if k.Name == name {
			return true
		}
	}
	return false
}

// Registry maps kind names to kinds.
type Registry struct {
	kinds []extract.Kind
}

// NewRegistry returns a registry holding the built-in kinds.
func NewRegistry() *Registry {
	kinds := make([]extract.Kind, len(Builtin))
	copy(kinds, Builtin)
	return &Registry{kinds: kinds}
}

// Register adds a kind. A kind with the name of an existing one replaces it.
func (r *Registry) Register(k extract.Kind) error {
	if err := k.Validate(); err != nil {
		return err
	}
	for i := range r.kinds {
		if r.kinds[i].Name == k.Name {
			r.kinds[i] = k
			return nil
		}
	}
	r.kinds = append(r.kinds, k)
	return nil
}

// SetOutput changes the default output file of a registered kind.
func (r *Registry) SetOutput(name, output string) error {
	for i := range r.kinds {
		if r.kinds[i].Name == name {
			r.kinds[i].Output = output
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownKind, name)
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (extract.Kind, error) {
	for _, k := range r.kinds {
		if k.Name == name {
			return k, nil
		}
	}
	return extract.Kind{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownKind, name, strings.Join(r.Names(), ", "))
}

// LookupAll resolves several names, stopping at the first unknown one.
func (r *Registry) LookupAll(names []string) ([]extract.Kind, error) {
	kinds := make([]extract.Kind, 0, len(names))
	for _, name := range names {
		k, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// All returns the registered kinds in registration order.
func (r *Registry) All() []extract.Kind {
	out := make([]extract.Kind, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.kinds))
	for _, k := range r.kinds {
		names = append(names, k.Name)
	}
	sort.Strings(names)
	return names
}
