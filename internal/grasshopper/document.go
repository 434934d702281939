// Package grasshopper writes the flat, parallel-array documents consumed by
// the Grasshopper definitions: one type code plus a start and end point per member.
package grasshopper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Point is an endpoint in the lowercase-key output form.
type Point struct {
	X json.Number `json:"x"`
	Y json.Number `json:"y"`
	Z json.Number `json:"z"`
}

// Document holds the retained members of one kind. Index i of Types,
// StartPts and EndPts describes the same member.
type Document struct {
	Label    string
	Types    []string
	StartPts []Point
	EndPts   []Point
}

// NewDocument returns an empty document whose type array is keyed "<label>_types".
func NewDocument(label string) *Document {
	return &Document{
		Label:    label,
		Types:    []string{},
		StartPts: []Point{},
		EndPts:   []Point{},
	}
}

// TypesKey is the JSON key of the type-code array.
func (d *Document) TypesKey() string {
	return d.Label + "_types"
}

// Append adds one member to all three arrays.
func (d *Document) Append(code string, start, end Point) {
	d.Types = append(d.Types, code)
	d.StartPts = append(d.StartPts, start)
	d.EndPts = append(d.EndPts, end)
}

// Len returns the number of members.
func (d *Document) Len() int {
	return len(d.Types)
}

// MarshalJSON writes the three arrays in a fixed key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	fields := []struct {
		key   string
		value any
	}{
		{d.TypesKey(), d.Types},
		{"start_pts", d.StartPts},
		{"end_pts", d.EndPts},
	}
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeCompact(&buf, f.key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeCompact(&buf, f.value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a document back. The label is taken from the single
// key ending in "_types".
func (d *Document) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	out := NewDocument("")
	found := false
	for key, raw := range fields {
		switch key {
		case "start_pts":
			if err := json.Unmarshal(raw, &out.StartPts); err != nil {
				return fmt.Errorf("start_pts: %w", err)
			}
		case "end_pts":
			if err := json.Unmarshal(raw, &out.EndPts); err != nil {
				return fmt.Errorf("end_pts: %w", err)
			}
		default:
			label, ok := strings.CutSuffix(key, "_types")
			if !ok {
				continue
			}
			if found {
				return fmt.Errorf("more than one *_types array")
			}
			found = true
			out.Label = label
			if err := json.Unmarshal(raw, &out.Types); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	if !found {
		return fmt.Errorf("no *_types array")
	}
	if len(out.StartPts) != len(out.Types) || len(out.EndPts) != len(out.Types) {
		return fmt.Errorf("array lengths differ: %d types, %d start_pts, %d end_pts",
			len(out.Types), len(out.StartPts), len(out.EndPts))
	}
	*d = *out
	return nil
}

// Encode writes the document with two-space indentation.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// WriteFile writes the document to path. The data goes to a temporary file in
// the same directory first, so a failed write leaves any previous file intact.
func WriteFile(path string, d *Document) error {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ReadFile loads a document written by WriteFile.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &d, nil
}

func encodeCompact(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates each value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
