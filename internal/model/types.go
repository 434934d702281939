package model

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Document is a parsed model export.
// Elements keeps the order in which element identifiers first appear in the source.
type Document struct {
	Elements []Entry
}

// Entry pairs an element identifier with its record.
type Entry struct {
	ID      string
	Element Element
}

// Element is one record of the Elements mapping. Field values are kept as raw
// JSON and decoded on demand, so unknown fields cost nothing.
type Element map[string]json.RawMessage

// Point3 holds the three axis values of a point as they appeared in the source.
// An empty value means the axis was absent.
type Point3 struct {
	X json.Number
	Y json.Number
	Z json.Number
}

// Line is a directed reference line. (Start, End) and (End, Start) are different lines.
type Line struct {
	Start Point3
	End   Point3
}

var (
	// ErrNotObject is returned when the document root or its Elements field is not a JSON object.
	ErrNotObject = errors.New("not a JSON object")

	// ErrMissingPoint means a line has no usable Start or End.
	ErrMissingPoint = errors.New("missing line endpoint")

	// ErrMalformedPoint means a line or endpoint is present but has the wrong shape.
	ErrMalformedPoint = errors.New("malformed line endpoint")
)

// Len returns the number of elements in the document.
func (d *Document) Len() int {
	return len(d.Elements)
}

// String returns the string value of a field, or "" when the field is absent
// or is not a JSON string.
func (e Element) String(key string) string {
	raw, ok := e[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Discriminator returns the element's type tag.
func (e Element) Discriminator() string {
	return e.String("discriminator")
}

// Line reads a {Start, End} field. An absent, null or empty endpoint yields
// ErrMissingPoint; an endpoint that is not an object of numbers yields ErrMalformedPoint.
func (e Element) Line(key string) (Line, error) {
	fields, err := object(e[key])
	if err != nil {
		return Line{}, err
	}

	start, err := endpoint(fields, "Start")
	if err != nil {
		return Line{}, err
	}
	end, err := endpoint(fields, "End")
	if err != nil {
		return Line{}, err
	}
	return Line{Start: start, End: end}, nil
}

func endpoint(fields map[string]json.RawMessage, key string) (Point3, error) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return Point3{}, ErrMissingPoint
	}
	return ParsePoint(raw)
}

// ParsePoint decodes a point written with either capitalized (X, Y, Z) or
// lowercase (x, y, z) keys. Capitalized keys win when both are present.
func ParsePoint(raw json.RawMessage) (Point3, error) {
	fields, err := object(raw)
	if err != nil {
		return Point3{}, err
	}
	if len(fields) == 0 {
		return Point3{}, ErrMissingPoint
	}

	var p Point3
	for _, axis := range []struct {
		upper, lower string
		dst          *json.Number
	}{
		{"X", "x", &p.X},
		{"Y", "y", &p.Y},
		{"Z", "z", &p.Z},
	} {
		v, ok := fields[axis.upper]
		if !ok {
			v, ok = fields[axis.lower]
		}
		if !ok || isNull(v) {
			continue
		}
		n, err := number(v)
		if err != nil {
			return Point3{}, err
		}
		*axis.dst = n
	}
	return p, nil
}

// object decodes raw as a JSON object. Absent and null values decode to an empty map.
func object(raw json.RawMessage) (map[string]json.RawMessage, error) {
	if len(raw) == 0 || isNull(raw) {
		return map[string]json.RawMessage{}, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, ErrMalformedPoint
	}
	return fields, nil
}

func number(raw json.RawMessage) (json.Number, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", ErrMalformedPoint
	}
	n, ok := v.(json.Number)
	if !ok {
		return "", ErrMalformedPoint
	}
	return n, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
