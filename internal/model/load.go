package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadFromFile loads a model document from a JSON file
func LoadFromFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Load parses a model document. Only the top-level Elements mapping is kept;
// every other field is skipped. A missing or null Elements yields an empty document.
func Load(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("document root: %w", err)
	}

	doc := &Document{}
	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return nil, err
		}
		if key != "Elements" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
			continue
		}
		entries, err := decodeElements(dec)
		if err != nil {
			return nil, fmt.Errorf("Elements: %w", err)
		}
		// a repeated key replaces the earlier mapping
		doc.Elements = entries
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, errors.New("unexpected data after document")
		}
		return nil, err
	}
	return doc, nil
}

func decodeElements(dec *json.Decoder) ([]Entry, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	var entries []Entry
	index := make(map[string]int)
	for dec.More() {
		id, err := objectKey(dec)
		if err != nil {
			return nil, err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("element %q: %w", id, err)
		}

		// non-object records carry no fields and are never selected
		var el Element
		if err := json.Unmarshal(raw, &el); err != nil || el == nil {
			el = Element{}
		}

		// a repeated identifier keeps its first position and its last value
		if i, seen := index[id]; seen {
			entries[i].Element = el
			continue
		}
		index[id] = len(entries)
		entries = append(entries, Entry{ID: id, Element: el})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return ErrNotObject
	}
	return nil
}

func objectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("unexpected token %v", tok)
	}
	return key, nil
}
