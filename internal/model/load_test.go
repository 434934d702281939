package model

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PreservesElementOrder(t *testing.T) {
	doc, err := Load(strings.NewReader(`{
		"Name": "ignored",
		"Elements": {
			"z": {"discriminator": "Elements.AMEJoist"},
			"a": {"discriminator": "Elements.AMEColumn"},
			"m": {"discriminator": "Elements.AMEJoistGirder"}
		},
		"Transform": {"Matrix": [1, 0, 0]}
	}`))
	require.NoError(t, err)
	require.Equal(t, 3, doc.Len())

	var ids []string
	for _, e := range doc.Elements {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"z", "a", "m"}, ids)
	assert.Equal(t, "Elements.AMEColumn", doc.Elements[1].Element.Discriminator())
}

func TestLoad_RepeatedIDKeepsFirstPositionLastValue(t *testing.T) {
	doc, err := Load(strings.NewReader(`{"Elements": {
		"a": {"Name": "first"},
		"b": {"Name": "other"},
		"a": {"Name": "second"}
	}}`))
	require.NoError(t, err)
	require.Equal(t, 2, doc.Len())
	assert.Equal(t, "a", doc.Elements[0].ID)
	assert.Equal(t, "second", doc.Elements[0].Element.String("Name"))
}

func TestLoad_MissingOrNullElements(t *testing.T) {
	for _, input := range []string{`{}`, `{"Elements": null}`, `{"Other": {"Elements": {"a": {}}}}`} {
		doc, err := Load(strings.NewReader(input))
		require.NoError(t, err, input)
		assert.Zero(t, doc.Len(), input)
	}
}

func TestLoad_NonObjectElementIsKeptWithoutFields(t *testing.T) {
	doc, err := Load(strings.NewReader(`{"Elements": {"a": [1, 2], "b": "text"}}`))
	require.NoError(t, err)
	require.Equal(t, 2, doc.Len())
	assert.Empty(t, doc.Elements[0].Element.Discriminator())
	assert.Empty(t, doc.Elements[1].Element)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		isNot bool
	}{
		{name: "empty", input: ``},
		{name: "truncated", input: `{"Elements": {"a": {`},
		{name: "array root", input: `[]`, isNot: true},
		{name: "array elements", input: `{"Elements": []}`, isNot: true},
		{name: "trailing data", input: `{} {}`},
		{name: "not json", input: `Elements`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.isNot {
				assert.True(t, errors.Is(err, ErrNotObject), "got %v", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	path := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Elements": {"a": {"discriminator": "Elements.AMEColumn"}}}`), 0o644))
	doc, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Len())

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"Elements": `), 0o644))
	_, err = LoadFromFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestElement_String(t *testing.T) {
	el := Element{
		"Name":  json.RawMessage(`"30K10"`),
		"Count": json.RawMessage(`3`),
		"Nil":   json.RawMessage(`null`),
	}
	assert.Equal(t, "30K10", el.String("Name"))
	assert.Equal(t, "", el.String("Count"))
	assert.Equal(t, "", el.String("Nil"))
	assert.Equal(t, "", el.String("Absent"))
}

func TestElement_Line(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		want    Line
		wantErr error
	}{
		{
			name:  "capitalized",
			field: `{"Start": {"X": 0, "Y": 1.5, "Z": -2}, "End": {"X": 100, "Y": 0, "Z": 0}}`,
			want: Line{
				Start: Point3{X: "0", Y: "1.5", Z: "-2"},
				End:   Point3{X: "100", Y: "0", Z: "0"},
			},
		},
		{
			name:  "lowercase with missing axis",
			field: `{"Start": {"x": 1, "y": 2}, "End": {"x": 3, "y": 4, "z": 5}}`,
			want: Line{
				Start: Point3{X: "1", Y: "2"},
				End:   Point3{X: "3", Y: "4", Z: "5"},
			},
		},
		{
			name:  "capitalized wins",
			field: `{"Start": {"X": 1, "x": 9, "Y": 0, "Z": 0}, "End": {"X": 2, "Y": 0, "Z": 0}}`,
			want: Line{
				Start: Point3{X: "1", Y: "0", Z: "0"},
				End:   Point3{X: "2", Y: "0", Z: "0"},
			},
		},
		{name: "absent field", field: ``, wantErr: ErrMissingPoint},
		{name: "no end", field: `{"Start": {"X": 1, "Y": 0, "Z": 0}}`, wantErr: ErrMissingPoint},
		{name: "null start", field: `{"Start": null, "End": {"X": 1}}`, wantErr: ErrMissingPoint},
		{name: "empty start", field: `{"Start": {}, "End": {"X": 1}}`, wantErr: ErrMissingPoint},
		{name: "line not object", field: `[1, 2]`, wantErr: ErrMalformedPoint},
		{name: "axis not number", field: `{"Start": {"X": "1"}, "End": {"X": 1}}`, wantErr: ErrMalformedPoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := Element{}
			if tt.field != "" {
				el["CenterLine"] = json.RawMessage(tt.field)
			}
			got, err := el.Line("CenterLine")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
