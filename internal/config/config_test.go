package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "amejson.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
output_dir: out
fingerprint: literal
log:
  level: debug
kinds:
  columns:
    output: cols.json
  beams:
    discriminator: Elements.Beam
    label_field: Name
    line_field: CenterLine
    pattern: 'W\d+'
`))
	require.NoError(t, err)

	assert.Equal(t, "model.json", cfg.Input)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, extract.Literal, cfg.FingerprintMode())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	r, err := cfg.Registry()
	require.NoError(t, err)

	cols, err := r.Lookup("columns")
	require.NoError(t, err)
	assert.Equal(t, "cols.json", cols.Output)

	beams, err := r.Lookup("beams")
	require.NoError(t, err)
	assert.Equal(t, "beams", beams.Label)
	assert.Equal(t, "beams_for_grasshopper.json", beams.Output)
	code, ok := beams.Classifier.Classify("W8X31")
	assert.True(t, ok)
	assert.Equal(t, "W8", code)
}

func TestLoad_VerbatimCustomKind(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
kinds:
  braces:
    label: brace
    discriminator: Elements.Brace
    label_field: Name
    line_field: CenterLine
    output: braces.json
`))
	require.NoError(t, err)
	r, err := cfg.Registry()
	require.NoError(t, err)
	k, err := r.Lookup("braces")
	require.NoError(t, err)
	assert.Equal(t, extract.Verbatim{}, k.Classifier)
	assert.Equal(t, "braces.json", k.Output)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":          "kinds: [",
		"bad fingerprint":   "fingerprint: sha1",
		"empty input":       "input: ''",
		"redefined builtin": "kinds:\n  joists:\n    label_field: Name\n",
		"incomplete custom": "kinds:\n  beams:\n    discriminator: Elements.Beam\n",
		"bad pattern":       "kinds:\n  beams:\n    discriminator: X\n    label_field: N\n    line_field: L\n    pattern: '('\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_ValidationErrorType(t *testing.T) {
	_, err := Load(writeConfig(t, "fingerprint: sha1"))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "fingerprint", verr.Field)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, extract.Canonical, cfg.FingerprintMode())

	r, err := cfg.Registry()
	require.NoError(t, err)
	assert.Len(t, r.All(), 4)
}
