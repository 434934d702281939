package extract

import (
	"encoding/json"
	"testing"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(sx, sy, sz, ex, ey, ez string) model.Line {
	return model.Line{
		Start: model.Point3{X: json.Number(sx), Y: json.Number(sy), Z: json.Number(sz)},
		End:   model.Point3{X: json.Number(ex), Y: json.Number(ey), Z: json.Number(ez)},
	}
}

func TestFingerprint_KnownDigest(t *testing.T) {
	// md5("0,0,0|100,0,0")
	l := line("0", "0", "0", "100", "0", "0")
	assert.Equal(t, "a35b653903c89f3e9ddc4b35806d3510", Fingerprint(l, Literal))
	assert.Len(t, Fingerprint(l, Canonical), 32)
}

func TestFingerprint_Directional(t *testing.T) {
	a := line("0", "0", "0", "100", "0", "0")
	b := line("100", "0", "0", "0", "0", "0")
	for _, mode := range []FingerprintMode{Canonical, Literal} {
		assert.NotEqual(t, Fingerprint(a, mode), Fingerprint(b, mode), mode)
	}
}

func TestFingerprint_NumericFormatting(t *testing.T) {
	ints := line("1", "0", "0", "2", "0", "0")
	floats := line("1.0", "0.0", "-0", "2e0", "0", "0.00")

	assert.Equal(t, Fingerprint(ints, Canonical), Fingerprint(floats, Canonical))
	assert.NotEqual(t, Fingerprint(ints, Literal), Fingerprint(floats, Literal))
}

func TestFingerprint_MissingAxisIsZero(t *testing.T) {
	missing := line("1", "2", "", "3", "4", "")
	explicit := line("1", "2", "0", "3", "4", "0")
	for _, mode := range []FingerprintMode{Canonical, Literal} {
		assert.Equal(t, Fingerprint(explicit, mode), Fingerprint(missing, mode), mode)
	}
}

func TestParseFingerprintMode(t *testing.T) {
	for input, want := range map[string]FingerprintMode{
		"":          Canonical,
		"canonical": Canonical,
		" Literal ": Literal,
		"LITERAL":   Literal,
		"CANONICAL": Canonical,
	} {
		got, err := ParseFingerprintMode(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseFingerprintMode("sha1")
	assert.Error(t, err)
}

func TestSeen(t *testing.T) {
	s := NewSeen()
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Add("b"))
	assert.Equal(t, 2, s.Len())
}
