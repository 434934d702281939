package extract

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/model"
)

// FingerprintMode selects how axis values are rendered before hashing.
type FingerprintMode string

const (
	// Canonical renders every axis as the shortest round-trip float64 text,
	// so 1, 1.0 and 1e0 produce the same fingerprint.
	Canonical FingerprintMode = "canonical"

	// Literal renders every axis exactly as written in the source document.
	Literal FingerprintMode = "literal"
)

// ParseFingerprintMode accepts "canonical" or "literal". An empty string means Canonical.
func ParseFingerprintMode(s string) (FingerprintMode, error) {
	switch FingerprintMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Canonical:
		return Canonical, nil
	case Literal:
		return Literal, nil
	}
	return "", fmt.Errorf("unknown fingerprint mode %q (use canonical or literal)", s)
}

// Fingerprint returns the hex MD5 digest of "sx,sy,sz|ex,ey,ez".
// The digest is directional: swapping Start and End changes it.
func Fingerprint(l model.Line, mode FingerprintMode) string {
	render := literal
	if mode != Literal {
		render = canonical
	}

	key := fmt.Sprintf("%s,%s,%s|%s,%s,%s",
		render(l.Start.X), render(l.Start.Y), render(l.Start.Z),
		render(l.End.X), render(l.End.Y), render(l.End.Z))

	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}

func literal(n json.Number) string {
	if n == "" {
		return "0"
	}
	return n.String()
}

func canonical(n json.Number) string {
	if n == "" {
		return "0"
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return n.String()
	}
	if f == 0 {
		f = 0 // folds -0
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Seen is the set of fingerprints retained during one run.
type Seen struct {
	set map[string]struct{}
}

// NewSeen returns an empty set.
func NewSeen() *Seen {
	return &Seen{set: make(map[string]struct{})}
}

// Add records fp and reports whether it was new.
func (s *Seen) Add(fp string) bool {
	if _, ok := s.set[fp]; ok {
		return false
	}
	s.set[fp] = struct{}{}
	return true
}

// Len returns the number of distinct fingerprints recorded.
func (s *Seen) Len() int {
	return len(s.set)
}
