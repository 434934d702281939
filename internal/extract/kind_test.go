package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries_Classify(t *testing.T) {
	joist := MustSeries(`\d+(?:K|LH|DLH)`)
	girder := MustSeries(`\d+G`)

	tests := []struct {
		name   string
		series *Series
		label  string
		want   string
		ok     bool
	}{
		{"K series", joist, "30K10", "30K", true},
		{"LH series", joist, "40LH12", "40LH", true},
		{"DLH series", joist, "44DLH17", "44DLH", true},
		{"not anchored", joist, "J30K10", Unknown, false},
		{"no digits", joist, "K10", Unknown, false},
		{"other series", joist, "24KCS4", "24K", true},
		{"girder", girder, "300G8N10K", "300G", true},
		{"girder without G", girder, "300", Unknown, false},
		{"empty", girder, "", Unknown, false},
		{"garbage", girder, "XYZ", Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.series.Classify(tt.label)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestSeries_LongestPrefix(t *testing.T) {
	s := MustSeries(`\d+(?:L|LH)`)
	got, ok := s.Classify("40LH12")
	require.True(t, ok)
	assert.Equal(t, "40LH", got)
}

func TestSeries_Deterministic(t *testing.T) {
	s := MustSeries(`\d+K`)
	first, _ := s.Classify("18K3")
	for i := 0; i < 10; i++ {
		got, _ := s.Classify("18K3")
		assert.Equal(t, first, got)
	}
}

func TestNewSeries_BadPattern(t *testing.T) {
	_, err := NewSeries(`\d+(`)
	assert.Error(t, err)
	assert.Panics(t, func() { MustSeries(`[`) })
}

func TestVerbatim(t *testing.T) {
	got, ok := Verbatim{}.Classify("XYZ")
	assert.True(t, ok)
	assert.Equal(t, "XYZ", got)

	got, ok = Verbatim{}.Classify(Unknown)
	assert.True(t, ok)
	assert.Equal(t, Unknown, got)
}

func TestKind_Validate(t *testing.T) {
	valid := Kind{
		Name:          "beams",
		Label:         "beam",
		Discriminator: "Elements.Beam",
		LabelField:    "Name",
		LineField:     "CenterLine",
		Classifier:    Verbatim{},
	}
	require.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(*Kind){
		"name":          func(k *Kind) { k.Name = "" },
		"label":         func(k *Kind) { k.Label = "" },
		"discriminator": func(k *Kind) { k.Discriminator = "" },
		"label field":   func(k *Kind) { k.LabelField = "" },
		"line field":    func(k *Kind) { k.LineField = "" },
		"classifier":    func(k *Kind) { k.Classifier = nil },
	} {
		t.Run(name, func(t *testing.T) {
			k := valid
			mutate(&k)
			assert.Error(t, k.Validate())
		})
	}
}
