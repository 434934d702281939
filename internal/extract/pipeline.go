package extract

import (
	"errors"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/grasshopper"
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/model"
	"go.uber.org/zap"
)

// Reason names why a matched element was left out of the output.
type Reason string

const (
	ReasonMissingLabel      Reason = "missing-label"
	ReasonMissingGeometry   Reason = "missing-geometry"
	ReasonMalformedGeometry Reason = "malformed-geometry"
	ReasonUnclassified      Reason = "unclassified"
	ReasonDuplicate         Reason = "duplicate"
)

// Reasons lists every rejection reason in pipeline order.
var Reasons = []Reason{
	ReasonMissingLabel,
	ReasonMissingGeometry,
	ReasonMalformedGeometry,
	ReasonUnclassified,
	ReasonDuplicate,
}

// Result is the outcome of one pipeline run.
type Result struct {
	Kind     Kind
	Output   *grasshopper.Document
	Matched  int            // elements whose discriminator matched
	Rejected map[Reason]int // matched elements left out, by reason
}

// Exported returns the number of retained members.
func (r *Result) Exported() int {
	return r.Output.Len()
}

// Pipeline extracts one kind of member from a model document.
type Pipeline struct {
	kind   Kind
	mode   FingerprintMode
	logger *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithFingerprint selects the fingerprint mode. The default is Canonical.
func WithFingerprint(mode FingerprintMode) Option {
	return func(p *Pipeline) { p.mode = mode }
}

// WithLogger sets the logger used for per-element debug entries.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// New returns a pipeline for kind.
func New(kind Kind, opts ...Option) *Pipeline {
	p := &Pipeline{
		kind:   kind,
		mode:   Canonical,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	p.logger = p.logger.With(zap.String("kind", kind.Name))
	return p
}

// Kind returns the pipeline's kind.
func (p *Pipeline) Kind() Kind {
	return p.kind
}

// Run makes one pass over doc. The document is not modified; a Pipeline may be
// run concurrently with other pipelines over the same document.
func (p *Pipeline) Run(doc *model.Document) *Result {
	res := &Result{
		Kind:     p.kind,
		Output:   grasshopper.NewDocument(p.kind.Label),
		Rejected: make(map[Reason]int),
	}
	seen := NewSeen()

	for _, entry := range Filter(doc, p.kind.Discriminator) {
		res.Matched++

		code, line, reason, ok := p.member(entry.Element, seen)
		if !ok {
			res.Rejected[reason]++
			p.logger.Debug("element skipped",
				zap.String("element", entry.ID),
				zap.String("reason", string(reason)))
			continue
		}

		res.Output.Append(code, Normalize(line.Start), Normalize(line.End))
	}

	p.logger.Info("kind extracted",
		zap.Int("matched", res.Matched),
		zap.Int("exported", res.Exported()),
		zap.Int("duplicates", res.Rejected[ReasonDuplicate]))
	return res
}

// member applies extraction, classification and deduplication to one element.
// The seen set only changes when the element is retained.
func (p *Pipeline) member(el model.Element, seen *Seen) (string, model.Line, Reason, bool) {
	label, line, reason, ok := Extract(el, p.kind)
	if !ok {
		return "", model.Line{}, reason, false
	}

	code, ok := p.kind.Classifier.Classify(label)
	if !ok {
		return "", model.Line{}, ReasonUnclassified, false
	}

	if !seen.Add(Fingerprint(line, p.mode)) {
		return "", model.Line{}, ReasonDuplicate, false
	}
	return code, line, "", true
}

// Filter returns the entries whose discriminator equals tag, in document order.
// Entries without a discriminator never match.
func Filter(doc *model.Document, tag string) []model.Entry {
	var out []model.Entry
	for _, e := range doc.Elements {
		if d := e.Element.Discriminator(); d != "" && d == tag {
			out = append(out, e)
		}
	}
	return out
}

// Extract reads the label and reference line named by kind. It reports the
// rejection reason when the label is empty or an endpoint is unusable.
func Extract(el model.Element, kind Kind) (string, model.Line, Reason, bool) {
	label := el.String(kind.LabelField)
	if label == "" {
		return "", model.Line{}, ReasonMissingLabel, false
	}

	line, err := el.Line(kind.LineField)
	switch {
	case errors.Is(err, model.ErrMissingPoint):
		return "", model.Line{}, ReasonMissingGeometry, false
	case err != nil:
		return "", model.Line{}, ReasonMalformedGeometry, false
	}
	return label, line, "", true
}
