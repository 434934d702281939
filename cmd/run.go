package cmd

import (
	"context"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/extract"
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/model"
	"golang.org/x/sync/errgroup"
)

// loadModel reads the configured input document.
func loadModel() (*model.Document, error) {
	doc, err := model.LoadFromFile(cfg.Input)
	if err != nil {
		return nil, err
	}
	logger.Debug("model loaded")
	return doc, nil
}

func newPipeline(kind extract.Kind) *extract.Pipeline {
	return extract.New(kind,
		extract.WithFingerprint(cfg.FingerprintMode()),
		extract.WithLogger(logger))
}

// extractAll runs one pipeline per kind concurrently over the shared,
// read-only document. each, if set, is called from the kind's goroutine with
// its result. Results are returned in the order of kinds.
func extractAll(ctx context.Context, doc *model.Document, kinds []extract.Kind, each func(*extract.Result) error) ([]*extract.Result, error) {
	results := make([]*extract.Result, len(kinds))

	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		i, kind := i, kind
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := newPipeline(kind).Run(doc)
			if each != nil {
				if err := each(res); err != nil {
					return err
				}
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
