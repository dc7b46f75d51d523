package charts

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mwiater/mlmon/internal/prediction"
)

// AssembleAll builds every spec over the same records concurrently. Results
// are returned in spec order. The first failure cancels the remaining work.
func AssembleAll(ctx context.Context, specs []Spec, records []prediction.Record) ([]Result, error) {
	results := make([]Result, len(specs))
	g, ctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Assemble(spec, records)
			if err != nil {
				return fmt.Errorf("chart %d (%s): %w", i, spec.ChartType, err)
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
