package sanitize

import (
	"context"
	"fmt"

	"github.com/Veraticus/formal-bridge/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchOptions controls how a column of amounts is sanitized.
type BatchOptions struct {
	// Progress is called once per sanitized cell. It must be safe for concurrent use.
	Progress func()
	// Workers bounds the number of cells sanitized concurrently. Values below 2 run inline.
	Workers int
}

// Amounts sanitizes every cell in raw. The result has the same length and order as raw
// regardless of how many workers evaluated it.
func Amounts(ctx context.Context, raw []any, opts BatchOptions) ([]model.SanitizedValue[float64], error) {
	results := make([]model.SanitizedValue[float64], len(raw))

	if opts.Workers < 2 {
		for i, cell := range raw {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("sanitize row %d: %w", i, err)
			}
			results[i] = Amount(cell)
			if opts.Progress != nil {
				opts.Progress()
			}
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, cell := range raw {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return fmt.Errorf("sanitize row %d: %w", i, gctx.Err())
			default:
			}
			// Each goroutine owns exactly one slot.
			results[i] = Amount(cell)
			if opts.Progress != nil {
				opts.Progress()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
