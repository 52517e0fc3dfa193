package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchParallelism bounds concurrent evaluations when the caller
// does not choose a limit.
const DefaultBatchParallelism = 8

// BatchItem is one pair's outcome in a batch. Err carries a failed
// evaluation as data so the rest of the batch is unaffected.
type BatchItem struct {
	ProductID int
	StoreID   int
	Decision  *Decision
	Err       error
}

// EvaluateBatch fans independent evaluations out across a bounded worker
// group. Results are returned in request order; per-item failures are
// recorded on the item, never aborting the batch. Only context
// cancellation stops the fan-out early, leaving unstarted items with the
// context error.
func (e *Engine) EvaluateBatch(ctx context.Context, reqs []EvaluateRequest, maxParallel int) []BatchItem {
	if maxParallel <= 0 {
		maxParallel = DefaultBatchParallelism
	}

	items := make([]BatchItem, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, req := range reqs {
		i, req := i, req
		items[i] = BatchItem{ProductID: req.ProductID, StoreID: req.StoreID}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				items[i].Err = err
				return nil
			}
			decision, err := e.Evaluate(ctx, req)
			items[i].Decision = decision
			items[i].Err = err
			return nil
		})
	}

	// Workers always return nil; the group is used for bounding and
	// context plumbing only.
	_ = g.Wait()
	return items
}
