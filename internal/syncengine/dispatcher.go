package syncengine

import (
	"context"
	"log/slog"

	"github.com/alexjbarnes/drive-sync/internal/keylock"
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/sync/errgroup"
)

// handler is the shape shared by HandleChangeSize and HandleHydrate.
type handler interface {
	Run(ctx context.Context, item QueueItem)
}

// Dispatcher consumes the driver queue and runs one handler per item.
// Items for different paths run concurrently up to workers; items for
// the same path run one at a time, and an item identical to one still
// waiting to start is collapsed into it.
type Dispatcher struct {
	handlers map[Kind]handler
	workers  int
	locks    *keylock.Locker
	inflight mapset.Set[QueueItem]
	logger   *slog.Logger
}

func NewDispatcher(changeSize *HandleChangeSize, hydrate *HandleHydrate, workers int, logger *slog.Logger) *Dispatcher {
	return newDispatcher(map[Kind]handler{
		KindChangeSize: changeSize,
		KindHydrate:    hydrate,
	}, workers, logger)
}

func newDispatcher(handlers map[Kind]handler, workers int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}

	return &Dispatcher{
		handlers: handlers,
		workers:  workers,
		locks:    keylock.New(),
		inflight: mapset.NewSet[QueueItem](),
		logger:   logger,
	}
}

// Run blocks until items is closed or ctx is cancelled, then waits for
// in-flight handlers. It returns ctx.Err() on cancellation and nil when
// the queue closes.
func (d *Dispatcher) Run(ctx context.Context, items <-chan QueueItem) error {
	var g errgroup.Group

	g.SetLimit(d.workers)

	defer g.Wait()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case item, ok := <-items:
			if !ok {
				return nil
			}

			d.dispatch(ctx, &g, item)
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, g *errgroup.Group, item QueueItem) {
	h, ok := d.handlers[item.Kind]
	if !ok {
		d.logger.Warn("dropping queue item with unknown kind",
			slog.String("path", item.Path),
			slog.String("kind", string(item.Kind)),
		)

		return
	}

	if !d.inflight.Add(item) {
		d.logger.Debug("queue item already pending", slog.String("path", item.Path))
		return
	}

	g.Go(func() error {
		unlock := d.locks.Lock(item.Path)
		defer unlock()

		// Anything arriving from here on may see newer content and must
		// run again.
		d.inflight.Remove(item)

		h.Run(ctx, item)

		return nil
	})
}
