// Package syncengine turns driver queue items into sync actions. Every
// handler is a fault-isolation boundary: failures are logged and
// reported, never returned, so one bad item cannot stall the queue.
package syncengine

import (
	"context"
	"fmt"
	"log/slog"
)

//go:generate mockgen -destination=mocks_test.go -package=syncengine . Drive,Orchestrator,Reporter

// Kind identifies what a queue item asks for.
type Kind string

const (
	KindChangeSize Kind = "change-size"
	KindHydrate    Kind = "hydrate"
)

// QueueItem is one driver notification.
type QueueItem struct {
	Path string `json:"path"`
	Kind Kind   `json:"kind"`
}

// Drive materializes placeholder content.
type Drive interface {
	HydrateFile(ctx context.Context, path string) error
}

// Orchestrator synchronizes file content for the given paths.
type Orchestrator interface {
	Run(ctx context.Context, paths []string) error
}

// Reporter receives errors swallowed at the handler boundary.
type Reporter interface {
	CaptureException(ctx context.Context, err error, attrs ...slog.Attr)
}

// HandleChangeSize syncs the content of a file whose size changed.
type HandleChangeSize struct {
	orchestrator Orchestrator
	reporter     Reporter
	logger       *slog.Logger
}

func NewHandleChangeSize(orchestrator Orchestrator, reporter Reporter, logger *slog.Logger) *HandleChangeSize {
	return &HandleChangeSize{orchestrator: orchestrator, reporter: reporter, logger: logger}
}

// Run invokes the orchestrator for item.Path alone.
func (h *HandleChangeSize) Run(ctx context.Context, item QueueItem) {
	isolate(ctx, h.reporter, h.logger, "change size", item, func() error {
		return h.orchestrator.Run(ctx, []string{item.Path})
	})
}

// HandleHydrate asks the driver to materialize a placeholder.
type HandleHydrate struct {
	drive    Drive
	reporter Reporter
	logger   *slog.Logger
}

func NewHandleHydrate(drive Drive, reporter Reporter, logger *slog.Logger) *HandleHydrate {
	return &HandleHydrate{drive: drive, reporter: reporter, logger: logger}
}

// Run hydrates item.Path.
func (h *HandleHydrate) Run(ctx context.Context, item QueueItem) {
	isolate(ctx, h.reporter, h.logger, "hydrate", item, func() error {
		return h.drive.HydrateFile(ctx, item.Path)
	})
}

// isolate runs action and absorbs any error or panic it produces.
func isolate(ctx context.Context, reporter Reporter, logger *slog.Logger, action string, item QueueItem, fn func() error) {
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()

		err = fn()
	}()

	if err == nil {
		return
	}

	logger.Error(action+" failed",
		slog.String("path", item.Path),
		slog.String("error", err.Error()),
	)

	reporter.CaptureException(ctx, fmt.Errorf("%s %s: %w", action, item.Path, err),
		slog.String("path", item.Path),
		slog.String("kind", string(item.Kind)),
	)
}
