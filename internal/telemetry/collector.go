package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexjbarnes/drive-sync/internal/state"
	"github.com/google/uuid"
)

// reportStore is the subset of state.State used to persist reports.
// Extracted for testability.
type reportStore interface {
	SaveReport(r state.Report) error
}

// Collector records errors that were swallowed at a callback boundary.
// Each capture is logged and kept in the state database until it can be
// uploaded.
type Collector struct {
	store  reportStore
	device string
	logger *slog.Logger
}

func NewCollector(store *state.State, device string, logger *slog.Logger) *Collector {
	return &Collector{store: store, device: device, logger: logger}
}

// CaptureException logs err with attrs and persists a report. A failure
// to persist is logged and otherwise ignored.
func (c *Collector) CaptureException(ctx context.Context, err error, attrs ...slog.Attr) {
	if err == nil {
		return
	}

	report := state.Report{
		ID:         uuid.NewString(),
		Message:    err.Error(),
		Attrs:      make(map[string]string, len(attrs)+1),
		CapturedAt: time.Now().UTC(),
	}

	if c.device != "" {
		report.Attrs["device"] = c.device
	}

	for _, a := range attrs {
		report.Attrs[a.Key] = a.Value.String()
	}

	logAttrs := append([]slog.Attr{
		slog.String("report", report.ID),
		slog.String("error", err.Error()),
	}, attrs...)
	c.logger.LogAttrs(ctx, slog.LevelError, "exception captured", logAttrs...)

	if err := c.store.SaveReport(report); err != nil {
		c.logger.Warn("failed to persist error report",
			slog.String("report", report.ID),
			slog.String("error", err.Error()),
		)
	}
}
