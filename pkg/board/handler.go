package board

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/observability"
)

// Outcome is the result of handling one event.
type Outcome struct {
	Type    Type
	ItemID  string
	Applied bool
	// Reason is set when Applied is false.
	Reason errors.Code
}

// Handler applies events to one board.
type Handler interface {
	Handle(ctx context.Context, e Event) Outcome
	// Variant names the board kind, "grid" or "quadrant".
	Variant() string
}

// ReplayResult summarizes a replayed event log.
type ReplayResult struct {
	Outcomes []Outcome
	Applied  int
	Rejected int
}

// Replay applies events in order. Rejections are recorded, not returned; the
// only error is context cancellation.
func Replay(ctx context.Context, h Handler, events []Event) (ReplayResult, error) {
	start := time.Now()
	res := ReplayResult{Outcomes: make([]Outcome, 0, len(events))}
	for _, e := range events {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		out := h.Handle(ctx, e)
		res.Outcomes = append(res.Outcomes, out)
		if out.Applied {
			res.Applied++
		} else {
			res.Rejected++
		}
	}
	observability.Board().OnReplay(ctx, h.Variant(), len(events), res.Rejected, time.Since(start))
	return res, nil
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return logger
}

// finish logs and reports an outcome.
func finish(ctx context.Context, logger *log.Logger, variant string, start time.Time, out Outcome, kv ...any) Outcome {
	kv = append([]any{"event", out.Type, "item", out.ItemID}, kv...)
	if out.Applied {
		logger.Debug("applied", kv...)
	} else {
		logger.Debug("rejected", append(kv, "reason", out.Reason)...)
	}
	observability.Board().OnEvent(ctx, variant, string(out.Type), out.Applied, string(out.Reason), time.Since(start))
	return out
}

func rejected(e Event, itemID string, err error) Outcome {
	return Outcome{Type: e.Type, ItemID: itemID, Reason: errors.GetCode(err)}
}
