package aggregator

import (
	"context"
	"log/slog"
	"time"

	"unrivaled-games-service/internal/logging"
)

// StartLiveUpdates starts the rolling live-polling loop. Any previously
// running loop is cancelled and awaited first so at most one loop is ever
// active.
func (a *Aggregator) StartLiveUpdates() {
	a.loopMu.Lock()
	defer a.loopMu.Unlock()

	if a.loopCancel != nil {
		a.loopCancel()
		<-a.loopDone
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	a.loopCancel = cancel
	a.loopDone = done

	go a.runLiveLoop(ctx, done)
}

// StopLiveUpdates cancels the loop and waits for the in-flight cycle, if any,
// to finish.
func (a *Aggregator) StopLiveUpdates() {
	a.loopMu.Lock()
	defer a.loopMu.Unlock()

	if a.loopCancel == nil {
		return
	}
	a.loopCancel()
	<-a.loopDone
	a.loopCancel = nil
	a.loopDone = nil
}

func (a *Aggregator) runLiveLoop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	logging.Info(a.logger, "live polling started",
		slog.Int64(logging.FieldDurationMS, a.interval.Milliseconds()),
	)

	for {
		select {
		case <-ctx.Done():
			logging.Info(a.logger, "live polling cancelled")
			return
		case <-ticker.C:
		}
		// Cancellation may have raced the tick; re-check at the iteration
		// boundary so no further cycle starts after a cancel.
		if ctx.Err() != nil {
			logging.Info(a.logger, "live polling cancelled")
			return
		}
		if !a.pollLiveOnce(ctx) {
			logging.Info(a.logger, "live polling stopped: no live games")
			return
		}
	}
}

// pollLiveOnce performs one fetch-and-patch cycle against the live feed only;
// the scrape fallback is a load-time concern, not a polling one. It reports
// whether the loop should continue.
func (a *Aggregator) pollLiveOnce(ctx context.Context) bool {
	start := time.Now()
	live, err := a.source.LiveGames(ctx)
	a.metrics.RecordLiveCycle(time.Since(start), err)

	if err != nil {
		// A failed cycle never stops the loop; only an empty result does.
		logging.Error(a.logger, "live poll cycle failed", err)
		return true
	}
	if len(live) == 0 {
		a.publishMu.Lock()
		a.store.SetLive(nil)
		a.publishMu.Unlock()
		return false
	}

	a.publishMu.Lock()
	a.store.PatchGames(live)
	a.store.SetLive(live)
	a.publishMu.Unlock()

	logging.Info(a.logger, "live games patched", slog.Int(logging.FieldCount, len(live)))
	return true
}
