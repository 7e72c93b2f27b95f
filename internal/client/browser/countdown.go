package browser

import (
	"context"
	"fmt"
	"time"
)

// EndedLabel is the display value for auctions no longer accepting bids.
const EndedLabel = "Ended"

// IsActive reports whether an auction still accepts bids: not flagged
// closed and its end time has not passed.
func IsActive(endTime time.Time, isClosed bool, now time.Time) bool {
	return !isClosed && endTime.After(now)
}

// FormatRemaining renders the time left until endTime at the granularity
// the auction cards use: the first non-zero unit pair wins, descending.
//
//	>= 1 day   → "{days}d {hours}h"
//	>= 1 hour  → "{hours}h {minutes}m"
//	otherwise  → "{minutes}m"
//
// Closed or elapsed auctions render as EndedLabel.
func FormatRemaining(endTime time.Time, isClosed bool, now time.Time) string {
	if isClosed {
		return EndedLabel
	}

	remaining := endTime.Sub(now)
	if remaining <= 0 {
		return EndedLabel
	}

	days := int(remaining / (24 * time.Hour))
	hours := int(remaining % (24 * time.Hour) / time.Hour)
	minutes := int(remaining % time.Hour / time.Minute)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// StartCountdownRefresher calls render at every interval tick until ctx is
// done. Open list/detail views run this in a goroutine so the displayed
// time remaining is recomputed live instead of drifting from a one-shot
// value captured at load time; cancelling the context on view teardown
// stops it.
func (b *Browser) StartCountdownRefresher(ctx context.Context, interval time.Duration, render func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			render()
		case <-ctx.Done():
			return
		}
	}
}
