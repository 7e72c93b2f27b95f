package browser

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var baseNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name     string
		endTime  time.Time
		isClosed bool
		want     string
	}{
		{name: "more than a day", endTime: baseNow.Add(25 * time.Hour), want: "1d 1h"},
		{name: "hours and minutes", endTime: baseNow.Add(2*time.Hour + 5*time.Minute), want: "2h 5m"},
		{name: "minutes only", endTime: baseNow.Add(45 * time.Minute), want: "45m"},
		{name: "several days", endTime: baseNow.Add(72*time.Hour + 30*time.Minute), want: "3d 0h"},
		{name: "under a minute", endTime: baseNow.Add(20 * time.Second), want: "0m"},
		{name: "already over", endTime: baseNow.Add(-time.Minute), want: EndedLabel},
		{name: "exactly now", endTime: baseNow, want: EndedLabel},
		{name: "flagged closed before end time", endTime: baseNow.Add(time.Hour), isClosed: true, want: EndedLabel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatRemaining(tc.endTime, tc.isClosed, baseNow))
		})
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(baseNow.Add(time.Minute), false, baseNow))
	assert.False(t, IsActive(baseNow.Add(time.Minute), true, baseNow))
	assert.False(t, IsActive(baseNow.Add(-time.Minute), false, baseNow))
	assert.False(t, IsActive(baseNow, false, baseNow))
}

func TestStartCountdownRefresher(t *testing.T) {
	b := New(&fakeAPI{}, testLogger())

	var renders atomic.Int64
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		b.StartCountdownRefresher(ctx, 10*time.Millisecond, func() {
			renders.Add(1)
		})
	}()

	assert.Eventually(t, func() bool { return renders.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	after := renders.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, renders.Load(), "refresher must stop rendering once cancelled")
}
