package client_test

import (
	"sync"
	"testing"
	"time"

	"github.com/dhavanikgithub/fin-ops-sub000/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fireLog collects debounce dispatches under a lock so tests can poll it.
type fireLog struct {
	mu     sync.Mutex
	values []string
}

func (l *fireLog) add(v string) {
	l.mu.Lock()
	l.values = append(l.values, v)
	l.mu.Unlock()
}

func (l *fireLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.values))
	copy(out, l.values)
	return out
}

// Rapid inputs inside the delay window collapse to a single dispatch carrying
// the final value.
func TestDebouncer_CoalescesRapidInput(t *testing.T) {
	var log fireLog
	d := client.NewDebouncer(50*time.Millisecond, log.add)
	defer d.Stop()

	d.Input("a")
	time.Sleep(10 * time.Millisecond)
	d.Input("al")
	time.Sleep(10 * time.Millisecond)
	d.Input("ali")
	time.Sleep(25 * time.Millisecond)
	d.Input("alic")

	require.Eventually(t, func() bool { return len(log.snapshot()) == 1 },
		time.Second, 5*time.Millisecond)

	// quiet period well past the delay: nothing extra fires
	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, []string{"alic"}, log.snapshot())
}

// A settled value equal to the previously dispatched one is skipped.
func TestDebouncer_SkipsRepeatedValue(t *testing.T) {
	var log fireLog
	d := client.NewDebouncer(20*time.Millisecond, log.add)
	defer d.Stop()

	d.Input("query")
	require.Eventually(t, func() bool { return len(log.snapshot()) == 1 },
		time.Second, 5*time.Millisecond)

	d.Input("query")
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, []string{"query"}, log.snapshot())

	d.Input("query2")
	require.Eventually(t, func() bool { return len(log.snapshot()) == 2 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"query", "query2"}, log.snapshot())
}

// Stop cancels a pending dispatch and blocks further input.
func TestDebouncer_Stop(t *testing.T) {
	var log fireLog
	d := client.NewDebouncer(30*time.Millisecond, log.add)

	d.Input("doomed")
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, log.snapshot())

	d.Input("after stop")
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, log.snapshot())
}
