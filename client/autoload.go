package client

import "context"

// AutoLoader turns sentinel-visibility events into LoadMore calls, the
// infinite-scroll trigger. It does no debouncing of its own: rapid
// notifications are safe because the store's loadingMore/has_next_page
// guard suppresses duplicate page requests.
type AutoLoader struct {
	load   func(context.Context) error
	events chan struct{}
}

func NewAutoLoader(load func(context.Context) error) *AutoLoader {
	return &AutoLoader{
		load:   load,
		events: make(chan struct{}, 1),
	}
}

// Notify signals that the sentinel entered the viewport. It never blocks;
// a burst of events coalesces into one pending signal.
func (a *AutoLoader) Notify() {
	select {
	case a.events <- struct{}{}:
	default:
	}
}

// Run consumes visibility events until ctx is done, invoking the load
// function once per event.
func (a *AutoLoader) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-a.events:
			_ = a.load(ctx)
		}
	}
}
