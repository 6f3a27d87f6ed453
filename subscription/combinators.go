package subscription

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Map rewrites every message of a subscription through f.
func Map[M, N any](sub Subscription[M], f func(M) N) Subscription[N] {
	return Func[N](func(ctx context.Context) <-chan N {
		out := make(chan N)
		in := sub.Stream(ctx)
		go func() {
			defer close(out)
			for m := range in {
				select {
				case out <- f(m):
				case <-ctx.Done():
					return
				}
			}
		}()
		return out
	})
}

// Filter drops messages for which pred returns false.
func Filter[M any](sub Subscription[M], pred func(M) bool) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		in := sub.Stream(ctx)
		go func() {
			defer close(out)
			for m := range in {
				if !pred(m) {
					continue
				}
				select {
				case out <- m:
				case <-ctx.Done():
					return
				}
			}
		}()
		return out
	})
}

// Take ends the subscription after n messages.
func Take[M any](sub Subscription[M], n int) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		inner, cancel := context.WithCancel(ctx)
		in := sub.Stream(inner)
		go func() {
			defer close(out)
			defer cancel()
			remaining := n
			for remaining > 0 {
				select {
				case <-ctx.Done():
					return
				case m, ok := <-in:
					if !ok {
						return
					}
					select {
					case out <- m:
					case <-ctx.Done():
						return
					}
					remaining--
				}
			}
		}()
		return out
	})
}

// Batch merges several subscriptions into one stream. Order within one
// source is preserved; interleaving across sources is unspecified. An
// empty batch ends immediately.
func Batch[M any](subs ...Subscription[M]) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		g, gctx := errgroup.WithContext(ctx)
		for _, sub := range subs {
			in := sub.Stream(gctx)
			g.Go(func() error {
				for {
					select {
					case <-gctx.Done():
						return nil
					case m, ok := <-in:
						if !ok {
							return nil
						}
						select {
						case out <- m:
						case <-gctx.Done():
							return nil
						}
					}
				}
			})
		}
		go func() {
			defer close(out)
			_ = g.Wait()
		}()
		return out
	})
}

// Debounce delays delivery until window has passed with no new message;
// only the newest message survives a burst. A pending message is
// flushed when the inner subscription ends.
func Debounce[M any](sub Subscription[M], window time.Duration) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		in := sub.Stream(ctx)
		go func() {
			defer close(out)
			var pending M
			hasPending := false

			timer := time.NewTimer(window)
			if !timer.Stop() {
				<-timer.C
			}
			defer timer.Stop()

			flush := func() bool {
				if !hasPending {
					return true
				}
				select {
				case out <- pending:
					hasPending = false
					return true
				case <-ctx.Done():
					return false
				}
			}

			for {
				select {
				case <-ctx.Done():
					return
				case m, ok := <-in:
					if !ok {
						flush()
						return
					}
					pending, hasPending = m, true
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(window)
				case <-timer.C:
					if !flush() {
						return
					}
				}
			}
		}()
		return out
	})
}

// Throttle lets the first message through immediately, then at most one
// per window. Messages inside the window are dropped, not queued.
func Throttle[M any](sub Subscription[M], window time.Duration) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		in := sub.Stream(ctx)
		go func() {
			defer close(out)
			var lastEmit time.Time
			for m := range in {
				now := time.Now()
				if !lastEmit.IsZero() && now.Sub(lastEmit) < window {
					continue
				}
				select {
				case out <- m:
					lastEmit = now
				case <-ctx.Done():
					return
				}
			}
		}()
		return out
	})
}
