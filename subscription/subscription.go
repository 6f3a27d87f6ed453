// Package subscription implements long-lived message sources for the
// async runtime: timers, channels, sequences, and the combinators that
// reshape them.
package subscription

import (
	"context"
	"iter"
	"time"
)

// Subscription produces a stream of messages. The returned channel is
// closed promptly once ctx is cancelled or the source ends.
type Subscription[M any] interface {
	Stream(ctx context.Context) <-chan M
}

// Func adapts a function to the Subscription interface.
type Func[M any] func(ctx context.Context) <-chan M

func (f Func[M]) Stream(ctx context.Context) <-chan M {
	return f(ctx)
}

// Tick emits f(now) every interval, starting one interval from
// subscription.
func Tick[M any](interval time.Duration, f func(time.Time) M) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		go func() {
			defer close(out)
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case now := <-ticker.C:
					select {
					case out <- f(now):
					case <-ctx.Done():
						return
					}
				}
			}
		}()
		return out
	})
}

// IntervalImmediate emits f(now) immediately, then every interval.
func IntervalImmediate[M any](interval time.Duration, f func(time.Time) M) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		go func() {
			defer close(out)
			select {
			case out <- f(time.Now()):
			case <-ctx.Done():
				return
			}
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case now := <-ticker.C:
					select {
					case out <- f(now):
					case <-ctx.Done():
						return
					}
				}
			}
		}()
		return out
	})
}

// Timer emits msg once after delay, then ends.
func Timer[M any](delay time.Duration, msg M) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		go func() {
			defer close(out)
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
			case <-timer.C:
				select {
				case out <- msg:
				case <-ctx.Done():
				}
			}
		}()
		return out
	})
}

// Channel forwards messages from an existing channel until it closes.
func Channel[M any](ch <-chan M) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		go func() {
			defer close(out)
			for {
				select {
				case <-ctx.Done():
					return
				case m, ok := <-ch:
					if !ok {
						return
					}
					select {
					case out <- m:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
		return out
	})
}

// Stream emits every element of a sequence in order, then ends.
// Cancellation is observed between elements.
func Stream[M any](seq iter.Seq[M]) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		go func() {
			defer close(out)
			for m := range seq {
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
