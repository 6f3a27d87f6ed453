package subscription

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func collect[M any](t *testing.T, ch <-chan M, n int, timeout time.Duration) []M {
	t.Helper()
	out := make([]M, 0, n)
	deadline := time.After(timeout)
	for len(out) < n {
		select {
		case m, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, m)
		case <-deadline:
			t.Fatalf("timed out after %d of %d messages", len(out), n)
		}
	}
	return out
}

func assertClosed[M any](t *testing.T, ch <-chan M, timeout time.Duration) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed in time")
		}
	}
}

func TestTickEmitsRepeatedly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := Tick(5*time.Millisecond, func(time.Time) string { return "tick" })
	ch := sub.Stream(ctx)

	msgs := collect(t, ch, 3, time.Second)
	assert.Equal(t, []string{"tick", "tick", "tick"}, msgs)

	cancel()
	assertClosed(t, ch, time.Second)
}

func TestIntervalImmediateEmitsFirstAtOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := IntervalImmediate(50*time.Millisecond, func(time.Time) int { return 1 })
	ch := sub.Stream(ctx)

	start := time.Now()
	select {
	case <-ch:
		assert.Less(t, time.Since(start), 40*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("no immediate message")
	}
}

func TestTimerFiresOnceThenEnds(t *testing.T) {
	ctx := context.Background()
	sub := Timer(5*time.Millisecond, "done")
	ch := sub.Stream(ctx)

	msgs := collect(t, ch, 1, time.Second)
	assert.Equal(t, []string{"done"}, msgs)
	assertClosed(t, ch, time.Second)
}

func TestChannelEndsWhenSourceCloses(t *testing.T) {
	src := make(chan int, 3)
	src <- 1
	src <- 2
	close(src)

	ch := Channel(src).Stream(context.Background())
	msgs := collect(t, ch, 2, time.Second)
	assert.Equal(t, []int{1, 2}, msgs)
	assertClosed(t, ch, time.Second)
}

func TestStreamEmitsSequence(t *testing.T) {
	ch := Stream(slices.Values([]int{1, 2, 3})).Stream(context.Background())
	msgs := collect(t, ch, 3, time.Second)
	assert.Equal(t, []int{1, 2, 3}, msgs)
	assertClosed(t, ch, time.Second)
}

func TestStreamStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	infinite := func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}

	ch := Stream[int](infinite).Stream(ctx)
	collect(t, ch, 5, time.Second)
	cancel()
	assertClosed(t, ch, time.Second)
}

func TestMapTransforms(t *testing.T) {
	ch := Map(Stream(slices.Values([]int{1, 2})), func(v int) string {
		if v == 1 {
			return "one"
		}
		return "two"
	}).Stream(context.Background())

	assert.Equal(t, []string{"one", "two"}, collect(t, ch, 2, time.Second))
}

func TestFilterDrops(t *testing.T) {
	ch := Filter(Stream(slices.Values([]int{1, 2, 3, 4, 5})), func(v int) bool {
		return v%2 == 1
	}).Stream(context.Background())

	assert.Equal(t, []int{1, 3, 5}, collect(t, ch, 3, time.Second))
	assertClosed(t, ch, time.Second)
}

func TestTakeLimits(t *testing.T) {
	ch := Take(Tick(time.Millisecond, func(time.Time) int { return 7 }), 3).
		Stream(context.Background())

	assert.Equal(t, []int{7, 7, 7}, collect(t, ch, 3, time.Second))
	assertClosed(t, ch, time.Second)
}

func TestBatchMergesSources(t *testing.T) {
	a := make(chan string, 2)
	b := make(chan string, 2)
	a <- "a1"
	a <- "a2"
	b <- "b1"
	close(a)
	close(b)

	ch := Batch(Channel(a), Channel(b)).Stream(context.Background())
	msgs := collect(t, ch, 3, time.Second)
	assertClosed(t, ch, time.Second)

	// Per-source order is preserved even though interleaving is not.
	assert.Less(t, slices.Index(msgs, "a1"), slices.Index(msgs, "a2"))
	assert.ElementsMatch(t, []string{"a1", "a2", "b1"}, msgs)
}

func TestBatchEmptyEndsImmediately(t *testing.T) {
	ch := Batch[int]().Stream(context.Background())
	assertClosed(t, ch, time.Second)
}

func TestDebounceKeepsNewest(t *testing.T) {
	src := make(chan int)
	ch := Debounce(Channel(src), 50*time.Millisecond).Stream(context.Background())

	src <- 1
	src <- 2
	src <- 3

	msgs := collect(t, ch, 1, time.Second)
	assert.Equal(t, []int{3}, msgs)
}

func TestDebounceFlushesOnEnd(t *testing.T) {
	src := make(chan int, 1)
	ch := Debounce(Channel(src), time.Hour).Stream(context.Background())

	src <- 42
	time.Sleep(10 * time.Millisecond)
	close(src)

	msgs := collect(t, ch, 1, time.Second)
	assert.Equal(t, []int{42}, msgs)
	assertClosed(t, ch, time.Second)
}

func TestThrottleFirstImmediatelyThenRateLimited(t *testing.T) {
	src := make(chan int)
	ch := Throttle(Channel(src), 50*time.Millisecond).Stream(context.Background())

	go func() {
		src <- 1
		src <- 2
		src <- 3
		time.Sleep(80 * time.Millisecond)
		src <- 4
		close(src)
	}()

	msgs := collect(t, ch, 2, time.Second)
	assert.Equal(t, []int{1, 4}, msgs)
	assertClosed(t, ch, time.Second)
}

func TestSubscriptionChannelsCloseOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	tick := Tick(time.Hour, func(time.Time) int { return 0 }).Stream(ctx)
	timer := Timer(time.Hour, 0).Stream(ctx)
	src := make(chan int)
	channel := Channel(src).Stream(ctx)
	batch := Batch(Channel(src), Timer(time.Hour, 0)).Stream(ctx)

	cancel()
	assertClosed(t, tick, time.Second)
	assertClosed(t, timer, time.Second)
	assertClosed(t, channel, time.Second)
	assertClosed(t, batch, time.Second)
}
