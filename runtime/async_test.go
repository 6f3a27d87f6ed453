package runtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuilab/loom/backend"
	"github.com/tuilab/loom/command"
	"github.com/tuilab/loom/subscription"
)

var errTask = errors.New("task failed")

// asyncApp exercises the async command kinds.
type asyncApp struct {
	Base[counterState, string]
}

func (asyncApp) Init() (counterState, command.Command[string]) {
	return counterState{}, command.None[string]()
}

func (asyncApp) Update(s *counterState, m string) command.Command[string] {
	switch m {
	case "inc":
		s.count++
		return command.None[string]()
	case "start":
		return command.PerformAsync(func(context.Context) (string, bool) {
			return "inc", true
		})
	case "fail":
		return command.TryPerformAsync(
			func(context.Context) (int, error) { return 0, errTask },
			func(int) (string, bool) { return "inc", true },
		)
	case "quit":
		return command.Quit[string]()
	}
	return command.None[string]()
}

func (asyncApp) View(s *counterState, f *backend.Frame) {}

func (asyncApp) OnExit(s *counterState) {
	s.exited = true
}

func TestAsyncTickSubscriptionDrivesCounter(t *testing.T) {
	rt, err := NewAsyncRuntime[counterState, string](asyncApp{}, 20, 4)
	require.NoError(t, err)

	rt.Subscribe(subscription.Tick(10*time.Millisecond, func(time.Time) string { return "inc" }))
	require.Eventually(t, func() bool {
		rt.Tick()
		return rt.State().count >= 5
	}, 2*time.Second, 2*time.Millisecond)

	// a direct dispatch lands on top of whatever the subscription
	// delivered
	before := rt.State().count
	rt.Dispatch("inc")
	rt.Tick()
	assert.GreaterOrEqual(t, rt.State().count, before+1)
}

func TestAsyncResultVisibleOnLaterTick(t *testing.T) {
	rt, err := NewAsyncRuntime[counterState, string](asyncApp{}, 20, 4)
	require.NoError(t, err)

	rt.Dispatch("start")
	assert.Equal(t, 0, rt.State().count)

	require.Eventually(t, func() bool {
		rt.Tick()
		return rt.State().count == 1
	}, time.Second, 2*time.Millisecond)
}

func TestAsyncErrorChannelDelivery(t *testing.T) {
	rt, err := NewAsyncRuntime[counterState, string](asyncApp{}, 20, 4)
	require.NoError(t, err)

	rt.Dispatch("fail")
	require.Eventually(t, rt.HasErrors, time.Second, 2*time.Millisecond)

	errs := rt.TakeErrors()
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], errTask)
	assert.False(t, rt.HasErrors())

	// The failure never produced a message.
	rt.Tick()
	assert.Equal(t, 0, rt.State().count)
}

func TestAsyncSubscriptionPumpsMessages(t *testing.T) {
	rt, err := NewAsyncRuntime[counterState, string](asyncApp{}, 20, 4)
	require.NoError(t, err)

	rt.Subscribe(subscription.Timer(5*time.Millisecond, "inc"))
	require.Eventually(t, func() bool {
		rt.Tick()
		return rt.State().count == 1
	}, time.Second, 2*time.Millisecond)
}

func TestAsyncRunStopsOnQuitMessage(t *testing.T) {
	rt, err := NewAsyncRuntimeWith[counterState, string](asyncApp{}, 20, 4,
		Config{TickRate: 5 * time.Millisecond, FrameRate: 2 * time.Millisecond}, nil)
	require.NoError(t, err)

	rt.Subscribe(subscription.Timer(10*time.Millisecond, "quit"))

	done := make(chan error, 1)
	go func() { done <- rt.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop")
	}
	assert.True(t, rt.ShouldQuit())
	assert.True(t, rt.State().exited)
}

func TestAsyncRunStopsOnContextCancel(t *testing.T) {
	rt, err := NewAsyncRuntime[counterState, string](asyncApp{}, 20, 4)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rt.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop")
	}
	assert.True(t, rt.ShouldQuit())
}

func TestAsyncQuitCancelsTasks(t *testing.T) {
	rt, err := NewAsyncRuntimeWith[counterState, string](asyncApp{}, 20, 4,
		Config{TickRate: 5 * time.Millisecond, FrameRate: 2 * time.Millisecond}, nil)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- rt.Run(context.Background()) }()

	rt.Quit()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop")
	}
	assert.Error(t, rt.Context().Err())
}

func TestAsyncTickDrainsOnlyReadyMessages(t *testing.T) {
	rt, err := NewAsyncRuntime[counterState, string](asyncApp{}, 20, 4)
	require.NoError(t, err)

	gate := make(chan struct{})
	rt.handler.Execute(command.PerformAsync(func(ctx context.Context) (string, bool) {
		<-gate
		return "inc", true
	}))
	rt.spawnPending()

	// Nothing ready yet; the tick must not block.
	rt.Tick()
	assert.Equal(t, 0, rt.State().count)

	close(gate)
	require.Eventually(t, func() bool {
		rt.Tick()
		return rt.State().count == 1
	}, time.Second, 2*time.Millisecond)
}
