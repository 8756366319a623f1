package agent_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uptime-industries/bcm2835-hal/internal/agent"
	"github.com/uptime-industries/bcm2835-hal/pkg/edgewatch"
)

func TestNewPinState(t *testing.T) {
	t.Parallel()

	state := agent.NewPinState([]int{4, 17})
	assert.NotNil(t, state)
	assert.Empty(t, state.Levels())

	_, known := state.Level(4)
	assert.False(t, known)
}

func TestPinState_RegisterEvent(t *testing.T) {
	t.Parallel()

	state := agent.NewPinState([]int{4, 17})

	assert.True(t, state.RegisterEvent(edgewatch.Event{Pin: 17, Rising: true}))
	high, known := state.Level(17)
	assert.True(t, known)
	assert.True(t, high)

	assert.True(t, state.RegisterEvent(edgewatch.Event{Pin: 17, Rising: false}))
	high, _ = state.Level(17)
	assert.False(t, high)

	assert.False(t, state.RegisterEvent(edgewatch.Event{Pin: 5, Rising: true}))
	_, known = state.Level(5)
	assert.False(t, known)

	assert.Equal(t, map[int]bool{17: false}, state.Levels())
}

func TestPinState_WaitForEdge_NoTimeout(t *testing.T) {
	t.Parallel()

	state := agent.NewPinState([]int{4})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t.Log("Waiting for edge")
		err := state.WaitForEdge(context.Background(), 4)
		assert.NoError(t, err)
	}()

	// Give goroutine time to start
	time.Sleep(50 * time.Millisecond)

	state.RegisterEvent(edgewatch.Event{Pin: 4, Rising: true})
	t.Log("Edge registered")

	wg.Wait()
}

func TestPinState_WaitForEdge_Timeout(t *testing.T) {
	t.Parallel()

	state := agent.NewPinState([]int{4})

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := state.WaitForEdge(ctx, 4)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	}()

	// Give goroutine time to start.
	time.Sleep(50 * time.Millisecond)

	// edges of other pins don't wake the waiter
	state.RegisterEvent(edgewatch.Event{Pin: 5, Rising: true})

	wg.Wait()
}

func TestPinState_WaitForEdge_NotWatched(t *testing.T) {
	t.Parallel()

	state := agent.NewPinState(nil)
	assert.Error(t, state.WaitForEdge(context.Background(), 4))
}
