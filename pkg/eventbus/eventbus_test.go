package eventbus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptime-industries/bcm2835-hal/pkg/eventbus"
)

type edge struct {
	pin    uint8
	rising bool
}

func TestEventBusManySubscribers(t *testing.T) {
	eb := eventbus.New[edge]()

	sub0 := eb.Subscribe("gpio", 2, eventbus.MatchAll[edge])
	assert.Equal(t, 2, cap(sub0.C()))
	assert.Equal(t, 0, len(sub0.C()))
	defer sub0.Unsubscribe()

	// only rising edges of pin 17
	sub1 := eb.Subscribe("gpio", 2, func(e edge) bool {
		return e.pin == 17 && e.rising
	})
	defer sub1.Unsubscribe()

	sub2 := eb.Subscribe("other", 1, nil)
	defer sub2.Unsubscribe()

	sub3 := eb.Subscribe("gpio", 0, eventbus.MatchAll[edge])
	defer sub3.Unsubscribe()

	eb.Publish("gpio", edge{pin: 17, rising: true})
	eb.Publish("gpio", edge{pin: 4, rising: true})
	eb.Publish("other", edge{pin: 1})

	assert.Equal(t, 2, len(sub0.C()))
	assert.Equal(t, edge{pin: 17, rising: true}, <-sub0.C())
	assert.Equal(t, edge{pin: 4, rising: true}, <-sub0.C())

	assert.Equal(t, 1, len(sub1.C()))
	assert.Equal(t, edge{pin: 17, rising: true}, <-sub1.C())

	assert.Equal(t, 1, len(sub2.C()))
	assert.Equal(t, edge{pin: 1}, <-sub2.C())

	// no consumer was waiting on the unbuffered subscription
	assert.Equal(t, 0, len(sub3.C()))
	assert.Equal(t, 3, eb.Subscribers("gpio"))
}

func TestUnsubscribe(t *testing.T) {
	eb := eventbus.New[string]()

	sub := eb.Subscribe("topic", 2, eventbus.MatchAll[string])
	other := eb.Subscribe("topic", 2, eventbus.MatchAll[string])
	defer other.Unsubscribe()

	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.Equal(t, 1, eb.Subscribers("topic"))

	eb.Publish("topic", "only for other")
	// publishing twice also exercises the cleanup of the closed subscriber
	eb.Publish("topic", "again")

	_, ok := <-sub.C()
	assert.False(t, ok, "Unsubscribed channel should be closed")
	assert.Equal(t, "only for other", <-other.C())
	assert.Equal(t, "again", <-other.C())
}

func TestPublishWithoutSubscribers(t *testing.T) {
	eb := eventbus.New[int]()
	eb.Publish("nobody", 1)
	assert.Equal(t, 0, eb.Subscribers("nobody"))
}
