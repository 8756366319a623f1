package agent

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/uptime-industries/bcm2835-hal/pkg/edgewatch"
)

var (
	pinLevelMetric = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "bcmd",
		Name:      "pin_level",
		Help:      "Last level reported by the edge watcher (1 high, 0 low)",
	}, []string{"pin"})

	pinEdgeCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bcmd",
		Name:      "pin_edges_total",
		Help:      "Edges reported by the edge watcher",
	}, []string{"pin", "edge"})
)

// PinState tracks the levels of the watched pins as reported by edge events
type PinState struct {
	mutex sync.Mutex

	levels map[int]bool
	// edgeChans is closed and replaced on every edge of the pin
	edgeChans map[int]chan struct{}
}

func NewPinState(pins []int) *PinState {
	s := &PinState{
		levels:    make(map[int]bool, len(pins)),
		edgeChans: make(map[int]chan struct{}, len(pins)),
	}
	for _, pin := range pins {
		s.edgeChans[pin] = make(chan struct{})
	}
	return s
}

// RegisterEvent records an edge and wakes up waiters. Edges of pins that are not watched
// are ignored and reported as false.
func (s *PinState) RegisterEvent(evt edgewatch.Event) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	ch, ok := s.edgeChans[evt.Pin]
	if !ok {
		return false
	}
	s.levels[evt.Pin] = evt.Rising
	close(ch)
	s.edgeChans[evt.Pin] = make(chan struct{})

	label := strconv.Itoa(evt.Pin)
	pinEdgeCounter.WithLabelValues(label, evt.Edge()).Inc()
	if evt.Rising {
		pinLevelMetric.WithLabelValues(label).Set(1)
	} else {
		pinLevelMetric.WithLabelValues(label).Set(0)
	}
	return true
}

// Level returns the last level of pin, known is false until the first edge
func (s *PinState) Level(pin int) (high bool, known bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	high, known = s.levels[pin]
	return high, known
}

// Levels returns a copy of every known level
func (s *PinState) Levels() map[int]bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	levels := make(map[int]bool, len(s.levels))
	for pin, high := range s.levels {
		levels[pin] = high
	}
	return levels
}

// WaitForEdge blocks until the next edge on pin or until ctx is done
func (s *PinState) WaitForEdge(ctx context.Context, pin int) error {
	s.mutex.Lock()
	ch, ok := s.edgeChans[pin]
	s.mutex.Unlock()
	if !ok {
		return fmt.Errorf("pin %d is not watched", pin)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ch:
		return nil
	}
}
