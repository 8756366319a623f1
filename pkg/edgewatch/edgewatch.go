// Package edgewatch reports level changes of GPIO pins through the GPIO character device.
//
// It complements the memory mapped GPIO access of package bcm2835, which can only sample
// levels, by letting the kernel timestamp both edges of the watched pins.
package edgewatch

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const DefaultChip = "gpiochip0"

var ErrUnsupportedPlatform = errors.New("gpio edge events require linux")

var edgeEventCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bcm2835",
	Name:      "gpio_edge_events_total",
	Help:      "Edge events observed on watched pins",
}, []string{"edge"})

// Event is a single edge on a watched pin
type Event struct {
	Pin    int
	Rising bool
	// Timestamp is the kernel event timestamp, only meaningful relative to other events
	Timestamp time.Duration
	// Seqno counts the events of the watcher, gaps indicate events lost in the kernel buffer
	Seqno uint32
}

func (e Event) Edge() string {
	if e.Rising {
		return "rising"
	}
	return "falling"
}

// Opts configures a Watcher
type Opts struct {
	// Chip is the GPIO character device, e.g. gpiochip0
	Chip string `mapstructure:"chip"`
	// Pins are the BCM GPIO numbers to watch
	Pins []int `mapstructure:"pins"`
	// Debounce filters edges shorter than the given period; zero disables debouncing
	Debounce time.Duration `mapstructure:"debounce"`
}

// Handler is called from the watcher goroutine for every edge and must not block
type Handler func(Event)

// Watcher delivers edge events of a set of pins until closed
type Watcher interface {
	Close() error
}

func countEvent(evt Event) {
	edgeEventCount.WithLabelValues(evt.Edge()).Inc()
}
