package bcm2835

import (
	"time"

	"github.com/uptime-industries/bcm2835-hal/pkg/util"
)

// Delay blocks for at least ms milliseconds
func Delay(ms uint) {
	delay(util.RealClock{}, ms)
}

// Delay blocks for at least ms milliseconds on the session clock
func (s *Session) Delay(ms uint) {
	clock := s.clock
	if clock == nil {
		clock = util.RealClock{}
	}
	delay(clock, ms)
}

func delay(clock util.Clock, ms uint) {
	clock.Sleep(time.Duration(ms) * time.Millisecond)
}
