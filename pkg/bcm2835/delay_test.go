package bcm2835_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uptime-industries/bcm2835-hal/pkg/bcm2835"
	"github.com/uptime-industries/bcm2835-hal/pkg/util"
)

func TestSessionDelay(t *testing.T) {
	t.Parallel()

	clock := &util.MockClock{}
	clock.On("Sleep", 50*time.Millisecond).Once()
	clock.On("Sleep", time.Duration(0)).Once()

	sess := bcm2835.FromBlocks(bcm2835.NewBlocks(), bcm2835.Opts{Clock: clock})
	sess.Delay(50)
	sess.Delay(0)

	clock.AssertExpectations(t)
}

func TestDelay(t *testing.T) {
	t.Parallel()

	start := time.Now()
	bcm2835.Delay(5)
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}
