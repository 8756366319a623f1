package bcm2835

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsOpen = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "bcm2835",
		Name:      "sessions_open",
		Help:      "Mapped peripheral sessions by access tier",
	}, []string{"access"})
	gpioOperationCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bcm2835",
		Name:      "gpio_operations_total",
		Help:      "GPIO register operations",
	}, []string{"op"})
	spiTransferCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bcm2835",
		Name:      "spi_transfers_total",
		Help:      "Completed SPI0 single byte transfers",
	})
	spiTransferTimeoutCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bcm2835",
		Name:      "spi_transfer_timeouts_total",
		Help:      "SPI0 transfers aborted because the status register never became ready",
	})
)
