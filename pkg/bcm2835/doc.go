// Package bcm2835 maps the peripheral block of the BCM2835 family (Raspberry Pi 1 to 4)
// into the process and provides GPIO and polled SPI0 primitives on top of it.
//
// A Session is opened once per process:
//
//	sess, err := bcm2835.Open(ctx, bcm2835.Opts{})
//	if err != nil {
//		return err
//	}
//	defer sess.Close()
//
//	spi := sess.SPI0()
//	if err := spi.Begin(); err != nil {
//		return err // ErrNoFullAccess when not running as root
//	}
//	defer spi.End()
//	_ = spi.SetClockDivider(bcm2835.ClockDivider256)
//	_, err = spi.Transfer(0x0c)
//
// Without root privileges only the GPIO block is mapped (through /dev/gpiomem) and every
// SPI0 operation fails with ErrNoFullAccess. Sessions are not safe for concurrent use;
// callers sharing one across goroutines have to serialize the whole API surface.
package bcm2835
