//go:build !linux

package bcm2835

func (s *Session) mapPeripherals(_ Opts) error {
	return ErrUnsupportedPlatform
}
