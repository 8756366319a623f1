//go:build !linux

package edgewatch

func Open(Opts, Handler) (Watcher, error) {
	return nil, ErrUnsupportedPlatform
}
