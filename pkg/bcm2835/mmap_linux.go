//go:build linux

package bcm2835

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// /dev/gpiomem only exposes the GPIO block
const gpioMemSize = blockSize

func (s *Session) mapPeripherals(opts Opts) error {
	full := opts.Access == AccessFull || (opts.Access == AccessAuto && unix.Geteuid() == 0)

	path, base, size := opts.GPIOMemPath, int64(0), gpioMemSize
	if full {
		path, base, size = opts.MemPath, int64(s.rng.Base), int(s.rng.Size)
	}

	mem8, err := mmap(path, base, size)
	if err != nil {
		return err
	}
	mem32 := unsafe.Slice((*uint32)(unsafe.Pointer(&mem8[0])), len(mem8)/registerWidth)

	s.mem = mem8
	s.unmap = unix.Munmap
	s.full = full
	if full {
		s.blocks = fullBlocks(mem32)
	} else {
		s.blocks = Blocks{GPIO: RegisterBlock(mem32)}
	}
	return nil
}

// mmap maps size bytes at offset base of the device file at path. The file descriptor
// is closed on return; the mapping stays valid without it.
func mmap(path string, base int64, size int) ([]byte, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	mem8, err := unix.Mmap(
		int(file.Fd()),
		base,
		size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_SHARED,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to mmap %s at 0x%x: %w", path, base, err)
	}
	if len(mem8) < registerWidth {
		_ = unix.Munmap(mem8)
		return nil, fmt.Errorf("failed to mmap %s at 0x%x: mapping too small", path, base)
	}
	return mem8, nil
}
