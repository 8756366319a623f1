//go:build linux

package edgewatch

import (
	"errors"
	"fmt"

	"github.com/warthog618/gpiod"
)

type gpiodWatcher struct {
	chip  *gpiod.Chip
	lines *gpiod.Lines
}

// Open requests the configured pins as inputs with edge detection on both edges
func Open(opts Opts, handler Handler) (Watcher, error) {
	if len(opts.Pins) == 0 {
		return nil, errors.New("no pins to watch")
	}
	chipName := opts.Chip
	if chipName == "" {
		chipName = DefaultChip
	}

	chip, err := gpiod.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", chipName, err)
	}

	lineOpts := []gpiod.LineReqOption{
		gpiod.AsInput,
		gpiod.WithBothEdges,
		gpiod.WithEventHandler(func(evt gpiod.LineEvent) {
			e := fromLineEvent(evt)
			countEvent(e)
			handler(e)
		}),
	}
	if opts.Debounce > 0 {
		lineOpts = append(lineOpts, gpiod.WithDebounce(opts.Debounce))
	}

	lines, err := chip.RequestLines(opts.Pins, lineOpts...)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to request lines %v: %w", opts.Pins, err), chip.Close())
	}

	return &gpiodWatcher{chip: chip, lines: lines}, nil
}

func (w *gpiodWatcher) Close() error {
	return errors.Join(w.lines.Close(), w.chip.Close())
}

func fromLineEvent(evt gpiod.LineEvent) Event {
	return Event{
		Pin:       evt.Offset,
		Rising:    evt.Type == gpiod.LineEventRisingEdge,
		Timestamp: evt.Timestamp,
		Seqno:     evt.Seqno,
	}
}
