package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	bcmapiv1alpha1 "github.com/uptime-industries/bcm2835-hal/api/bcmapi/v1alpha1"
	"github.com/warthog618/gpiod/device/rpi"
)

func init() {
	cmdGpio.AddCommand(cmdGpioFsel, cmdGpioSet, cmdGpioClear, cmdGpioRead, cmdGpioWatch)
	rootCmd.AddCommand(cmdGpio)
}

// parsePin accepts BCM numbers (17), GPIO names (GPIO17) and header pins (J8p11)
func parsePin(s string) (uint32, error) {
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return uint32(n), nil
	}
	pin, err := rpi.Pin(s)
	if err != nil {
		return 0, fmt.Errorf("invalid pin %q: %w", s, err)
	}
	return uint32(pin), nil
}

func levelString(high bool) string {
	if high {
		return "high"
	}
	return "low"
}

var (
	cmdGpio = &cobra.Command{
		Use:   "gpio",
		Short: "GPIO commands",
	}

	cmdGpioFsel = &cobra.Command{
		Use:     "fsel <pin> <function>",
		Example: "bcmctl gpio fsel 17 out",
		Short:   "Select the function of a pin (in, out, alt0 ... alt5)",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := clientFromContext(ctx)

			pin, err := parsePin(args[0])
			if err != nil {
				return err
			}
			_, err = client.GpioFunctionSelect(ctx, &bcmapiv1alpha1.GpioFunctionSelectRequest{
				Pin:      pin,
				Function: args[1],
			})
			return err
		},
	}

	cmdGpioSet = &cobra.Command{
		Use:     "set <pin>",
		Example: "bcmctl gpio set GPIO17",
		Short:   "Drive an output pin high",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writePin(cmd, args[0], true)
		},
	}

	cmdGpioClear = &cobra.Command{
		Use:     "clear <pin>",
		Example: "bcmctl gpio clear 17",
		Short:   "Drive an output pin low",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writePin(cmd, args[0], false)
		},
	}

	cmdGpioRead = &cobra.Command{
		Use:     "read <pin>",
		Example: "bcmctl gpio read J8p11",
		Short:   "Sample the level of a pin",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := clientFromContext(ctx)

			pin, err := parsePin(args[0])
			if err != nil {
				return err
			}
			resp, err := client.GpioRead(ctx, &bcmapiv1alpha1.GpioReadRequest{Pin: pin})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), levelString(resp.High))
			return nil
		},
	}

	cmdGpioWatch = &cobra.Command{
		Use:     "watch [pin...]",
		Example: "bcmctl gpio watch --timeout 1h 4 17",
		Short:   "Print edges of pins watched by bcmd until the timeout expires",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := clientFromContext(ctx)

			req := &bcmapiv1alpha1.WatchPinsRequest{}
			for _, arg := range args {
				pin, err := parsePin(arg)
				if err != nil {
					return err
				}
				req.Pins = append(req.Pins, pin)
			}

			stream, err := client.WatchPins(ctx, req)
			if err != nil {
				return err
			}
			for {
				evt, err := stream.Recv()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tpin=%d\tlevel=%s\tseqno=%d\n",
					evt.GetTimestamp().AsDuration(), evt.Pin, levelString(evt.Rising), evt.Seqno)
			}
		},
	}
)

func writePin(cmd *cobra.Command, arg string, high bool) error {
	ctx := cmd.Context()
	client := clientFromContext(ctx)

	pin, err := parsePin(arg)
	if err != nil {
		return err
	}
	_, err = client.GpioWrite(ctx, &bcmapiv1alpha1.GpioWriteRequest{Pin: pin, High: high})
	return err
}
