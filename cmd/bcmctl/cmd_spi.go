package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	bcmapiv1alpha1 "github.com/uptime-industries/bcm2835-hal/api/bcmapi/v1alpha1"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/emptypb"
)

var (
	spiBitOrder     string
	spiDataMode     uint32
	spiClockDivider uint32
	spiChipSelect   uint32
	spiTimeout      time.Duration
)

func init() {
	cmdSpiConfig.Flags().StringVar(&spiBitOrder, "bit-order", "msb-first", "bit order, msb-first or lsb-first")
	cmdSpiConfig.Flags().Uint32Var(&spiDataMode, "mode", 0, "data mode 0-3 (CPOL<<1 | CPHA)")
	cmdSpiConfig.Flags().Uint32Var(&spiClockDivider, "divider", 0, "core clock divider, even values only, 0 divides by 65536")
	cmdSpiConfig.Flags().Uint32Var(&spiChipSelect, "chip-select", 0, "chip select 0-3 (2 asserts both CE lines, 3 none)")
	cmdSpiConfig.Flags().DurationVar(&spiTimeout, "transfer-timeout", 0, "per byte transfer timeout, 0 waits forever")

	cmdSpi.AddCommand(cmdSpiBegin, cmdSpiEnd, cmdSpiConfig, cmdSpiXfer)
	rootCmd.AddCommand(cmdSpi)
}

// parseHex accepts "0a0b", "0x0a 0x0b", "0a:0b" and "0x0a:0x0b"
func parseHex(args []string) ([]byte, error) {
	var sb strings.Builder
	for _, arg := range args {
		for _, field := range strings.Split(arg, ":") {
			field = strings.TrimPrefix(field, "0x")
			field = strings.TrimPrefix(field, "0X")
			sb.WriteString(field)
		}
	}
	data, err := hex.DecodeString(sb.String())
	if err != nil {
		return nil, fmt.Errorf("invalid hex data: %w", err)
	}
	return data, nil
}

// configRequest only carries the flags set on the command line
func configRequest(cmd *cobra.Command) *bcmapiv1alpha1.SpiConfigureRequest {
	req := &bcmapiv1alpha1.SpiConfigureRequest{}
	flags := cmd.Flags()

	if flags.Changed("bit-order") {
		req.BitOrder = &spiBitOrder
	}
	if flags.Changed("mode") {
		req.DataMode = &spiDataMode
	}
	if flags.Changed("divider") {
		req.ClockDivider = &spiClockDivider
	}
	if flags.Changed("chip-select") {
		req.ChipSelect = &spiChipSelect
	}
	if flags.Changed("transfer-timeout") {
		req.Timeout = durationpb.New(spiTimeout)
	}
	return req
}

var (
	cmdSpi = &cobra.Command{
		Use:   "spi",
		Short: "SPI0 commands",
	}

	cmdSpiBegin = &cobra.Command{
		Use:   "begin",
		Short: "Hand pins 7 to 11 to SPI0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			_, err := clientFromContext(ctx).SpiBegin(ctx, &emptypb.Empty{})
			return err
		},
	}

	cmdSpiEnd = &cobra.Command{
		Use:   "end",
		Short: "Return the SPI0 pins to inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			_, err := clientFromContext(ctx).SpiEnd(ctx, &emptypb.Empty{})
			return err
		},
	}

	cmdSpiConfig = &cobra.Command{
		Use:     "config",
		Example: "bcmctl spi config --mode 3 --divider 256 --bit-order lsb-first",
		Short:   "Update the SPI0 settings given as flags",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			_, err := clientFromContext(ctx).SpiConfigure(ctx, configRequest(cmd))
			return err
		},
	}

	cmdSpiXfer = &cobra.Command{
		Use:     "xfer <hex>...",
		Example: "bcmctl spi xfer 0c 01",
		Short:   "Transfer bytes and print the bytes clocked in",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := parseHex(args)
			if err != nil {
				return err
			}
			resp, err := clientFromContext(ctx).SpiTransfer(ctx, &bcmapiv1alpha1.SpiTransferRequest{Data: data})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(resp.Data))
			return nil
		},
	}
)
