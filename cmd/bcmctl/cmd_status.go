package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"
)

func init() {
	rootCmd.AddCommand(cmdStatus)
}

var cmdStatus = &cobra.Command{
	Use:   "status",
	Short: "Show the peripheral session of bcmd",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		st, err := clientFromContext(ctx).GetStatus(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "board:       %s\n", st.Board)
		fmt.Fprintf(out, "peripherals: 0x%08x (0x%x bytes)\n", st.Base, st.Size)
		fmt.Fprintf(out, "mapped:      %t\n", st.Mapped)
		fmt.Fprintf(out, "full access: %t\n", st.FullAccess)
		fmt.Fprintf(out, "spi0:        active=%t bit-order=%s\n", st.SpiActive, st.BitOrder)

		pins := append([]uint32(nil), st.WatchedPins...)
		sort.Slice(pins, func(i, j int) bool { return pins[i] < pins[j] })
		for _, pin := range pins {
			level := "unknown"
			if high, ok := st.PinLevels[pin]; ok {
				level = levelString(high)
			}
			fmt.Fprintf(out, "watch %-5d  %s\n", pin, level)
		}
		return nil
	},
}
