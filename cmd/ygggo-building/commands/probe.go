package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/yggai/ygggo_building"
)

// NewProbeCommand creates the probe command.
func NewProbeCommand(o *Options) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Open and close a connection with the configured settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			res, err := ygggo_building.TestConnection(ctx, o.Config, o.storeOptions()...)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", res.Message, res.Latency.Round(time.Millisecond))
			return err
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "give up after this long")

	return cmd
}
