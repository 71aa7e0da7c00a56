package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yggai/ygggo_building"
)

// NewIDCommand creates the id command.
func NewIDCommand() *cobra.Command {
	var (
		count    int
		length   int
		alphabet string
	)

	cmd := &cobra.Command{
		Use:   "id",
		Short: "Print random building ids",
		// no database settings needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			for i := 0; i < count; i++ {
				id, err := ygggo_building.GenerateID(alphabet, length)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of ids")
	cmd.Flags().IntVar(&length, "length", ygggo_building.DefaultIDLength, "symbols per id")
	cmd.Flags().StringVar(&alphabet, "alphabet", ygggo_building.DefaultAlphabet, "symbols to draw from")

	return cmd
}
