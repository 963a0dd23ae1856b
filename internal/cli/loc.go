package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// newLocCommand prints the current location of the ISS.
func newLocCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "loc",
		Short: "Print the current location of the ISS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(outW, errW)
			if err != nil {
				return err
			}
			return a.Location(cmd.Context())
		},
	}
}
