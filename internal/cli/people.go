package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// newPeopleCommand prints the roster of people currently in space.
func newPeopleCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "people",
		Short: "Print the people currently in space and their craft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(outW, errW)
			if err != nil {
				return err
			}
			return a.People(cmd.Context())
		},
	}
}
