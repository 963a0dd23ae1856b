package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vk/issctl/internal/opennotify"
)

// newPassCommand prints the upcoming overhead passes for a ground location.
// Coordinates are validated before any request is made.
func newPassCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	var q opennotify.PassQuery

	cmd := &cobra.Command{
		Use:   "pass",
		Short: "Print the upcoming ISS passes for a ground location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(outW, errW)
			if err != nil {
				return err
			}
			return a.Passes(cmd.Context(), q)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&q.Lat, "lat", 0.0, "Latitude of the ground location, -80 to 80.")
	f.Float64Var(&q.Lon, "lon", 0.0, "Longitude of the ground location, -180 to 180.")
	f.Float64Var(&q.Alt, "alt", 0, "Observer altitude in metres; 0 lets the API choose.")
	f.IntVar(&q.Number, "number", 0, "Number of passes to request; 0 lets the API choose.")
	return cmd
}
