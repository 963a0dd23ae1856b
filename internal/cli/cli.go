package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vk/issctl/internal/app"
)

// options collects the persistent flag values shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	logFormat  string
	timeout    time.Duration
	noColor    bool
}

// newApp builds the application from the collected flag values.
func (o *options) newApp(outW, errW io.Writer) (*app.App, error) {
	return app.New(outW, errW, &app.Config{
		ConfigPath: o.configPath,
		LogLevel:   o.logLevel,
		LogFormat:  o.logFormat,
		Timeout:    o.timeout,
		NoColor:    o.noColor,
	})
}

// NewRootCommand assembles the issctl command tree over the given output
// streams. Results go to outW; logs and error diagnostics go to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "issctl",
		Short: "Query the Open Notify API for the ISS position, passes, and crew",
		Long: `issctl - a terminal client for the Open Notify API (http://open-notify.org).

One subcommand, one request:

  issctl loc                           current ISS position
  issctl pass --lat 41.87 --lon -87.6  upcoming passes for a ground location
  issctl people                        people currently in space`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to an optional HCL configuration file.")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level: 'debug', 'info', 'warn', or 'error'.")
	pf.StringVar(&opts.logFormat, "log-format", "text", "Log output format: 'text' or 'json'.")
	pf.DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout; 0 uses the configured or built-in default.")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI color output.")

	root.AddCommand(
		newLocCommand(opts, outW, errW),
		newPassCommand(opts, outW, errW),
		newPeopleCommand(opts, outW, errW),
	)
	return root
}
