package main

import (
	"io"
	"os"

	"github.com/vk/issctl/internal/cli"
	"github.com/vk/issctl/internal/render"
)

// main is the entrypoint for issctl. All failure classes share the same
// process exit code; run does the work and reports errors.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		os.Exit(-1)
	}
}

// run executes the command tree and renders any resulting error. It is kept
// separate from main so tests can drive it with their own streams.
func run(outW, errW io.Writer, args []string) error {
	root := cli.NewRootCommand(outW, errW)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		render.New(outW, errW).Error(err)
		return err
	}
	return nil
}
