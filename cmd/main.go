package main

import (
	"context"
	"dominicbreuker/helloworld/cmd/greet"
	"dominicbreuker/helloworld/cmd/version"
	"dominicbreuker/helloworld/pkg/entrypoint"
	"dominicbreuker/helloworld/pkg/log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "helloworld",
		Usage: "print a greeting to standard output",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// running without a subcommand greets as well
			entrypoint.Greet()
			return nil
		},
		Commands: []*cli.Command{
			greet.GetCommand(),
			version.GetCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
	}
}
