// Package greet implements the greet subcommand, the default operation
// of the program.
package greet

import (
	"context"
	"dominicbreuker/helloworld/pkg/entrypoint"

	"github.com/urfave/cli/v3"
)

// GetCommand ...
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "greet",
		Usage: "Print the greeting",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			entrypoint.Greet()
			return nil
		},
		Flags: []cli.Flag{},
	}
}
