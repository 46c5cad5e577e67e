// Command isleprint estimates the carbon footprint of island travel and
// island operations.
package main

import (
	"context"
	"os"

	"github.com/rshade/isleprint/internal/cli"
	"github.com/rshade/isleprint/pkg/version"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
