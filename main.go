package main

import (
	"os"

	"github.com/gcd-cli/gcd/subcmd"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "gcd"
	app.Version = version
	app.Usage = "Computes the greatest common divisor of integers"
	app.HelpName = "gcd"
	app.ArgsUsage = "NUMBER ..."

	app.Commands = []cli.Command{
		subcmd.Compute,
		subcmd.Serve,
	}

	// Bare `gcd NUMBER ...` computes without naming a command.
	app.Flags = subcmd.VerbosityFlags
	app.Action = subcmd.ComputeAction

	// Exit coders have already terminated the process inside Run; anything
	// left over (e.g. a flag parse failure) is still a usage error.
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
