package subcmd

import (
	"fmt"

	"github.com/gcd-cli/gcd/euclid"
	"github.com/gcd-cli/gcd/log"
	"github.com/urfave/cli"
)

// VerbosityFlags are shared by every command and by the app itself, so the
// bare `gcd NUMBER ...` form accepts them too.
var VerbosityFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: `Show debug messages`,
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: `Suppress information messages`,
	},
	cli.BoolFlag{
		Name:  "silent, Q",
		Usage: `Do not output any messages`,
	},
}

func applyVerbosity(ctx *cli.Context) {
	if ctx.Bool("debug") {
		log.Level = log.LogLevel_Debug
	} else if ctx.Bool("silent") {
		log.Level = log.LogLevel_None
	} else if ctx.Bool("quiet") {
		log.Level = log.LogLevel_Warn
	}
}

var Compute = cli.Command{
	Name:      "compute",
	Aliases:   []string{"c"},
	Usage:     "Computes the greatest common divisor of the given integers",
	ArgsUsage: "NUMBER ...",
	Flags:     VerbosityFlags,
	Action:    ComputeAction,
}

// ComputeAction doubles as the app's default action. Missing arguments are
// a usage error and exit with status 1.
func ComputeAction(ctx *cli.Context) error {
	applyVerbosity(ctx)
	if ctx.NArg() < 1 {
		return cli.NewExitError("Usage: gcd NUMBER ...", 1)
	}
	values, err := euclid.ParseUints(ctx.Args())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	d := euclid.Reduce(values)
	log.Debugf("reduced %d values to %d", len(values), d)
	fmt.Fprintf(ctx.App.Writer, "The greatest common divisor of %s is %d\n", euclid.FormatList(values), d)
	return nil
}
