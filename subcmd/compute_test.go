package subcmd_test

import (
	"bytes"
	"testing"

	"github.com/gcd-cli/gcd/subcmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func newTestApp(out *bytes.Buffer) *cli.App {
	app := cli.NewApp()
	app.Name = "gcd"
	app.HelpName = "gcd"
	app.Writer = out
	app.Flags = subcmd.VerbosityFlags
	app.Commands = []cli.Command{subcmd.Compute}
	app.Action = subcmd.ComputeAction
	return app
}

// captureExit reroutes urfave/cli's exit handling for error-path tests.
func captureExit(t *testing.T, errOut *bytes.Buffer) *int {
	t.Helper()
	code := -1
	exiter := cli.OsExiter
	writer := cli.ErrWriter
	cli.OsExiter = func(c int) { code = c }
	cli.ErrWriter = errOut
	t.Cleanup(func() {
		cli.OsExiter = exiter
		cli.ErrWriter = writer
	})
	return &code
}

func TestComputeDefaultAction(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(&out)
	require.NoError(t, app.Run([]string{"gcd", "8", "12"}))
	assert.Equal(t, "The greatest common divisor of [8, 12] is 4\n", out.String())
}

func TestComputeCommand(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(&out)
	require.NoError(t, app.Run([]string{"gcd", "compute", "1", "2"}))
	assert.Equal(t, "The greatest common divisor of [1, 2] is 1\n", out.String())
}

func TestComputeNoArguments(t *testing.T) {
	var out, errOut bytes.Buffer
	code := captureExit(t, &errOut)
	app := newTestApp(&out)
	app.Run([]string{"gcd"})
	assert.Equal(t, 1, *code)
	assert.Contains(t, errOut.String(), "Usage: gcd NUMBER ...")
	assert.Empty(t, out.String())
}

func TestComputeNonNumericArgument(t *testing.T) {
	var out, errOut bytes.Buffer
	code := captureExit(t, &errOut)
	app := newTestApp(&out)
	app.Run([]string{"gcd", "8", "twelve"})
	assert.Equal(t, 1, *code)
	assert.Contains(t, errOut.String(), `"twelve"`)
	assert.Empty(t, out.String())
}
