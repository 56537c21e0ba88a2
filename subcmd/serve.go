package subcmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gcd-cli/gcd/log"
	"github.com/gcd-cli/gcd/web"
	"github.com/urfave/cli"
	"github.com/xlab/closer"
)

const shutdownTimeout = 5 * time.Second

var Serve = cli.Command{
	Name:      "serve",
	Aliases:   []string{"s"},
	Usage:     "Serves the GCD calculator over HTTP",
	ArgsUsage: " ",
	Flags: append([]cli.Flag{
		cli.IntFlag{
			Name:  "port, p",
			Usage: `Port to listen on`,
			Value: 3000,
		},
	}, VerbosityFlags...),
	Action: func(ctx *cli.Context) error {
		port := ctx.Int("port")
		if port < 1 || 65535 < port {
			cli.ShowCommandHelp(ctx, "serve")
			os.Exit(1)
		}
		applyVerbosity(ctx)
		srv := web.NewServer(fmt.Sprintf(":%d", port))
		closer.Bind(func() {
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(sctx); err != nil {
				log.Warnf("shutdown: %v", err)
			}
		})
		go func() {
			log.Infof("Serving on http://localhost:%d...", port)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Warnf("%v", err)
				closer.Close()
			}
		}()
		closer.Hold()
		return nil
	},
}
