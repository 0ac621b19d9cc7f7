package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rmartel/grind/internal/httpapi"
)

type ServeCmd struct {
	Addr string `help:"Listen address." default:"127.0.0.1:8000"`
}

func (c *ServeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving the exercise catalog on http://%s (Ctrl-C to stop)\n", c.Addr)
	server := httpapi.NewServer(c.Addr, ctx.Store)
	return server.ListenAndServe(runCtx)
}
