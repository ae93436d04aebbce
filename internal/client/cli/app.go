// Package cli implements the interactive TaskKeeper client: a small REPL
// that talks to the HTTP API. Sorting and searching of the fetched task
// list happen locally.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/client/api"
	"github.com/dmitrijs2005/taskkeeper/internal/client/config"
)

type App struct {
	config  *config.Config
	api     *api.Client
	session *api.Session
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	client := api.NewClient(c.ServerEndpointAddr, c.RequestTimeout)

	return &App{
		config: c,
		api:    client,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}
