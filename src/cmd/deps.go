package cmd

import (
	"github.com/nodeman/nodeman/src/internal/activate"
	"github.com/nodeman/nodeman/src/internal/catalog"
	"github.com/nodeman/nodeman/src/internal/config"
	"github.com/nodeman/nodeman/src/internal/download"
	"github.com/nodeman/nodeman/src/internal/store"
)

// Component constructors shared by the commands. Everything hangs off the
// resolved Paths value; nothing is held in ambient state between commands.

func newTransport() download.Transport {
	return download.NewHTTPTransport(nil)
}

func newStore() *store.Store {
	return store.New(config.DefaultPaths())
}

func newManager() *activate.Manager {
	return activate.NewManager(config.DefaultPaths())
}

func newCatalog() (*catalog.Catalog, error) {
	return catalog.New(newTransport())
}
