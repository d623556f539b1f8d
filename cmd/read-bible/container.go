package main

import (
	"io"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/FocuswithJustin/bibleread/core/catalog"
	"github.com/FocuswithJustin/bibleread/internal/config"
	"github.com/FocuswithJustin/bibleread/internal/logging"
	"github.com/FocuswithJustin/bibleread/internal/reading"
)

// Streams carries the process's output writers.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// ClientHandle wraps the reading client so the container can stop the
// actor on shutdown.
type ClientHandle struct {
	*reading.Client
}

// Shutdown releases the client and waits for the actor to exit.
func (h *ClientHandle) Shutdown() error {
	h.Close()
	<-h.Done()
	return nil
}

// NewContainer creates the DI container. Services are built lazily, so a
// command that never touches the save file never starts the actor.
func NewContainer(globals *Globals, streams Streams) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, globals)
	do.ProvideValue(injector, streams)

	do.Provide(injector, ProvideConfig)
	do.Provide(injector, ProvideLogger)
	do.Provide(injector, ProvideCatalog)
	do.Provide(injector, ProvideClient)

	return injector
}

// ProvideConfig resolves defaults, the config file and the global flags.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	globals := do.MustInvoke[*Globals](i)

	cfg, err := config.Load(globals.Config)
	if err != nil {
		return nil, err
	}
	cfg.Apply(config.Overrides{
		Path:          globals.Path,
		QueueCapacity: globals.QueueCapacity,
		LogLevel:      globals.LogLevel,
		LogFormat:     globals.LogFormat,
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ProvideLogger builds the logger; it writes to stderr.
func ProvideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)
	streams := do.MustInvoke[Streams](i)

	lc, err := cfg.Logging(streams.Err)
	if err != nil {
		return nil, err
	}
	log := logging.New(lc)
	log.Debug("configuration loaded",
		slog.Any("sources", cfg.Sources),
		slog.String("path", cfg.Path))
	return log, nil
}

// ProvideCatalog loads the bundled catalog.
func ProvideCatalog(i do.Injector) (*catalog.Catalog, error) {
	log := do.MustInvoke[*slog.Logger](i)
	return catalog.Embedded(catalog.WithLogger(log))
}

// ProvideClient starts the reading actor.
func ProvideClient(i do.Injector) (*ClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)
	cat := do.MustInvoke[*catalog.Catalog](i)

	client := reading.Launch(cfg.QueueCapacity, cfg.Path, cat, reading.WithLogger(log))
	return &ClientHandle{Client: client}, nil
}
