package app

import (
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/km-arc/go-nox/framework/config"
	"github.com/km-arc/go-nox/framework/logging"
	"github.com/km-arc/go-nox/framework/module"
	"github.com/km-arc/go-nox/framework/nox"
	"github.com/km-arc/go-nox/framework/providers"
	"github.com/km-arc/go-nox/framework/routing"
)

// Application wires configuration, logging, the module registry and the
// nox Factory together.
type Application struct {
	Config  *config.Config
	Logger  *zap.Logger
	Modules *module.Registry
	Nox     *nox.Factory

	routerOnce sync.Once
	router     *routing.Router
}

// New loads configuration from envFiles (default ".env") and bootstraps the
// application with the shipped modules registered.
func New(envFiles ...string) (*Application, error) {
	cfg := config.Load(envFiles...)
	return NewWith(cfg, logging.New(cfg))
}

// NewWith bootstraps the application from an already loaded config.
func NewWith(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	reg := module.NewRegistry()
	if err := providers.Register(reg); err != nil {
		return nil, fmt.Errorf("registering modules: %w", err)
	}

	return &Application{
		Config:  cfg,
		Logger:  logger,
		Modules: reg,
		Nox: nox.New(reg,
			nox.WithLogger(logger.Named("nox")),
			nox.WithDedupe(cfg.Nox.DedupeModules),
		),
	}, nil
}

// DefaultModules returns the configured module list for registrations that
// name none.
func (a *Application) DefaultModules() []string {
	return a.Config.Nox.Modules
}

// RegisterRecord registers a Record at ns built from the given modules.
func (a *Application) RegisterRecord(ns string, modules []string) (*Record, error) {
	if len(modules) == 0 {
		modules = a.DefaultModules()
	}
	instance, err := a.Nox.Register(ns, modules, NewRecord(ns))
	if err != nil {
		return nil, err
	}
	return instance.(*Record), nil
}

// Router returns the inspection API router, building it on first use.
func (a *Application) Router() *routing.Router {
	a.routerOnce.Do(func() {
		a.router = routing.New()
		a.routes(a.router)
	})
	return a.router
}

// Run starts the inspection API on APP_PORT.
func (a *Application) Run() error {
	addr := ":" + a.Config.App.Port
	a.Logger.Info("inspection API listening",
		zap.String("addr", addr),
		zap.String("env", a.Config.App.Env),
		zap.Strings("modules", a.Modules.Names()),
	)
	return http.ListenAndServe(addr, a.Router())
}

// Version reports the application version shown by the CLI.
func (a *Application) Version() string { return "0.1.0" }
