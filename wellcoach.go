// Package wellcoach provides a high-level façade that turns a config.Config
// into a ready-to-use coach.Coach. Most applications interact with this
// package by:
//  1. Loading configuration (config.LoadDotEnv, config.Load)
//  2. Creating an App via New (optionally overriding the logger or search count)
//  3. Running turns on App.Coach and calling Close when done
//
// The façade selects the model provider, the Serper search provider and the
// session store. Everything it builds can also be constructed by hand from
// the underlying packages.
package wellcoach

import (
	"fmt"
	"io"
	"os"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/hupe1980/wellcoach/coach"
	"github.com/hupe1980/wellcoach/config"
	"github.com/hupe1980/wellcoach/core"
	"github.com/hupe1980/wellcoach/logging"
	"github.com/hupe1980/wellcoach/model"
	"github.com/hupe1980/wellcoach/model/anthropic"
	"github.com/hupe1980/wellcoach/model/openai"
	"github.com/hupe1980/wellcoach/search"
	"github.com/hupe1980/wellcoach/session"
)

// Options configures the App.
type Options struct {
	// Logger overrides the logger built from the configured level and format.
	Logger *logging.CoachLogger
	// LogOutput receives log output when Logger is nil (defaults to stderr).
	LogOutput io.Writer
	// SearchCount is the number of results requested per search.
	SearchCount int
}

// App bundles a wired Coach with the resources it owns.
type App struct {
	Coach  *coach.Coach
	Config *config.Config
	closer func() error
}

// New wires a Coach from cfg.
func New(cfg *config.Config, optFns ...func(o *Options)) (*App, error) {
	opts := Options{
		LogOutput:   os.Stderr,
		SearchCount: coach.DefaultSearchCount,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger(&logging.LoggerConfig{
			Level:  logging.ParseLevel(cfg.LogLevel),
			Format: cfg.LogFormat,
			Output: opts.LogOutput,
		})
	}

	coachModel, validatorModel, err := NewModels(cfg)
	if err != nil {
		return nil, err
	}

	store, closer, err := NewStore(cfg)
	if err != nil {
		return nil, err
	}

	provider := search.NewSerper(cfg.SerperAPIKey, func(o *search.SerperOptions) {
		o.RequestsPerSecond = cfg.SearchRPS
	})
	searcher := search.New(provider, func(o *search.Options) {
		o.Logger = logger.WithComponent("search")
	})

	c := coach.New(coachModel, validatorModel, func(o *coach.Options) {
		o.Searcher = searcher
		o.Store = store
		o.Stream = cfg.Stream
		o.SearchCount = opts.SearchCount
		o.Logger = logger.WithComponent("coach")
	})
	logger.WithComponent("app").WithSession(c.ID()).Debug("Coach ready",
		"provider", cfg.Provider, "store", cfg.Store, "search_enabled", cfg.SearchEnabled())

	return &App{Coach: c, Config: cfg, closer: closer}, nil
}

// Close releases the session store.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}

// NewModels returns the coach and validator models for the configured provider.
func NewModels(cfg *config.Config) (model.Model, model.Model, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		build := func(name string) model.Model {
			return openai.NewModel(func(o *openai.Options) {
				o.APIKey = cfg.OpenAIAPIKey
				if name != "" {
					o.Model = name
				}
			})
		}
		return build(cfg.Model), build(cfg.ValidatorModel), nil
	case config.ProviderAnthropic:
		build := func(name string) model.Model {
			return anthropic.NewModel(func(o *anthropic.Options) {
				o.APIKey = cfg.AnthropicAPIKey
				if name != "" {
					o.Model = anthropicsdk.Model(name)
				}
			})
		}
		return build(cfg.Model), build(cfg.ValidatorModel), nil
	case config.ProviderMock:
		return model.NewMockModel("mock-coach", config.ProviderMock),
			model.NewMockModel("mock-validator", config.ProviderMock), nil
	default:
		return nil, nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// NewStore returns the configured snapshot store and its close func (nil
// when there is nothing to release).
func NewStore(cfg *config.Config) (core.SnapshotStore, func() error, error) {
	if cfg.Store == config.StoreSQLite {
		store, err := session.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}
	return session.NewFileStore(cfg.DataDir), nil, nil
}
