package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/testutil"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the todo collection

	// owned is false for an App injected by tests, which outlives the command
	owned bool
}

type configKey struct{}

type configPathKey struct{}

// WithConfigPath stores the --config file in ctx. An empty path means the
// default location.
func WithConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, configPathKey{}, path)
}

// ConfigPath returns the config file stored by WithConfigPath, or the
// default location when none was given
func ConfigPath(ctx context.Context) (string, error) {
	if path, ok := ctx.Value(configPathKey{}).(string); ok && path != "" {
		return path, nil
	}
	return config.Path()
}

// WithConfig stores the resolved configuration in ctx for NewCLI
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, or
// loads it from the file named by WithConfigPath (default location when unset)
func ConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg, nil
	}
	if path, ok := ctx.Value(configPathKey{}).(string); ok && path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// NewCLI opens the configured store and loads every todo
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := application.Load(ctx); err != nil {
		_ = application.Close()
		return nil, fmt.Errorf("failed to load todos: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// GetCLIFromContext returns a CLI over the test App carried by ctx, or
// opens the configured store when there is none
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && testApp != nil {
		if err := testApp.Load(ctx); err != nil {
			return nil, fmt.Errorf("failed to load todos: %w", err)
		}
		return &CLI{App: testApp}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
