package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/tui"
)

// Launch opens the configured store and runs the TUI until the user quits
// or the process is interrupted
func Launch(cfg *config.Config) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	// store cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing store", "error", err)
		}
	}()

	model := tui.New(ctx, application, cfg)
	defer model.Close()

	// Load after the model subscribes so the board receives the Reset
	if err := application.Load(ctx); err != nil {
		return fmt.Errorf("failed to load todos: %w", err)
	}

	slog.Info("starting tui", "backend", cfg.Storage.Backend, "todos", application.Todos.Len())

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
