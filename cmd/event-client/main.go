package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"eventBookerClient/internal/app"
	"eventBookerClient/internal/config"
	"eventBookerClient/internal/lib/logger"
	"eventBookerClient/internal/lib/logger/sl"
	"eventBookerClient/internal/shell"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

func main() {
	cfg := config.MustLoad()

	log := logger.Setup(cfg.Env, os.Stderr)

	log.Info("Starting event booker client", slog.String("env", cfg.Env), slog.String("api", cfg.API.URL))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, log)
	defer a.Close()

	if err := run(ctx, cfg, log, a); err != nil {
		log.Error("shell stopped", sl.Err(err))
		os.Exit(1)
	}

	log.Info("client stopped")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger, a *app.App) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cfg.Shell.Prompt,
		HistoryFile:       cfg.Shell.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		UniqueEditLine:    true,

		Stdin:  readline.NewCancelableStdin(os.Stdin),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	sh := shell.New(log, a, rl.Stdout(), rl)

	items := make([]readline.PrefixCompleterInterface, 0)
	for _, name := range sh.Completions() {
		items = append(items, readline.PcItem(name))
	}
	rl.Config.AutoComplete = readline.NewPrefixCompleter(items...)

	color.New(color.FgCyan, color.Bold).Fprintln(rl.Stdout(), "EasyEvent")
	fmt.Fprintln(rl.Stdout(), "Type help for commands, quit to leave.")

	if err := a.Refresh(ctx); err != nil {
		log.Warn("initial refresh failed", sl.Err(err))
	}

	for {
		rl.SetPrompt(sh.Prompt(cfg.Shell.Prompt))

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if err := sh.Exec(ctx, strings.TrimSpace(line)); errors.Is(err, shell.ErrQuit) {
			return nil
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}
