package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"couponstash/internal/backend"
	"couponstash/internal/cli"
	"couponstash/internal/command"
	"couponstash/internal/core"
	applog "couponstash/internal/log"
	"couponstash/internal/logic"
	"couponstash/internal/parser"
	"couponstash/internal/storage"
)

const prompt = "> "

func main() {
	cli.LoadEnvFile()

	cfg := cli.LoadAndValidateConfig(cli.SetupLogger(""))
	logger := cli.SetupLogger(cfg.LogLevel)

	prefsStore := storage.NewPrefsFile(cfg.PrefsPath)
	prefs, err := prefsStore.LoadPrefs()
	if err != nil {
		logger.Warn("Failed to load preferences, using defaults", applog.FieldError, err, applog.FieldPath, cfg.PrefsPath)
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", applog.FieldError, err)
		os.Exit(1)
	}

	ctx, cancel := cli.GracefulShutdown(logger, nil)
	defer cancel()

	result, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize backend", applog.FieldError, err, applog.FieldBackend, backendCfg.Type)
		os.Exit(1)
	}
	defer func() {
		if result.Cleanup != nil {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", applog.FieldError, err)
			}
		}
	}()

	opts := []logic.Option{logic.WithLogger(logger)}
	if result.Events != nil {
		opts = append(opts, logic.WithEvents(result.Events))
	}
	manager, err := logic.NewManager(ctx, result.Storage, prefs, opts...)
	if err != nil {
		logger.Error("Failed to load coupon stash", applog.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Coupon Stash ready", applog.FieldOperation, applog.OpStartup,
		applog.FieldBackend, backendCfg.Type, applog.FieldMoneySymbol, prefs.MoneySymbol)

	run(ctx, manager, os.Stdin, os.Stdout, logger)

	if err := prefsStore.SavePrefs(manager.UserPrefs()); err != nil {
		logger.Error("Failed to save preferences", applog.FieldError, err)
	}
	logger.Info("Coupon Stash stopped", applog.FieldOperation, applog.OpShutdown)
}

// run reads commands from in until exit, end of input or cancellation.
func run(ctx context.Context, manager *logic.Manager, in io.Reader, out io.Writer, logger *applog.Logger) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	fmt.Fprint(out, prompt)
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if strings.TrimSpace(line) == "" {
				fmt.Fprint(out, prompt)
				continue
			}

			res, err := manager.Execute(ctx, line)
			if err != nil {
				fmt.Fprintln(out, userMessage(err, logger))
				fmt.Fprint(out, prompt)
				continue
			}

			fmt.Fprintln(out, res.Feedback)
			if res.Exit {
				return
			}
			if !res.ShowHelp {
				printCoupons(out, manager.FilteredCoupons(), manager.UserPrefs().MoneySymbol)
			}
			fmt.Fprint(out, prompt)
		}
	}
}

// printCoupons lists the displayed coupons with the indices commands take.
func printCoupons(out io.Writer, coupons []core.Coupon, moneySymbol string) {
	for i, c := range coupons {
		fmt.Fprintf(out, "%d. %s\n", i+1, c.StringWithSymbol(moneySymbol))
	}
}

// userMessage shows parse and command errors verbatim and hides the
// details of anything else behind a generic message.
func userMessage(err error, logger *applog.Logger) string {
	var pe *parser.ParseError
	if errors.As(err, &pe) || command.IsError(err) {
		return err.Error()
	}
	logger.Error("Command could not be completed", applog.FieldError, err)
	return "Something went wrong: " + failureHint(err)
}

func failureHint(err error) string {
	if errors.Is(err, context.Canceled) {
		return "the command was interrupted"
	}
	return "your change was not saved, please try again"
}
