// Command couponstash-events follows the coupon events published by
// couponstash and logs each change next to the current size of the stash.
package main

import (
	"context"
	"errors"
	"os"

	"couponstash/internal/amqp"
	"couponstash/internal/backend"
	"couponstash/internal/cli"
	applog "couponstash/internal/log"
	"couponstash/internal/storage"
)

func main() {
	cli.LoadEnvFile()

	cfg := cli.LoadAndValidateConfig(cli.SetupLogger(""))
	logger := cli.SetupLogger(cfg.LogLevel)

	if !cfg.AMQPEnabled() {
		logger.Error("AMQP_URL must be set to follow coupon events")
		os.Exit(1)
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", applog.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Starting couponstash-events", applog.FieldOperation, applog.OpStartup, applog.FieldBackend, backendCfg.Type)

	repo := openStashRepository(logger, backendCfg)
	if repo != nil {
		defer repo.Close()
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, cancel := cli.GracefulShutdown(logger, nil)
	defer cancel()

	amqpLogger := logger.WithComponent(applog.ComponentAMQP)
	handle := func(evt *amqp.CouponEvent) error {
		fields := applog.NewFields().WithCommand(evt.CommandWord)
		fields[applog.FieldCouponName] = evt.CouponName
		if repo != nil {
			count, err := repo.CountCoupons(ctx)
			if err != nil {
				return err
			}
			fields[applog.FieldCoupons] = count
		}
		amqpLogger.InfoContext(ctx, evt.Feedback, append(fields.ToSlice(), "event_id", evt.ID, "at", evt.Timestamp)...)
		return nil
	}

	if err := client.ConsumeCouponEvents(ctx, handle); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Message consumption failed", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("couponstash-events stopped", applog.FieldOperation, applog.OpShutdown)
}

// openStashRepository opens the SQLite stash so events can be logged with
// the coupon count. The memory backend lives in another process, so there
// is nothing to count.
func openStashRepository(logger *applog.Logger, cfg backend.Config) *storage.SQLiteRepository {
	if cfg.Type != backend.SQLiteBackend {
		return nil
	}
	return cli.InitSQLite(logger, cfg.SQLiteDBPath)
}
