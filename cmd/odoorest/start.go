package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erpbridge/odoorest/config"
	"github.com/erpbridge/odoorest/gateway/rest"
	"github.com/erpbridge/odoorest/gateway/server"
	"github.com/erpbridge/odoorest/invoices"
	vhttp "github.com/erpbridge/odoorest/libs/http"
	"github.com/erpbridge/odoorest/logging"
	"github.com/erpbridge/odoorest/metrics"
	"github.com/erpbridge/odoorest/odoo"
	"github.com/erpbridge/odoorest/partners"
	"github.com/erpbridge/odoorest/products"
	"github.com/erpbridge/odoorest/version"

	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type StartCmd struct {
	config.HomeFlag
	config.Config
}

var startCmd StartCmd

func Start(ctx context.Context, parser *flags.Parser) error {
	startCmd = StartCmd{
		Config: config.NewDefaultConfig(),
	}

	_, err := parser.AddCommand("start", "Start the gateway", "Serve the REST API in front of the configured Odoo server", &startCmd)
	return err
}

func (cmd *StartCmd) Execute(_ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bootLog, err := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	if err != nil {
		return err
	}
	defer bootLog.AtExit()

	// we define this option to parse the cli args each time the config is
	// loaded. So that we can respect the cli flag precedence.
	parseFlagOpt := func(cfg *config.Config) error {
		_, err := flags.NewParser(cfg, flags.Default|flags.IgnoreUnknown).Parse()
		return err
	}

	configWatcher, err := config.NewWatcher(ctx, bootLog, config.NewLoader(cmd.Home), config.Use(parseFlagOpt))
	if err != nil {
		return fmt.Errorf("couldn't load the configuration, run init first: %w", err)
	}
	cmd.Config = configWatcher.Get()

	log, err := logging.NewLoggerFromConfig(cmd.Logging)
	if err != nil {
		return err
	}
	defer log.AtExit()

	return cmd.run(ctx, cancel, log, configWatcher)
}

func (cmd *StartCmd) run(ctx context.Context, cancel context.CancelFunc, log *logging.Logger, configWatcher *config.Watcher) error {
	client, err := odoo.NewClient(log, cmd.Odoo)
	if err != nil {
		return fmt.Errorf("invalid odoo configuration: %w", err)
	}

	partnerSvc := partners.NewService(log, client)
	productSvc := products.NewService(log, client)
	invoiceSvc := invoices.NewService(log, client, partnerSvc, productSvc)

	rl, err := vhttp.NewRateLimit(ctx, cmd.Gateway.CreateCoolDown)
	if err != nil {
		return fmt.Errorf("invalid create cool down configuration: %w", err)
	}

	routes := rest.NewService(log, client, rest.Services{
		Partners: partnerSvc,
		Products: productSvc,
		Invoices: invoiceSvc,
	}, rl)
	gty := server.New(log, cmd.Gateway, routes)
	metricsSrv := metrics.NewServer(log, cmd.Metrics)
	if cmd.Metrics.Enabled.Get() {
		if err := metrics.Setup(); err != nil {
			return fmt.Errorf("could not set up metrics: %w", err)
		}
	}

	configWatcher.OnConfigUpdate(
		func(cfg config.Config) {
			if lvl, err := logging.ParseLevel(cfg.Logging.Level); err == nil {
				log.SetLevel(lvl)
			}
		},
		func(cfg config.Config) { client.ReloadConf(cfg.Odoo) },
		func(cfg config.Config) { client.PurgeFieldsCache() },
		func(cfg config.Config) { gty.ReloadConf(cfg.Gateway) },
	)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return gty.Start() })
	eg.Go(func() error { return metricsSrv.Start() })

	// stop the listeners once anything fails or a signal is caught
	eg.Go(func() error {
		<-ctx.Done()
		stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stopCancel()
		gty.Stop(stopCtx)
		metricsSrv.Stop()
		return nil
	})

	// waitSig will wait for a sigterm or sigint interrupt.
	eg.Go(func() error {
		gracefulStop := make(chan os.Signal, 1)
		signal.Notify(gracefulStop, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(gracefulStop)

		select {
		case sig := <-gracefulStop:
			log.Info("Caught signal", logging.String("name", fmt.Sprintf("%+v", sig)))
			cancel()
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	})

	log.Info("odoorest startup complete",
		logging.String("version", version.Get()),
		logging.String("odoo", cmd.Odoo.URL),
		logging.String("database", cmd.Odoo.Database))

	err = eg.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
