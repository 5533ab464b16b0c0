package main

import (
	"context"
	"fmt"

	"github.com/erpbridge/odoorest/config"
	"github.com/erpbridge/odoorest/logging"
	"github.com/erpbridge/odoorest/odoo"

	"github.com/jessevdk/go-flags"
)

// PingCmd checks the configured server is reachable and the credentials
// are accepted.
type PingCmd struct {
	config.HomeFlag
}

var pingCmd PingCmd

func Ping(ctx context.Context, parser *flags.Parser) error {
	pingCmd = PingCmd{}

	_, err := parser.AddCommand("ping", "Check the Odoo server", "Print the server version and authenticate with the configured credentials", &pingCmd)
	return err
}

func (cmd *PingCmd) Execute(_ []string) error {
	log := logging.NewLoggerFromEnv("dev")
	defer log.AtExit()

	loader := config.NewLoader(cmd.Home)
	cfg := config.NewDefaultConfig()
	exists, err := loader.ConfigExists()
	if err != nil {
		return err
	}
	if exists {
		if err := loader.Load(&cfg); err != nil {
			return err
		}
	}
	if _, err := flags.NewParser(&cfg, flags.Default|flags.IgnoreUnknown).Parse(); err != nil {
		return err
	}

	client, err := odoo.NewClient(log, cfg.Odoo)
	if err != nil {
		return err
	}

	ctx := context.Background()
	v, err := client.Version(ctx)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	fmt.Printf("server %s: %v\n", cfg.Odoo.URL, v["server_version"])

	uid, err := client.Authenticate(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	fmt.Printf("authenticated on %s as %s (uid %d)\n", cfg.Odoo.Database, cfg.Odoo.Username, uid)
	return nil
}
