package main

import (
	"context"
	"fmt"

	"github.com/erpbridge/odoorest/version"

	"github.com/jessevdk/go-flags"
)

type VersionCmd struct {
	Help bool `short:"h" long:"help" description:"Show this help message"`
}

func (cmd *VersionCmd) Execute(_ []string) error {
	if cmd.Help {
		return &flags.Error{
			Type:    flags.ErrHelp,
			Message: "odoorest version subcommand help",
		}
	}
	fmt.Printf("odoorest %s (%s)\n", version.Get(), version.GetCommitHash())
	return nil
}

var versionCmd VersionCmd

func Version(ctx context.Context, parser *flags.Parser) error {
	versionCmd = VersionCmd{}

	_, err := parser.AddCommand("version", "Show version info", "Show version info", &versionCmd)
	return err
}
