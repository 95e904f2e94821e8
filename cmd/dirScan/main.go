package main

import (
	"context"

	"github.com/projectdiscovery/gologger"
	"github.com/wjlin0/dirScan/pkg/runner"
)

func main() {
	options := runner.ParserOptions()

	dirRunner, err := runner.NewRunner(options)
	if err != nil {
		gologger.Fatal().Msgf("Could not create runner: %s", err)
	}
	defer dirRunner.Close()

	ctx, cancel := runner.WithInterrupt(context.Background())
	defer cancel()

	if err := dirRunner.Run(ctx); err != nil {
		gologger.Error().Msgf("Could not run scan: %s", err)
	}
}
