package main

import (
	"context"
	"fmt"

	"github.com/projectdiscovery/gologger"
	"github.com/wjlin0/dirScan/pkg/runner"
	"github.com/wjlin0/dirScan/pkg/types"
)

func main() {
	options := &types.Options{
		URL:         "https://example.com/",
		Profile:     "fast",
		Candidates:  []string{"admin", "backup", "login", ".git/HEAD"},
		JitterMin:   types.Unset,
		JitterMax:   types.Unset,
		ChunkPause:  types.Unset,
		RateBackoff: types.Unset,
	}

	profiles, err := runner.LoadProfiles("")
	if err != nil {
		gologger.Fatal().Msgf("Could not load profiles: %s", err)
	}
	runner.DefaultOptions(options, profiles[options.Profile])
	// candidates are given inline, skip the default wordlist
	options.Wordlist = ""
	runner.ConfigureOutput(options)
	if err := runner.ValidateOptions(options); err != nil {
		gologger.Fatal().Msgf("Options validation error: %s", err)
	}

	dirRunner, err := runner.NewRunner(options)
	if err != nil {
		gologger.Fatal().Msgf("Could not create runner: %s", err)
	}
	defer dirRunner.Close()

	if err := dirRunner.Run(context.Background()); err != nil {
		gologger.Fatal().Msgf("Could not run scan: %s", err)
	}
	for _, url := range dirRunner.State().Discoveries() {
		fmt.Println(url)
	}
}
