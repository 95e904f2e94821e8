package main

import (
	"context"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/projectdiscovery/gologger"
	"github.com/wjlin0/dirScan/pkg/runner"
)

var (
	cpuprofile = "cpu.pprof"
	memprofile = "mem.pprof"
)

func main() {
	f1, err := os.Create(cpuprofile)
	if err != nil {
		log.Fatal("could not create CPU profile: ", err)
	}
	defer f1.Close()

	if err := pprof.StartCPUProfile(f1); err != nil {
		log.Fatal("could not start CPU profile: ", err)
	}
	defer pprof.StopCPUProfile()

	dirRunner, err := runner.NewRunner(runner.ParserOptions())
	if err != nil {
		gologger.Fatal().Msgf("Could not create runner: %s", err)
	}
	defer dirRunner.Close()

	ctx, cancel := runner.WithInterrupt(context.Background())
	defer cancel()
	if err := dirRunner.Run(ctx); err != nil {
		gologger.Error().Msgf("Could not run scan: %s", err)
	}

	f, err := os.Create(memprofile)
	if err != nil {
		log.Fatal("could not create memory profile: ", err)
	}
	defer f.Close()
	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal("could not write memory profile: ", err)
	}
}
