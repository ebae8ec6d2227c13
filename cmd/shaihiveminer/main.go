package main

import (
	"fmt"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/shaicoin/shaicoin/domain/miningmanager/minerservice"
	"github.com/shaicoin/shaicoin/infrastructure/logger"
	"github.com/shaicoin/shaicoin/infrastructure/os/panics"
	"github.com/shaicoin/shaicoin/infrastructure/os/signal"
)

var spawn = panics.GoroutineWrapperFunc(log)

func main() {
	defer panics.HandlePanic(log, nil)

	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	logLevel, ok := logger.LevelFromString(cfg.LogLevel)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unrecognized log level %q\n", cfg.LogLevel)
		os.Exit(1)
	}
	if err := initLog(cfg.LogDir, logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %s\n", err)
		os.Exit(1)
	}

	log.Infof("Starting on network %s", cfg.activeParams.Name)

	if cfg.Profile != "" {
		spawn(func() {
			listenAddr := net.JoinHostPort("", cfg.Profile)
			log.Infof("Profile server listening on %s", listenAddr)
			log.Errorf("%s", http.ListenAndServe(listenAddr, nil))
		})
	}

	interrupt := signal.InterruptListener()

	chain := newLocalChain(cfg.activeParams)
	assembler := newLocalAssembler(chain, cfg.activeParams)
	service := minerservice.New(chain, assembler, cfg.activeParams, cfg.NumWorkers)

	service.Start(cfg.MiningAddr)
	log.Infof("Mining with %d workers toward %s", cfg.NumWorkers, cfg.MiningAddr)

	<-interrupt
	service.Stop()
}
