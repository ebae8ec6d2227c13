package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/shaicoin/shaicoin/domain/dagconfig"
)

const (
	defaultLogFilename    = "shaihiveminer.log"
	defaultErrLogFilename = "shaihiveminer_err.log"
)

var defaultHomeDir = appDataDir("shaihiveminer")

// networkFlags selects the active network, mutually exclusively, the way
// config.NetworkFlags does it: exactly zero or one of these may be set,
// defaulting to mainnet.
type networkFlags struct {
	TestNet bool `long:"testnet" description:"Use the test network"`
	SigNet  bool `long:"signet" description:"Use the signet test network"`
	RegTest bool `long:"regtest" description:"Use the regression test network"`

	activeParams *dagconfig.Params
}

func (n *networkFlags) resolve(parser *flags.Parser) error {
	n.activeParams = &dagconfig.MainnetParams
	numNets := 0
	if n.TestNet {
		numNets++
		n.activeParams = &dagconfig.TestnetParams
	}
	if n.SigNet {
		numNets++
		n.activeParams = &dagconfig.SignetParams
	}
	if n.RegTest {
		numNets++
		n.activeParams = &dagconfig.RegtestParams
	}
	if numNets > 1 {
		err := errors.New("--testnet, --signet and --regtest cannot be used together; choose only one network")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return err
	}
	return nil
}

type configFlags struct {
	ShowVersion  bool   `short:"V" long:"version" description:"Display version information and exit"`
	MiningAddr   string `short:"a" long:"miningaddr" description:"Address to credit mined blocks to"`
	NumWorkers   int    `short:"t" long:"threads" description:"Number of mining worker goroutines (default: number of CPUs)"`
	LogDir       string `long:"logdir" description:"Directory to write log files to"`
	LogLevel     string `short:"d" long:"debuglevel" description:"Logging level: trace, debug, info, warn, error, critical"`
	Profile      string `long:"profile" description:"Enable HTTP profiling on given port -- NOTE port must be between 1024 and 65535"`
	networkFlags
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{
		NumWorkers: runtime.NumCPU(),
		LogLevel:   "info",
	}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()

	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version())
		os.Exit(0)
	}

	if err != nil {
		return nil, err
	}

	if err := cfg.networkFlags.resolve(parser); err != nil {
		return nil, err
	}

	if cfg.MiningAddr == "" {
		return nil, errors.New("--miningaddr is required")
	}

	if cfg.NumWorkers < 1 {
		return nil, errors.New("--threads must be at least 1")
	}

	if cfg.Profile != "" {
		profilePort, err := strconv.Atoi(cfg.Profile)
		if err != nil || profilePort < 1024 || profilePort > 65535 {
			return nil, errors.New("the profile port must be between 1024 and 65535")
		}
	}

	if cfg.LogDir == "" {
		cfg.LogDir = defaultHomeDir
	}

	return cfg, nil
}

func version() string {
	return "0.1.0"
}
