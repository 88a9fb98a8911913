package main

import (
	"fmt"
	"os"

	"github.com/senasgr-eth/junkcoin-core/conf"
	"github.com/senasgr-eth/junkcoin-core/log"
	"github.com/senasgr-eth/junkcoin-core/model/bitcointime"
	"github.com/senasgr-eth/junkcoin-core/model/chainparams"
	"github.com/senasgr-eth/junkcoin-core/util"
)

func appInitMain(opts *conf.Opts) error {
	if opts.DataDir != "" {
		conf.AppConf.DataDir = opts.DataDir
	}
	if opts.LogLevel != "" {
		conf.AppConf.LogLevel = opts.LogLevel
	}
	if err := conf.NewConfig(conf.AppConf.DataDir); err != nil {
		return err
	}

	switch {
	case opts.RegTest:
		chainparams.ActiveNetParams = &chainparams.RegressionNetParams
	case opts.TestNet:
		chainparams.ActiveNetParams = &chainparams.TestNetParams
	default:
		chainparams.ActiveNetParams = &chainparams.MainNetParams
	}

	dataDir := conf.GetDataPath()
	if err := log.InitLogger(dataDir, conf.AppConf.LogLevel); err != nil {
		return err
	}

	util.SetTimeSource(bitcointime.NewMedianTime())

	log.Info("junkcoind starting, chain: %s, datadir: %s",
		chainparams.ActiveNetParams.Name, dataDir)
	return nil
}

func main() {
	opts, err := conf.InitArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := appInitMain(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
