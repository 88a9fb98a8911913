package conf

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

type Opts struct {
	DataDir  string `long:"datadir" description:"specified program data dir"`
	LogLevel string `long:"loglevel" default:"info" description:"level of logging: emergency, alert, critical, error, warn, info, debug, notice"`

	RegTest bool `long:"regtest" description:"initiate regression test network"`
	TestNet bool `long:"testnet" description:"initiate test network"`
}

func InitArgs(args []string) (*Opts, error) {
	opts := new(Opts)
	_, err := flags.ParseArgs(opts, args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	return opts, nil
}

func (opts *Opts) String() string {
	return fmt.Sprintf("datadir:%s regtest:%v testnet:%v", opts.DataDir, opts.RegTest, opts.TestNet)
}
