package conf

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var AppConf *AppConfig

type AppConfig struct {
	DataDir   string
	LogLevel  string
	LogModule []string
}

func init() {
	viper.SetEnvPrefix("junkcoin")
	viper.AutomaticEnv()
	viper.SetDefault("datadir", defaultDataDir())
	viper.SetDefault("loglevel", "info")
	viper.SetDefault("logmodule", []string{"consensus"})

	AppConf = loadConfig()
}

// NewConfig reads an optional config file from the given directory and
// overlays it on the defaults and environment.
func NewConfig(configFilePath string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFilePath)

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return err
		}
	}
	AppConf = loadConfig()
	return nil
}

func loadConfig() *AppConfig {
	return &AppConfig{
		DataDir:   viper.GetString("datadir"),
		LogLevel:  viper.GetString("loglevel"),
		LogModule: viper.GetStringSlice("logmodule"),
	}
}

func GetDataPath() string {
	dataPath := filepath.Clean(AppConf.DataDir)
	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		if err := os.MkdirAll(dataPath, 0700); err != nil {
			panic(err)
		}
	}
	return dataPath
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".junkcoin"
	}
	return filepath.Join(home, ".junkcoin")
}
