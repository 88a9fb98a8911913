package log

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/astaxie/beego/logs"

	"github.com/senasgr-eth/junkcoin-core/conf"
)

func init() {
	logs.SetLogger(logs.AdapterConsole)
	logs.SetLevel(logs.LevelDebug)
}

type logConfig struct {
	Filename string `json:"filename"`
	Level    int    `json:"level,omitempty"`
	Rotate   bool   `json:"rotate,omitempty"`
	Daily    bool   `json:"daily,omitempty"`
	MaxDays  int64  `json:"maxdays,omitempty"`
	MaxLines int    `json:"maxlines,omitempty"`
	MaxSize  int    `json:"maxsize,omitempty"`
}

func validLogLevel(strLevel string) (level int, ok bool) {
	ok = true
	strLevel = strings.ToLower(strLevel)
	switch strLevel {
	case "emergency":
		level = logs.LevelEmergency
	case "alert":
		level = logs.LevelAlert
	case "critical":
		level = logs.LevelCritical
	case "error":
		level = logs.LevelError
	case "warn":
		level = logs.LevelWarn
	case "info":
		level = logs.LevelInfo
	case "debug":
		level = logs.LevelDebug
	case "notice":
		level = logs.LevelNotice
	default:
		ok = false
	}
	return
}

// InitLogger switches logging to a rotated file under dir at the given level.
func InitLogger(dir, strLevel string) (err error) {
	logLevel, ok := validLogLevel(strLevel)
	if !ok {
		return fmt.Errorf("mismatch the logLevel %s", strLevel)
	}
	config, err := json.Marshal(logConfig{
		Filename: path.Join(dir, "debug.log"),
		Rotate:   true,
		Daily:    true,
		Level:    logLevel,
	})
	if err != nil {
		return err
	}
	return logs.SetLogger(logs.AdapterFile, string(config))
}

// Print logs at the given level only when the module is enabled in the
// configuration.
func Print(module string, level string, format string, reason ...interface{}) {
	if !IsIncludeModule(module) {
		return
	}
	switch level {
	case "emergency":
		logs.Emergency(format, reason...)
	case "alert":
		logs.Alert(format, reason...)
	case "critical":
		logs.Critical(format, reason...)
	case "error":
		logs.Error(format, reason...)
	case "warn":
		logs.Warn(format, reason...)
	case "info":
		logs.Info(format, reason...)
	case "debug":
		logs.Debug(format, reason...)
	case "notice":
		logs.Notice(format, reason...)
	}
}

func IsIncludeModule(module string) bool {
	for _, item := range conf.AppConf.LogModule {
		if item == module {
			return true
		}
	}
	return false
}

func Error(format string, v ...interface{}) {
	logs.Error(format, v...)
}

func Warn(format string, v ...interface{}) {
	logs.Warn(format, v...)
}

func Info(format string, v ...interface{}) {
	logs.Info(format, v...)
}

func Debug(format string, v ...interface{}) {
	logs.Debug(format, v...)
}

func Trace(format string, v ...interface{}) {
	logs.Debug(format, v...)
}
