package config

import (
	"time"

	"github.com/spf13/pflag"
)

const (
	FlagAddress            = "address"
	FlagRequestTimeout     = "request-timeout"
	FlagDB                 = "db"
	FlagStoreKey           = "store-key"
	FlagFailureGranularity = "failure-granularity"
	FlagMasterPassword     = "master-password"
	FlagLogLevel           = "log-level"
	FlagLogFile            = "log-file"
	FlagConfig             = "config"
)

// RegisterFlags declares every configuration flag on fs. It is called on the
// root command's persistent flag set so all subcommands share them.
//
// Flags:
//
//	-a/--address service base URL
//	--request-timeout request timeout (e.g. "10s")
//	--db SQLite database path
//	--store-key key sealing the stored secret
//	--failure-granularity distinct|conflated
//	-m/--master-password master password for private instances
//	--log-level zerolog level
//	--log-file interactive client log file
//	-c/--config JSON config file path
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagAddress, "a", "", "Announcement service base URL")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g. 10s)")
	fs.String(FlagDB, "", "Local SQLite database path")
	fs.String(FlagStoreKey, "", "Key used to seal the stored secret")
	fs.String(FlagFailureGranularity, "", "Set/delete failure reporting: distinct or conflated")
	fs.StringP(FlagMasterPassword, "m", "", "Master password for private instances")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "Log file for the interactive client")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
}

// FlagsConfig reads the values registered by [RegisterFlags] back from fs.
// Flags the user did not set stay zero so lower-priority sources win.
func FlagsConfig(fs *pflag.FlagSet) *StructuredConfig {
	str := func(name string) string {
		v, _ := fs.GetString(name)
		return v
	}
	dur := func(name string) time.Duration {
		v, _ := fs.GetDuration(name)
		return v
	}

	return &StructuredConfig{
		App: App{
			StoreKey:           str(FlagStoreKey),
			FailureGranularity: str(FlagFailureGranularity),
			MasterPassword:     str(FlagMasterPassword),
			LogLevel:           str(FlagLogLevel),
			LogFile:            str(FlagLogFile),
		},
		Storage: Storage{
			DB: DB{DSN: str(FlagDB)},
		},
		Adapter: Adapter{
			HTTPAddress:    str(FlagAddress),
			RequestTimeout: dur(FlagRequestTimeout),
		},
		JSONFilePath: str(FlagConfig),
	}
}
