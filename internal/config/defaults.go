package config

const (
	defaultLogDir              = "~/.local/share/egrulfill/logs"
	defaultLockFile            = "~/.local/share/egrulfill/egrulfill.lock"
	defaultNameColumn          = "ФИО"
	defaultIdentifierColumn    = 5
	defaultAltIdentifierColumn = 3
	defaultHeaderRows          = 1
	defaultRegistryBaseURL     = "https://egrul.nalog.ru"
	defaultRequestTimeout      = 15
	defaultTokenDelayMS        = 1000
	defaultRowDelayMS          = 500
	defaultUserAgent           = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	outputFileSuffix           = "_с_ФИО"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:   defaultLogDir,
			LockFile: defaultLockFile,
		},
		Input: Input{
			NameColumn:          defaultNameColumn,
			IdentifierColumn:    defaultIdentifierColumn,
			AltIdentifierColumn: defaultAltIdentifierColumn,
			HeaderRows:          defaultHeaderRows,
		},
		Registry: Registry{
			BaseURL:        defaultRegistryBaseURL,
			RequestTimeout: defaultRequestTimeout,
			TokenDelayMS:   defaultTokenDelayMS,
			RowDelayMS:     defaultRowDelayMS,
			UserAgent:      defaultUserAgent,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
