package constants

// Directory names used by pacsync for its own data.
const (
	// AppHome is the hidden directory in the user's home where pacsync keeps
	// its global config and logs.
	AppHome = ".pacsync"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Log file names and rotation settings.
const (
	// CLILogFileName is the name of the rotating CLI log file.
	// This file is located in ~/.pacsync/logs/pacsync.log
	CLILogFileName = "pacsync.log"

	// LogMaxSizeMB is the size at which the log file is rotated.
	LogMaxSizeMB = 5

	// LogMaxBackups is the number of rotated log files kept.
	LogMaxBackups = 3

	// LogMaxAgeDays is how long rotated log files are kept.
	LogMaxAgeDays = 14

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global configuration file,
	// located in the pacsync home directory.
	GlobalConfigName = "config.yaml"

	// ProjectConfigName is the name of the project configuration file,
	// located in the working directory.
	ProjectConfigName = ".pacsync.yaml"

	// EnvPrefix is the prefix for environment variable overrides (PACSYNC_USERNAME, ...).
	EnvPrefix = "PACSYNC"

	// HomeEnvVar overrides the pacsync home directory.
	HomeEnvVar = "PACSYNC_HOME"
)
