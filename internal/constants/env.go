// Package constants provides centralized definitions of constants used throughout the application
package constants

// Server environment variable names
const (
	// EnvAPIPort is the port the API server listens on
	EnvAPIPort = "API_PORT"

	// EnvLogLevel sets the logrus level (trace, debug, info, warn, error)
	EnvLogLevel = "LOG_LEVEL"

	// EnvMaxStudentsPerCourse caps how many students a single course may enroll
	EnvMaxStudentsPerCourse = "MAX_STUDENTS_PER_COURSE"
)

// Database environment variable names
const (
	// EnvDBDriver selects the database driver, either "postgres" or "sqlite"
	EnvDBDriver = "DB_DRIVER"
	// EnvDBHost is the postgres host
	EnvDBHost = "DB_HOST"
	// EnvDBPort is the postgres port
	EnvDBPort = "DB_PORT"
	// EnvDBUser is the postgres user
	EnvDBUser = "DB_USER"
	// EnvDBPassword is the postgres password
	EnvDBPassword = "DB_PASSWORD"
	// EnvDBName is the postgres database name
	EnvDBName = "DB_NAME"
	// EnvDBSSLMode is the postgres sslmode value
	EnvDBSSLMode = "DB_SSL_MODE"
	// EnvDBSQLitePath is the sqlite database file used when DB_DRIVER=sqlite
	EnvDBSQLitePath = "DB_SQLITE_PATH"
)

// CLI environment variable names
const (
	// EnvServerAddress overrides the API address the CLI talks to
	EnvServerAddress = "COURSES_SERVER_ADDRESS"
)

// DefaultMaxStudentsPerCourse is used when MAX_STUDENTS_PER_COURSE is unset
const DefaultMaxStudentsPerCourse = 20
