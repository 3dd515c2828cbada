package db

import (
	"strings"

	"gorm.io/gorm/logger"

	"github.com/celestiaorg/courses/config"
	"github.com/celestiaorg/courses/internal/constants"
)

// OptionsFromEnv reads the connection options from the DB_* variables.
// Unset values are filled with the package defaults when the database is opened.
func OptionsFromEnv() Options {
	return Options{
		Driver:     strings.ToLower(config.GetEnv(constants.EnvDBDriver, DefaultDriver)),
		Host:       config.GetEnv(constants.EnvDBHost, DefaultHost),
		User:       config.GetEnv(constants.EnvDBUser, DefaultUser),
		Password:   config.GetEnv(constants.EnvDBPassword, DefaultPassword),
		DBName:     config.GetEnv(constants.EnvDBName, DefaultDBName),
		Port:       config.GetEnvInt(constants.EnvDBPort, DefaultPort),
		SSLMode:    config.GetEnv(constants.EnvDBSSLMode, DefaultSSLMode),
		SQLitePath: config.GetEnv(constants.EnvDBSQLitePath, DefaultSQLitePath),
		LogLevel:   gormLogLevel(config.GetEnv(constants.EnvLogLevel, "")),
	}
}

// gormLogLevel maps the service log level onto GORM's coarser levels
func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "trace", "debug":
		return logger.Info
	case "error", "fatal", "panic":
		return logger.Error
	default:
		return logger.Warn
	}
}
