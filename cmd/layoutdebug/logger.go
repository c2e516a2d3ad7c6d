package main

import (
	"github.com/spf13/viper"

	"github.com/flowkit/retained/internal/obslog"
)

// loggerFromConfig builds the logger the engine uses for debug-mode
// warnings, backed by a rotating file when --log-file (or
// LAYOUTDEBUG_LOG_FILE) is set, otherwise a no-op.
func loggerFromConfig() *obslog.Logger {
	path := viper.GetString("log-file")
	if path == "" {
		return obslog.Noop()
	}
	return obslog.NewFile(path, 0)
}
