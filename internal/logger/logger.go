package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger. Development mode gets the human-readable
// encoder, everything else logs structured JSON.
func New(env string) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)

	if env == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}

	if err != nil {
		panic(err)
	}

	return log
}
