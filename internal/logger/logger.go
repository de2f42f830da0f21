// Package logger builds the service-wide zap logger.
package logger

import "go.uber.org/zap"

// NewNamed creates a named zap logger configured for the given environment.
// Development uses the console encoder with debug level, everything else
// the production JSON encoder.
func NewNamed(appEnv, name string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if appEnv == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
