package config

import "go.uber.org/zap"

// setLogger builds the zap logger for the given environment. Anything other
// than production or development gets the example logger, which logs
// everything to stdout without timestamps.
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}
