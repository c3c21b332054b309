package env

import (
	zap "go.uber.org/zap"
)

// MakeLogger builds a production logger writing to stderr, leaving stdout
// for command output.
func MakeLogger(level, encoding string) (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()

	if err := logConfig.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	logConfig.Encoding = encoding
	logConfig.OutputPaths = []string{"stderr"}

	return logConfig.Build()
}
