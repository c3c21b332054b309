package httpapi

import (
	"go.uber.org/zap"
)

type Options struct {
	// Host to listen on
	Host string

	// Port to listen on, 0 picks a free port
	Port int

	// Reuseport controls setting SO_REUSEPORT
	Reuseport bool

	// Debug puts gin in debug mode
	Debug bool

	Log *zap.Logger
}
