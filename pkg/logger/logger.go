package logger

import (
	"go.uber.org/zap"
)

// NOOPLogger discards everything. Used as the default in servers and tests.
var NOOPLogger = zap.NewNop().Sugar()

// New builds a development logger for the local environment and a JSON
// production logger everywhere else.
func New(env string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if env == "" || env == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar().With("env", env), nil
}
