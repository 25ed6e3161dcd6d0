package logger

import "go.uber.org/zap"

// Init configura o logger global (zap.L()).
func Init(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)

	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(l)
	return l
}
