package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/netquiz/internal/config"
)

func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}

// NewFile builds the same logger as New but writes to path instead of stderr.
// Used by the terminal front-end, whose screen owns stdout and stderr.
func NewFile(cfg *config.Config, path string) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	}
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}

	return zc.Build()
}
