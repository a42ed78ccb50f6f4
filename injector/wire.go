//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-colony/config"
)

func InitializeColony(cfg config.Config, log *zap.Logger) (*Colony, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
