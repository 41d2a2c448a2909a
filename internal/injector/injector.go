//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/ctring/delta/internal/core/tableconfig"
)

func ProvideRegistry() *tableconfig.Registry {
	wire.Build(tableconfig.Default)
	return tableconfig.Default()
}
