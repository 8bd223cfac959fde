package source

import (
	"go.uber.org/fx"
)

// Module provides the fx dependency injection options for the source package
var Module = fx.Options(
	fx.Provide(NewLocalSource),
)
