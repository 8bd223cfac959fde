package client

import (
	"go.uber.org/fx"

	"trailview/internal/app/logs"
)

// Module provides the fx dependency injection options for the client package
var Module = fx.Options(
	fx.Provide(NewClient),
	fx.Provide(func(c Client) logs.Source { return c }),
)
