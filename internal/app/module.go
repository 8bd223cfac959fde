package app

import (
	"go.uber.org/fx"

	"trailview/internal/app/cli"
	"trailview/internal/app/client"
	"trailview/internal/app/report"
	"trailview/internal/app/source"
	"trailview/internal/app/ui"
)

// Module aggregates the application's fx modules. The logger is supplied
// by the host, which decides where log output goes while the viewer owns
// the terminal.
var Module = fx.Options(
	cli.Module,
	client.Module,
	source.Module,
	ui.Module,
	report.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
