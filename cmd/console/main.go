// console is a synchronous line-based debugging driver for the engine.
package main

import (
	"context"

	"github.com/corwinpratt/chessforge/pkg/engine"
	"github.com/corwinpratt/chessforge/pkg/engine/console"
	"github.com/seekerror/logw"
)

func main() {
	ctx := context.Background()

	e, err := engine.New(ctx, "chessforge", "corwinpratt")
	if err != nil {
		logw.Exitf(ctx, "Failed to initialize engine: %v", err)
	}

	in := engine.ReadStdinLines(ctx)
	_, out := console.NewDriver(ctx, e, in)
	engine.WriteStdoutLines(ctx, out)
}
