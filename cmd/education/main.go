package main

import (
	"context"

	"educationgdp/cmd/education/commands"
	"educationgdp/lib/serviceutil"
)

func main() {
	ctx, cancel := serviceutil.SignalContext(context.Background())
	defer cancel()
	commands.ExecuteContext(ctx)
}
