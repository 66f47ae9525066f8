package cli

import (
	"context"
	"os"
)

// Execute runs the keygrid CLI with the process arguments and returns an
// error if rendering fails.
//
// Example:
//
//	func main() {
//	    if err := cli.Execute(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	c := New(os.Stderr, LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}
