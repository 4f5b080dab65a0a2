package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"git-upload/internal"
)

//go:embed git-upload.md
var readmeContent string

// GitSHA is set at build time
var GitSHA = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	defer a.close()

	cmd := a.rootCmd()
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		// Step failures were already reported with the captured command output.
		if !errors.Is(err, internal.ErrToolNotFound) && !errors.Is(err, internal.ErrCommandFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	return 0
}
