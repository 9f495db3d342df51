package main

import (
	"context"
	"fmt"
	"os"

	"bookshelf/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		if !cli.IsSilent(err) {
			fmt.Fprintf(os.Stderr, "bookshelf: %v\n", err)
		}
		os.Exit(1)
	}
}
