package main

import (
	"os"

	"github.com/Silverls96/gitdiff/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
