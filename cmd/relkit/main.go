package main

import (
	"os"

	"github.com/ariel-frischer/relkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
