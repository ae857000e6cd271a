// Command matrixlib inspects and combines matrices stored as YAML or JSON files.
package main

import (
	"os"

	"github.com/katalvlaran/matrixlib/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCommand()))
}
