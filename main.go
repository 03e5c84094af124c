package main

import (
	"os"

	"github.com/dendrascience/extract/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
