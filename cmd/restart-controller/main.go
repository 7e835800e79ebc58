package main

import (
	"os"

	"github.com/grovetools/restart-controller/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
