package main

import (
	"os"

	"github.com/alvesdmateus/deploywatch/internal/cli/commands"
)

func main() {
	os.Exit(commands.Execute())
}
