package main

import (
	"os"

	"github.com/Elsie19/vapor/cmd/vapor/commands"
)

func main() {
	os.Exit(commands.Execute())
}
