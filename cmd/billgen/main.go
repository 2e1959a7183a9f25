package main

import (
	"os"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
