package main

import (
	"fmt"
	"os"

	"github.com/celestiaorg/courses/cmd/cli/commands"
	"github.com/celestiaorg/courses/config"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := commands.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
