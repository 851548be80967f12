package main

import (
	"fmt"
	"os"

	"github.com/deanlue0801/alliance-war-planner/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
