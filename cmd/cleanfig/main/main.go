package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/cleanfig/cmd/cleanfig"
)

func main() {
	if err := cleanfig.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
