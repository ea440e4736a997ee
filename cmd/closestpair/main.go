package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/closestpair/internal/driver"
)

func main() {
	if err := driver.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
