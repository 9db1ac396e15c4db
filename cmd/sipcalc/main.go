package main

import (
	"os"

	"github.com/rpgo/sip-calculator/cmd/sipcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
