package main

import (
	"os"

	"timetrader/cmd/timetrader/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
