package main

import (
	"os"

	"bumpr/cmd/cli/app/cmd"
)

func main() {
	if code := cmd.Execute(); code != 0 {
		os.Exit(code)
	}
}
