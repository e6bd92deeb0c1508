package main

import (
	"os"

	"github.com/berke-bakar/smart-byte-quiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
