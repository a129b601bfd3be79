package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes follow the grep convention.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := Execute(); err != nil {
		if errors.Is(err, errNoMatch) {
			return exitNoMatch
		}
		fmt.Fprintf(os.Stderr, "strem: %v\n", err)
		return exitError
	}
	return exitMatch
}
