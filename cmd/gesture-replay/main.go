// Command gesture-replay feeds a scripted touch session through the gesture
// recognizer and prints every command it issues.
//
// Usage:
//
//	gesture-replay [--config gesture.yaml] [--metrics] [-v] script.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
