// Command landmarks plans new roads between landmarks and walks landmark
// road networks. Results are written to stdout in the plain-text formats of
// package cityio; logs go to stderr.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := newRootCmd(a).Execute(); err != nil {
		a.log.WithError(err).Error("landmarks failed")
		os.Exit(1)
	}
}
