// Command money evaluates money operations on canonical records.
//
//	money add '{"amount":"15","currency":"TRY"}' 13
//	{"amount":"28","currency":"TRY"}
package main

import (
	"fmt"
	"os"

	"github.com/purposeinplay/go-money/logger"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	log, err := logger.New(logger.Config{
		Service:     "money",
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	code := run(os.Args[1:], cfg, log, os.Stdout, os.Stderr)

	_ = log.Sync()

	os.Exit(code)
}
