// Package main demonstrates usage of the scg-trap package.
package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/next-trace/scg-trap/trap"
)

func main() {
	// Plain trap: no logging, no metrics
	ok, err := trap.Run(func() {
		trap.Raise("QuotaExceeded", "too many uploads", map[string]any{"limit": 10})
	})
	fmt.Println(ok, err, err.UserInfo())

	if name, found := trap.ExceptionName(err); found && name == "QuotaExceeded" {
		fmt.Println("back off and retry later")
	}

	// Guard with a development logger and stack capture
	logger, lerr := zap.NewDevelopment()
	if lerr != nil {
		panic(lerr)
	}
	defer func() { _ = logger.Sync() }()

	g := trap.NewGuard(
		trap.WithGuardScope("example"),
		trap.WithStackTrace(),
		trap.WithLogger(logger),
	)

	var cfg map[string]string
	derr := g.Do(func() { cfg["mode"] = "fast" })
	fmt.Println(errors.Is(derr, trap.ErrTrapped), derr)
}
