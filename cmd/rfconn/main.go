package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/rfconn/internal/cli"
	"github.com/vvka-141/rfconn/pkg/rfconn"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(rfconn.ExitPanic)
		}
	}()

	if os.Getenv("RFCONN_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(rfconn.ExitCodeForError(err))
	}
}
