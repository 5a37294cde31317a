package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/vvka-141/gamedata/internal/cli"
	"github.com/vvka-141/gamedata/pkg/gamedata"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(gamedata.ExitPanic)
		}
	}()

	if os.Getenv("GAMEDATA_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(gamedata.ExitCodeForError(err))
	}
}
