package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/app/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, cli.Options{Out: os.Stdout, Err: os.Stderr}, os.Args[1:])
	stop()
	os.Exit(code)
}
