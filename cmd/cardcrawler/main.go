// ./cmd/cardcrawler/main.go

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Elwinc2799/credit-card-crawler/cmd/cardcrawler/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.ExecuteContext(ctx)
}
