// Command btcaddr derives and validates Base58Check addresses for
// secp256k1 keys.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rafaelescrich/go-btcaddr/cmd/btcaddr/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.RootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
