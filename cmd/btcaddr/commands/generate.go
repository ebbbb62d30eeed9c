package commands

import (
	"context"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rafaelescrich/go-btcaddr"
)

// GenerateCmd creates random keys and prints them with their addresses.
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random private keys and their addresses",
		RunE:  generate,
	}
	addGenerateFlag(cmd)
	return cmd
}

func addGenerateFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("count", "N", 1, "number of keys to generate")
}

func generate(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return errors.Errorf("count must be at least 1, got %d", count)
	}

	keys := make([]*big.Int, count)
	for i := range keys {
		priv, err := btcaddr.GeneratePrivateKey()
		if err != nil {
			return err
		}
		keys[i] = priv.D()
	}

	d, err := newDeriver()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := d.DeriveBatch(ctx, keys)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%x %s\n", r.PrivateKey.Bytes(), r.Address)
	}
	return nil
}
