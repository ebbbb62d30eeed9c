package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaelescrich/go-btcaddr"
)

// DeriveCmd derives the address of a private key.
func DeriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive the address of a hex private key",
		RunE:  derive,
	}
	addDeriveFlag(cmd)
	return cmd
}

func addDeriveFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "private key in hex")
	cmd.MarkFlagRequired("key")
	cmd.Flags().BoolP("verbose", "v", false, "also print the public key")
}

func derive(cmd *cobra.Command, args []string) error {
	keyHex, _ := cmd.Flags().GetString("key")
	verbose, _ := cmd.Flags().GetBool("verbose")

	priv, err := btcaddr.PrivateKeyFromHex(keyHex)
	if err != nil {
		return err
	}
	d, err := newDeriver()
	if err != nil {
		return err
	}
	res, err := d.DeriveKey(priv)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if verbose {
		pt := res.PublicKey.Point()
		fmt.Fprintln(out, "network:     ", res.Network.Name)
		fmt.Fprintln(out, "public x:    ", pt.X().String())
		fmt.Fprintln(out, "public y:    ", pt.Y().String())
		fmt.Fprintln(out, "compressed:  ", hex.EncodeToString(res.Compressed))
		fmt.Fprintln(out, "uncompressed:", hex.EncodeToString(res.PublicKey.Uncompressed()))
		fmt.Fprintln(out, "address:     ", res.Address)
		return nil
	}
	fmt.Fprintln(out, res.Address)
	return nil
}
