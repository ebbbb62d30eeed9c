package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaelescrich/go-btcaddr"
)

// PubKeyCmd prints the public key of a private key.
func PubKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the SEC encoded public key of a hex private key",
		RunE:  pubKey,
	}
	addPubKeyFlag(cmd)
	return cmd
}

func addPubKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "private key in hex")
	cmd.MarkFlagRequired("key")
	cmd.Flags().BoolP("uncompressed", "u", false, "print the 65-byte uncompressed form")
}

func pubKey(cmd *cobra.Command, args []string) error {
	keyHex, _ := cmd.Flags().GetString("key")
	uncompressed, _ := cmd.Flags().GetBool("uncompressed")

	priv, err := btcaddr.PrivateKeyFromHex(keyHex)
	if err != nil {
		return err
	}
	pub, err := priv.PublicKey()
	if err != nil {
		return err
	}

	b := pub.Bytes()
	if uncompressed {
		b = pub.Uncompressed()
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
	return nil
}
