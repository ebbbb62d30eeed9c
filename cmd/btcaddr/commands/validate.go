package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaelescrich/go-btcaddr/address"
)

// ValidateCmd checks an address against the configured network.
func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <address>",
		Short: "Check the checksum and version of an address",
		Args:  cobra.ExactArgs(1),
		RunE:  validate,
	}
}

func validate(cmd *cobra.Command, args []string) error {
	if err := address.Validate(args[0], settings.network.Version); err != nil {
		return err
	}
	a, err := address.Decode(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "valid %s address, hash160 %s\n", settings.network.Name, hex.EncodeToString(a.Hash160[:]))
	return nil
}
