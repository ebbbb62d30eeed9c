// Package commands implements the btcaddr command line.
package commands

import (
	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rafaelescrich/go-btcaddr"
	"github.com/rafaelescrich/go-btcaddr/address"
	"github.com/rafaelescrich/go-btcaddr/config"
)

var log = logging.Logger("cmd")

// settings is filled in by the root command before any subcommand runs.
var settings struct {
	cfg     *config.Config
	network address.Network
}

// RootCmd returns the btcaddr root command with all subcommands attached.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "btcaddr",
		Short:             "Derive and validate secp256k1 Base58Check addresses",
		SilenceUsage:      true,
		PersistentPreRunE: loadSettings,
	}
	addRootFlag(cmd)
	cmd.AddCommand(
		DeriveCmd(),
		ValidateCmd(),
		GenerateCmd(),
		PubKeyCmd(),
	)
	return cmd
}

func addRootFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "", "path to a TOML config file")
	cmd.PersistentFlags().StringP("network", "n", "", "address network: mainnet or testnet")
	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
}

func loadSettings(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if network, _ := cmd.Flags().GetString("network"); network != "" {
		cfg.Network = network
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	for _, name := range []string{"btcaddr", "cmd"} {
		if err := logging.SetLogLevel(name, cfg.Log.Level); err != nil {
			return errors.Wrapf(err, "log level %q", cfg.Log.Level)
		}
	}

	network, err := cfg.NetworkParams()
	if err != nil {
		return err
	}
	settings.cfg = cfg
	settings.network = network
	log.Debugw("settings loaded", "network", network.Name, "workers", cfg.Workers)
	return nil
}

func newDeriver() (*btcaddr.Deriver, error) {
	return btcaddr.NewDeriver(settings.network,
		btcaddr.WithCacheSize(settings.cfg.CacheSize),
		btcaddr.WithWorkers(settings.cfg.Workers),
	)
}
