package address

import (
	"strings"

	"github.com/rafaelescrich/go-btcaddr/ecerr"
)

// Network names an address version byte.
type Network struct {
	Name    string
	Version byte
}

var (
	// Mainnet addresses start with '1'.
	Mainnet = Network{Name: "mainnet", Version: 0x00}
	// Testnet addresses start with 'm' or 'n'.
	Testnet = Network{Name: "testnet", Version: 0x6f}
)

var networks = []Network{Mainnet, Testnet}

// NetworkByName looks up a network by name, ignoring case.
func NetworkByName(name string) (Network, error) {
	for _, n := range networks {
		if strings.EqualFold(n.Name, name) {
			return n, nil
		}
	}
	return Network{}, ecerr.InvalidInput("unknown network %q", name)
}

// NetworkByVersion looks up a network by version byte.
func NetworkByVersion(version byte) (Network, bool) {
	for _, n := range networks {
		if n.Version == version {
			return n, true
		}
	}
	return Network{}, false
}
