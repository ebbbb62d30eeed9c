package btcaddr

import (
	"context"
	"fmt"
	"math/big"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/rafaelescrich/go-btcaddr/address"
	"github.com/rafaelescrich/go-btcaddr/group"
	"github.com/rafaelescrich/go-btcaddr/pubkey"
)

var log = logging.Logger("btcaddr")

// Stage names one step of the derivation pipeline.
type Stage string

// Pipeline stages, in order.
const (
	StageScalarMultiply Stage = "scalar-multiply"
	StageCompress       Stage = "compress"
	StageEncode         Stage = "encode"
)

// StageError reports the pipeline stage that failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Derivation is the output of a successful pipeline run.
type Derivation struct {
	PrivateKey *PrivateKey
	PublicKey  *PublicKey
	Compressed []byte
	Address    string
	Network    address.Network
}

// Deriver runs private scalar → public key → address for one network.
// A Deriver is safe for concurrent use.
type Deriver struct {
	network address.Network
	encoder *address.Encoder
	workers int
}

// Option configures a Deriver.
type Option func(*deriverOptions)

type deriverOptions struct {
	cacheSize int
	workers   int
}

// WithCacheSize sets how many addresses are kept in the encoder cache.
func WithCacheSize(n int) Option {
	return func(o *deriverOptions) { o.cacheSize = n }
}

// WithWorkers bounds the parallelism of DeriveBatch.
func WithWorkers(n int) Option {
	return func(o *deriverOptions) { o.workers = n }
}

// NewDeriver returns a deriver producing addresses for network.
func NewDeriver(network address.Network, opts ...Option) (*Deriver, error) {
	o := deriverOptions{cacheSize: address.DefaultCacheSize, workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = 1
	}
	enc, err := address.NewEncoder(network.Version, o.cacheSize)
	if err != nil {
		return nil, err
	}
	return &Deriver{network: network, encoder: enc, workers: o.workers}, nil
}

// Network returns the network addresses are derived for.
func (d *Deriver) Network() address.Network {
	return d.network
}

// Derive runs the pipeline for scalar k. On failure it returns a
// *StageError and no partial result.
func (d *Deriver) Derive(k *big.Int) (*Derivation, error) {
	priv, err := NewPrivateKey(k)
	if err != nil {
		return nil, &StageError{Stage: StageScalarMultiply, Err: err}
	}
	return d.DeriveKey(priv)
}

// DeriveKey runs the pipeline for an already validated private key.
func (d *Deriver) DeriveKey(priv *PrivateKey) (*Derivation, error) {
	if priv == nil {
		return nil, &StageError{Stage: StageScalarMultiply, Err: errors.WithMessage(ErrInvalidPrivateKey, "key is absent")}
	}

	pt, err := group.S256().ScalarBaseMult(priv.d)
	if err != nil {
		return nil, &StageError{Stage: StageScalarMultiply, Err: err}
	}
	log.Debugw("public key derived", "x", pt.X())

	compressed, err := pubkey.Compress(pt)
	if err != nil {
		return nil, &StageError{Stage: StageCompress, Err: err}
	}
	pub := &PublicKey{point: pt, compressed: compressed}

	addr, err := d.encoder.PubKeyToAddr(compressed)
	if err != nil {
		return nil, &StageError{Stage: StageEncode, Err: err}
	}
	log.Debugw("address encoded", "network", d.network.Name, "address", addr)

	return &Derivation{
		PrivateKey: priv,
		PublicKey:  pub,
		Compressed: pub.Bytes(),
		Address:    addr,
		Network:    d.network,
	}, nil
}

// DeriveBatch derives every scalar in keys using up to the configured
// number of workers. Results are in input order. The first failure
// cancels the remaining work and is returned with its index.
func (d *Deriver) DeriveBatch(ctx context.Context, keys []*big.Int) ([]*Derivation, error) {
	out := make([]*Derivation, len(keys))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(d.workers)

	for i, k := range keys {
		i, k := i, k
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := d.Derive(k)
			if err != nil {
				return errors.WithMessagef(err, "key %d", i)
			}
			out[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Warnw("batch derivation failed", "keys", len(keys), "err", err)
		return nil, err
	}
	log.Infow("batch derived", "keys", len(keys), "workers", d.workers, "cached", d.encoder.Len())
	return out, nil
}
