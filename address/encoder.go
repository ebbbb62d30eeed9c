package address

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// DefaultCacheSize is used when NewEncoder is given a non-positive size.
const DefaultCacheSize = 10240

// Encoder derives addresses for one version byte and remembers recent
// results. It is safe for concurrent use.
type Encoder struct {
	version byte
	cache   *lru.Cache
}

// NewEncoder returns an encoder for version with room for size cached
// addresses.
func NewEncoder(version byte, size int) (*Encoder, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "address cache")
	}
	return &Encoder{version: version, cache: cache}, nil
}

// Version returns the version byte this encoder writes.
func (e *Encoder) Version() byte {
	return e.version
}

// PubKeyToAddr returns the address of a compressed public key.
func (e *Encoder) PubKeyToAddr(pub []byte) (string, error) {
	key := string(pub)
	if value, ok := e.cache.Get(key); ok {
		return value.(string), nil
	}
	addr, err := FromPubKey(pub, e.version)
	if err != nil {
		return "", err
	}
	e.cache.Add(key, addr)
	return addr, nil
}

// Len returns the number of cached addresses.
func (e *Encoder) Len() int {
	return e.cache.Len()
}
