package sign

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyPool is returned when a pool file contains no usable keys.
var ErrEmptyPool = errors.New("signing key pool is empty")

// Key is one pre-provisioned signing record. Its fields are emitted verbatim;
// the provisioning side already computed the sign value for this exact
// nonce/timestamp/devicetoken triple.
type Key struct {
	Nonce       string `yaml:"nonce" json:"nonce"`
	Timestamp   string `yaml:"timestamp" json:"timestamp"`
	DeviceToken string `yaml:"devicetoken" json:"devicetoken"`
	Sign        string `yaml:"sign" json:"sign"`
}

// Encode renders the key as an SFSecurity header value, fields in the same
// fixed order Security uses.
func (k Key) Encode() string {
	return fmt.Sprintf("nonce=%s&timestamp=%s&devicetoken=%s&sign=%s",
		k.Nonce, k.Timestamp, k.DeviceToken, k.Sign)
}

// Pool holds pre-provisioned signing keys. Every Pick draws uniformly and
// independently; the choice is per request, never cached.
type Pool struct {
	keys []Key
}

// NewPool returns a pool over keys.
func NewPool(keys []Key) *Pool {
	return &Pool{keys: keys}
}

// Len returns the number of keys in the pool.
func (p *Pool) Len() int { return len(p.keys) }

// Pick returns one key chosen uniformly at random.
func (p *Pool) Pick() Key {
	return p.keys[rand.IntN(len(p.keys))]
}

// LoadPool reads a YAML list of keys from path.
func LoadPool(path string) (*Pool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var keys []Key
	if err := yaml.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("parse key pool %s: %w", path, err)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPool, path)
	}
	return NewPool(keys), nil
}
