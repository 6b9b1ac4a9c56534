package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Key types reported to observability hooks.
const (
	KeyTypeArtifact = "artifact"
	KeyTypeSummary  = "summary"
)

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey identifies a rendered artifact of the board whose
	// prepared document hashes to docHash.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string

	// SummaryKey identifies the text summary of a board.
	SummaryKey(docHash string) string
}

// DefaultKeyer builds unprefixed keys of the form "<type>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey(KeyTypeArtifact, docHash, opts)
}

func (DefaultKeyer) SummaryKey(docHash string) string {
	return hashKey(KeyTypeSummary, docHash)
}

// ScopedKeyer prefixes every key of an inner keyer, so several boards or
// users can share one backend without colliding.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner (the default keyer when nil) with prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(docHash, opts)
}

func (k *ScopedKeyer) SummaryKey(docHash string) string {
	return k.prefix + k.inner.SummaryKey(docHash)
}

// hashKey generates a cache key of the form prefix:sha256(parts...).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes the 64 character hex SHA-256 of data.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashJSON hashes the JSON encoding of v.
func HashJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return Hash(data), nil
}
