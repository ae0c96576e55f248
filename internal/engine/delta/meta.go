package delta

import (
	"fmt"
	"maps"

	"github.com/google/uuid"
)

// MetaToken is an identity-based metadata key. Two tokens are never
// equal, even when created with the same name, so a subsystem holding
// a token is the only one able to read or write its entry.
type MetaToken struct {
	id   string
	name string
}

// NewMetaToken creates a metadata key token. The name is for
// debugging only and does not affect identity.
func NewMetaToken(name string) *MetaToken {
	return &MetaToken{id: uuid.NewString(), name: name}
}

// String returns the token's debug name.
func (t *MetaToken) String() string {
	return t.name
}

// metaKey normalizes a metadata key to its string form. Keys must be
// strings or identity tokens; anything else is a caller contract
// violation and fails fast.
func metaKey(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case *MetaToken:
		return k.id
	default:
		panic(fmt.Sprintf("delta: meta key must be a string or *MetaToken, got %T", key))
	}
}

// SetMeta stores a metadata entry under the given key. The key must be
// a string or a *MetaToken.
func (d *Delta) SetMeta(key, value any) *Delta {
	if d.meta == nil {
		d.meta = map[string]any{}
	}
	d.meta[metaKey(key)] = value
	return d
}

// GetMeta returns the metadata entry stored under the given key, or
// nil.
func (d *Delta) GetMeta(key any) any {
	return d.meta[metaKey(key)]
}

// Meta returns a copy of the full metadata map, with token keys in
// their internal string form.
func (d *Delta) Meta() map[string]any {
	return maps.Clone(d.meta)
}

// IsGeneric reports whether no metadata was attached to this delta.
// Batching logic uses this to decide whether two deltas can be safely
// coalesced: a delta carrying metadata may be handled specially by
// whoever attached it.
func (d *Delta) IsGeneric() bool {
	return len(d.meta) == 0
}
