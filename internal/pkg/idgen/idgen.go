// Package idgen hands out character IDs
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a new unique ID on every call
type Generator interface {
	Generate() string
}

// SequentialGenerator yields prefix_1, prefix_2, ... so tests can predict IDs
type SequentialGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewSequential creates a counter-backed generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.next.Add(1), 10))
}

// UUIDGenerator yields prefix_<uuid v4>
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a random generator
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) Generate() string {
	return withPrefix(g.prefix, uuid.NewString())
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
