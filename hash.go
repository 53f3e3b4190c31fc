package aoc

import (
	"reflect"
	"sync"

	"tailscale.com/util/deephash"
)

var (
	hashersMu sync.Mutex
	hashers   map[reflect.Type]any // map[reflect.Type]func(*T) deephash.Sum
)

// Hash returns a hash of the contents of v, following pointers, slices and
// maps. Equal values hash the same within a process.
func Hash[T any](v T) deephash.Sum {
	rt := reflect.TypeOf(&v)
	hashersMu.Lock()
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[T]()
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*T) deephash.Sum)(&v)
}
