package core

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// storageKeyPrefix namespaces every key the app writes so a store shared
// with unrelated data cannot collide with ours.
const storageKeyPrefix = "bou_tracker_v1_"

var ErrKeyNotFound = errors.New("key not found")

type (
	// KVStore is a narrow durable key/value contract implemented by the
	// interchangeable backends in storage/kv.
	KVStore interface {
		// Get returns the value stored under key, or ErrKeyNotFound.
		Get(key string) ([]byte, error)
		Set(key string, value []byte) error
		Close() error
	}
)

// StorageKey returns `key` namespaced with the application prefix.
func StorageKey(key string) string {
	return storageKeyPrefix + key
}

// LoadJSON reads and decodes the value stored under the namespaced `key`.
// Any failure (missing key, store error, malformed data) is logged and the
// caller-provided default is returned instead; it never fails.
func LoadJSON[T any](kv KVStore, log Logger, key string, def T) T {
	raw, err := kv.Get(StorageKey(key))
	if err != nil {
		if errors.Cause(err) != ErrKeyNotFound {
			log.Warn("loading from storage", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return def
	}
	var val T
	if err := json.Unmarshal(raw, &val); err != nil {
		log.Warn("decoding stored value", map[string]interface{}{"key": key, "error": err.Error()})
		return def
	}
	return val
}

// SaveJSON encodes `val` and writes it under the namespaced `key`. Failures
// are logged and swallowed; callers must not assume the write succeeded.
func SaveJSON(kv KVStore, log Logger, key string, val interface{}) {
	raw, err := json.Marshal(val)
	if err != nil {
		log.Error("encoding value for storage", map[string]interface{}{"key": key, "error": err.Error()})
		return
	}
	if err := kv.Set(StorageKey(key), raw); err != nil {
		log.Error("saving to storage", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
