package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// GetInt returns integer stored by the key or 0 if there is nothing.
func GetInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return 0
}

// GetHash160 returns script hash stored by the key or nil if there is
// nothing. The result is a ByteString stack item, as opposed to the Buffer
// produced by a plain type assertion.
func GetHash160(ctx storage.Context, key any) interop.Hash160 {
	data := storage.Get(ctx, key)
	if data == nil {
		return nil
	}

	return interop.Hash160(data.([]byte))
}

// PutInt stores non-zero integer by the key and removes the key for zero.
func PutInt(ctx storage.Context, key any, value int) {
	if value == 0 {
		storage.Delete(ctx, key)
		return
	}

	storage.Put(ctx, key, value)
}

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}
