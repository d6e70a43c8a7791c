package common

import "github.com/nspcc-dev/neo-go/pkg/interop/storage"

// ErrReentrantCall is thrown when a method guarded by Lock is entered while
// another guarded method of the same contract is still running.
const ErrReentrantCall = "reentrant call"

const lockKey = "lock"

// Lock marks the contract as busy until Unlock is called. Lock must be
// called before any state is read, and Unlock must be called explicitly
// before every normal return of the guarded method:
//
//	common.Lock(ctx)
//	...
//	common.Unlock(ctx)
//
// Unlock must not be deferred. A panic reverts the lock together with the
// rest of the state changes.
//
// It panics with ErrReentrantCall if the contract is already busy.
func Lock(ctx storage.Context) {
	if IsLocked(ctx) {
		panic(ErrReentrantCall)
	}
	storage.Put(ctx, lockKey, []byte{1})
}

// Unlock releases the lock taken by Lock.
func Unlock(ctx storage.Context) {
	storage.Delete(ctx, lockKey)
}

// IsLocked checks whether some guarded method is running now.
func IsLocked(ctx storage.Context) bool {
	return storage.Get(ctx, lockKey) != nil
}
