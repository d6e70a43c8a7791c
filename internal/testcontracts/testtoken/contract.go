/*
Package testtoken implements a NEP-17 token used in RewardPool tests.

Anyone can mint it. The token can be switched to refuse all transfers, and
it can call a contract back once during the next transfer to check how the
recipient handles re-entrance.
*/
package testtoken

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Hook is a call performed by the token during the next transfer.
type Hook struct {
	Target interop.Hash160
	Method string
	Args   []any
}

const (
	decimals = 18

	balancePrefix = 'b'
	supplyKey     = "s"
	failingKey    = "f"
	hookKey       = "h"
	hookResultKey = "r"
)

func Symbol() string {
	return "TEST"
}

func Decimals() int {
	return decimals
}

func TotalSupply() int {
	return getInt(storage.GetReadOnlyContext(), supplyKey)
}

func BalanceOf(account interop.Hash160) int {
	return getInt(storage.GetReadOnlyContext(), append([]byte{balancePrefix}, account...))
}

// Mint issues new tokens to the account. It doesn't check any witness.
func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()
	if amount <= 0 {
		panic("invalid amount")
	}

	key := append([]byte{balancePrefix}, to...)
	storage.Put(ctx, key, getInt(ctx, key)+amount)
	storage.Put(ctx, supplyKey, getInt(ctx, supplyKey)+amount)

	var from interop.Hash160
	runtime.Notify("Transfer", from, to, amount)
}

func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()

	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic("invalid account")
	}
	if amount < 0 {
		panic("negative amount")
	}
	if !runtime.CheckWitness(from) {
		return false
	}
	if storage.Get(ctx, failingKey) != nil {
		return false
	}

	callHook(ctx)

	fromKey := append([]byte{balancePrefix}, from...)
	fromBalance := getInt(ctx, fromKey)
	if fromBalance < amount {
		return false
	}

	toKey := append([]byte{balancePrefix}, to...)
	storage.Put(ctx, fromKey, fromBalance-amount)
	storage.Put(ctx, toKey, getInt(ctx, toKey)+amount)

	runtime.Notify("Transfer", from, to, amount)

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}

	return true
}

// SetFailing makes all subsequent transfers return false.
func SetFailing(failing bool) {
	ctx := storage.GetContext()
	if failing {
		storage.Put(ctx, failingKey, []byte{1})
	} else {
		storage.Delete(ctx, failingKey)
	}
}

// SetHook registers a call to the target contract performed during the next
// transfer.
func SetHook(target interop.Hash160, method string, args []any) {
	ctx := storage.GetContext()
	storage.Put(ctx, hookKey, std.Serialize(Hook{
		Target: target,
		Method: method,
		Args:   args,
	}))
	storage.Delete(ctx, hookResultKey)
}

// HookResult returns "accepted" if the last hook call succeeded or the
// exception message otherwise.
func HookResult() string {
	data := storage.Get(storage.GetReadOnlyContext(), hookResultKey)
	if data == nil {
		return ""
	}
	return data.(string)
}

func callHook(ctx storage.Context) {
	data := storage.Get(ctx, hookKey)
	if data == nil {
		return
	}
	storage.Delete(ctx, hookKey)

	tryCall(std.Deserialize(data.([]byte)).(Hook))
}

// tryCall records the result of the hook call. Deferred function gets no
// locals of the enclosing one, so it takes storage context by itself.
func tryCall(h Hook) {
	defer func() {
		if r := recover(); r != nil {
			storage.Put(storage.GetContext(), hookResultKey, r.(string))
		}
	}()

	contract.Call(h.Target, h.Method, contract.All, h.Args...)

	storage.Put(storage.GetContext(), hookResultKey, "accepted")
}

func getInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data == nil {
		return 0
	}
	return data.(int)
}
