package rewardpool

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/rewardpool-contract/common"
	"github.com/nspcc-dev/rewardpool-contract/contracts/rewardpool/rewardpoolconst"
)

// IsWhitelisted checks whether the account may deposit and claim. Every
// account is allowed while the whitelist is empty.
func IsWhitelisted(account interop.Hash160) bool {
	return isWhitelisted(storage.GetReadOnlyContext(), account)
}

// WhitelistLength returns the number of whitelisted accounts. Zero means the
// whitelist is disabled.
func WhitelistLength() int {
	return common.GetInt(storage.GetReadOnlyContext(), whitelistLenKey)
}

// IterateWhitelist returns iterator over whitelisted accounts.
func IterateWhitelist() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{whitelistPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// AddToWhitelist method adds accounts to the whitelist. Already whitelisted
// accounts are skipped. It can be invoked only by the owner.
//
// It produces WhitelistAdded notification for each account.
func AddToWhitelist(accounts []interop.Hash160) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	for i := range accounts {
		checkAccount(accounts[i])
		addToWhitelist(ctx, accounts[i])
	}
}

// RemoveFromWhitelist method removes accounts from the whitelist. Accounts
// that are not whitelisted are skipped. It can be invoked only by the owner.
// Removing the last account disables the whitelist.
//
// It produces WhitelistRemoved notification for each account.
func RemoveFromWhitelist(accounts []interop.Hash160) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	for i := range accounts {
		checkAccount(accounts[i])
		removeFromWhitelist(ctx, accounts[i])
	}
}

func addToWhitelist(ctx storage.Context, account interop.Hash160) {
	key := append([]byte{whitelistPrefix}, account...)
	if storage.Get(ctx, key) == nil {
		storage.Put(ctx, key, []byte{1})
		common.PutInt(ctx, whitelistLenKey, common.GetInt(ctx, whitelistLenKey)+1)
	}

	runtime.Notify("WhitelistAdded", account)
}

func removeFromWhitelist(ctx storage.Context, account interop.Hash160) {
	key := append([]byte{whitelistPrefix}, account...)
	if storage.Get(ctx, key) != nil {
		storage.Delete(ctx, key)
		common.PutInt(ctx, whitelistLenKey, common.GetInt(ctx, whitelistLenKey)-1)
	}

	runtime.Notify("WhitelistRemoved", account)
}

func isWhitelisted(ctx storage.Context, account interop.Hash160) bool {
	if common.GetInt(ctx, whitelistLenKey) == 0 {
		return true
	}
	return storage.Get(ctx, append([]byte{whitelistPrefix}, account...)) != nil
}

func checkWhitelisted(ctx storage.Context, account interop.Hash160) {
	if !isWhitelisted(ctx, account) {
		panic(rewardpoolconst.ErrNotWhitelisted)
	}
}
