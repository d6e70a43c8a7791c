package rewardpool

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/rewardpool-contract/common"
	"github.com/nspcc-dev/rewardpool-contract/contracts/rewardpool/rewardpoolconst"
)

const (
	ownerKey         = "O"
	depositTokenKey  = "T"
	rewardsTokenKey  = "R"
	limitsKey        = "L"
	totalDepositsKey = "D"
	totalRewardsKey  = "F"
	totalClaimedKey  = "C"
	whitelistLenKey  = "W"
	accountCountKey  = "N"

	depositPrefix   = 'd'
	claimedPrefix   = 'c'
	whitelistPrefix = 'w'
	pausePrefix     = "p"
	accountPrefix   = "i"

	zeroHash = "\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner        interop.Hash160
		depositToken interop.Hash160
		rewardsToken []byte
		maxTotal     int
		userMax      int
		userMin      int
		whitelist    []interop.Hash160
	})

	checkAccount(args.owner)
	checkAccount(args.depositToken)

	storage.Put(ctx, ownerKey, args.owner)
	storage.Put(ctx, depositTokenKey, args.depositToken)

	if len(args.rewardsToken) != 0 {
		checkAccount(interop.Hash160(args.rewardsToken))
		storage.Put(ctx, rewardsTokenKey, args.rewardsToken)
	}

	setLimits(ctx, args.maxTotal, args.userMax, args.userMin)

	for i := range args.whitelist {
		checkAccount(args.whitelist[i])
		addToWhitelist(ctx, args.whitelist[i])
	}

	// nothing to claim until the first funding round
	storage.Put(ctx, pausePrefix+rewardpoolconst.ClaimAction, []byte{1})

	runtime.Log("rewardpool contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the owner.
func Update(nefFile, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	checkOwner(ctx)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("rewardpool contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Owner returns the account allowed to administer the contract.
func Owner() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), ownerKey)
}

// TransferOwnership passes administration rights to another account. It can
// be invoked only by the current owner. Zero account is rejected with
// ErrRenounceForbidden.
//
// It produces OwnershipTransferred notification.
func TransferOwnership(newOwner interop.Hash160) {
	if newOwner.Equals(zeroHash) {
		panic(rewardpoolconst.ErrRenounceForbidden)
	}
	checkAccount(newOwner)

	ctx := storage.GetContext()
	owner := checkOwner(ctx)

	storage.Put(ctx, ownerKey, newOwner)
	runtime.Notify("OwnershipTransferred", owner, newOwner)
}

// RenounceOwnership always panics with ErrRenounceForbidden. Contract without
// an owner would lock deposits and unclaimed rewards forever.
func RenounceOwnership() {
	panic(rewardpoolconst.ErrRenounceForbidden)
}

// DepositToken returns NEP-17 token accepted as deposits.
func DepositToken() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), depositTokenKey)
}

// RewardsToken returns NEP-17 token distributed as rewards. It returns nil
// if the token is not set yet.
func RewardsToken() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), rewardsTokenKey)
}

// OnNEP17Payment is a callback for NEP-17 compatible tokens. Contract accepts
// only deposit and rewards tokens and only as a part of its own Deposit or
// DepositRewards call, any other payment is rejected.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetReadOnlyContext()
	if !common.IsLocked(ctx) {
		panic(rewardpoolconst.ErrUnexpectedPayment)
	}

	caller := runtime.GetCallingScriptHash()
	if caller.Equals(storage.Get(ctx, depositTokenKey)) {
		return
	}

	rewardsToken := storage.Get(ctx, rewardsTokenKey)
	if rewardsToken == nil || !caller.Equals(rewardsToken) {
		panic(rewardpoolconst.ErrUnexpectedPayment)
	}
}

// checkOwner panics if some locked operation is running.
func checkOwner(ctx storage.Context) interop.Hash160 {
	if common.IsLocked(ctx) {
		panic(common.ErrReentrantCall)
	}

	owner := common.GetHash160(ctx, ownerKey)
	common.CheckOwnerWitness(owner)
	return owner
}

func checkAccount(h interop.Hash160) {
	if len(h) != interop.Hash160Len || h.Equals(zeroHash) {
		panic(rewardpoolconst.ErrInvalidAccount)
	}
}
