package rewardpool

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/rewardpool-contract/common"
	"github.com/nspcc-dev/rewardpool-contract/contracts/rewardpool/rewardpoolconst"
)

// SetLimits method overwrites deposit limits. Zero disables the limit,
// limits are not checked against each other. It can be invoked only by the
// owner.
//
// It produces LimitsSet notification.
func SetLimits(maxTotal, userMax, userMin int) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	setLimits(ctx, maxTotal, userMax, userMin)
	runtime.Notify("LimitsSet", maxTotal, userMax, userMin)
}

// SetRewardsToken method sets NEP-17 token distributed as rewards. Token can
// be changed only until the first reward funding. It can be invoked only by
// the owner.
//
// It produces RewardsTokenSet notification.
func SetRewardsToken(token interop.Hash160) {
	checkAccount(token)

	ctx := storage.GetContext()
	checkOwner(ctx)

	if common.GetInt(ctx, totalRewardsKey) != 0 {
		panic(rewardpoolconst.ErrRewardsAlreadyFunded)
	}

	storage.Put(ctx, rewardsTokenKey, token)
	runtime.Notify("RewardsTokenSet", token)
}

// WithdrawDeposits method transfers amount of deposit token to the owner.
// Account balances are not changed. If pause is true, deposits are paused in
// the same call unless they are paused already. It can be invoked only by
// the owner.
//
// It produces FundsWithdrawn notification.
func WithdrawDeposits(amount int, pause bool) {
	if amount <= 0 {
		panic(rewardpoolconst.ErrInvalidAmount)
	}

	ctx := storage.GetContext()
	owner := checkOwner(ctx)

	common.Lock(ctx)

	token := common.GetHash160(ctx, depositTokenKey)
	common.TransferTo(token, owner, amount)

	if pause && !isPaused(ctx, rewardpoolconst.DepositAction) {
		setPaused(ctx, rewardpoolconst.DepositAction, true)
	}

	runtime.Notify("FundsWithdrawn", token, owner, amount)

	common.Unlock(ctx)
}

// DepositRewards method transfers amount of rewards token from the owner to
// the contract and increases reward funding. Rewards token must be set and
// there must be some deposits. It can be invoked only by the owner.
//
// It produces RewardsDeposited notification.
func DepositRewards(amount int) {
	if amount <= 0 {
		panic(rewardpoolconst.ErrInvalidAmount)
	}

	ctx := storage.GetContext()
	owner := checkOwner(ctx)

	common.Lock(ctx)

	token := storage.Get(ctx, rewardsTokenKey)
	if token == nil {
		panic(rewardpoolconst.ErrRewardsTokenNotSet)
	}
	if common.GetInt(ctx, totalDepositsKey) == 0 {
		panic(rewardpoolconst.ErrNoDeposits)
	}

	common.TransferFrom(token.(interop.Hash160), owner, amount)

	total := common.GetInt(ctx, totalRewardsKey) + amount
	common.PutInt(ctx, totalRewardsKey, total)

	runtime.Notify("RewardsDeposited", amount, total)

	common.Unlock(ctx)
}

// WithdrawRewards method transfers amount of unclaimed rewards to the owner
// and decreases reward funding. It can be invoked only by the owner.
//
// It produces FundsWithdrawn notification.
func WithdrawRewards(amount int) {
	if amount <= 0 {
		panic(rewardpoolconst.ErrInvalidAmount)
	}

	ctx := storage.GetContext()
	owner := checkOwner(ctx)

	common.Lock(ctx)

	total := common.GetInt(ctx, totalRewardsKey)
	if amount > total-common.GetInt(ctx, totalClaimedKey) {
		panic(rewardpoolconst.ErrInsufficientRewards)
	}

	token := common.GetHash160(ctx, rewardsTokenKey)
	common.TransferTo(token, owner, amount)

	common.PutInt(ctx, totalRewardsKey, total-amount)

	runtime.Notify("FundsWithdrawn", token, owner, amount)

	common.Unlock(ctx)
}
