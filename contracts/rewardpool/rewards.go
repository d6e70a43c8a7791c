package rewardpool

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/rewardpool-contract/common"
	"github.com/nspcc-dev/rewardpool-contract/contracts/rewardpool/rewardpoolconst"
)

// SharePrecision returns the scale of values returned by ShareOf.
func SharePrecision() int {
	return rewardpoolconst.SharePrecision
}

// ShareOf returns the share of the account in total deposits scaled by
// SharePrecision.
func ShareOf(account interop.Hash160) int {
	return shareOf(storage.GetReadOnlyContext(), account)
}

// EntitlementOf returns the amount of rewards token the account is entitled
// to with the current funding, including already claimed rewards.
func EntitlementOf(account interop.Hash160) int {
	return entitlementOf(storage.GetReadOnlyContext(), account)
}

// ClaimedOf returns the amount of rewards already claimed by the account.
func ClaimedOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, append([]byte{claimedPrefix}, account...))
}

// ClaimableOf returns the amount of rewards the account can claim now if
// claims are open.
func ClaimableOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	amount := entitlementOf(ctx, account) - common.GetInt(ctx, append([]byte{claimedPrefix}, account...))
	if amount < 0 {
		return 0
	}
	return amount
}

// TotalRewardsDeposited returns the current reward funding.
func TotalRewardsDeposited() int {
	return common.GetInt(storage.GetReadOnlyContext(), totalRewardsKey)
}

// TotalRewardsClaimed returns the sum of rewards claimed by all accounts.
func TotalRewardsClaimed() int {
	return common.GetInt(storage.GetReadOnlyContext(), totalClaimedKey)
}

// ClaimRewards method transfers unclaimed rewards to the account. Transaction
// must be signed by the account. Deposits must be paused, claims must be open
// and the account must be whitelisted.
//
// It produces RewardsClaimed notification.
func ClaimRewards(account interop.Hash160) {
	common.CheckWitness(account)

	ctx := storage.GetContext()
	common.Lock(ctx)

	if !isPaused(ctx, rewardpoolconst.DepositAction) {
		panic(rewardpoolconst.ErrDepositsOpen)
	}
	whenOpen(ctx, rewardpoolconst.ClaimAction, rewardpoolconst.ErrClaimsPaused)
	checkWhitelisted(ctx, account)

	if common.GetInt(ctx, append([]byte{depositPrefix}, account...)) == 0 {
		panic(rewardpoolconst.ErrNoDeposit)
	}

	key := append([]byte{claimedPrefix}, account...)
	oldClaimed := common.GetInt(ctx, key)
	amount := entitlementOf(ctx, account) - oldClaimed
	if amount <= 0 {
		panic(rewardpoolconst.ErrNothingToClaim)
	}

	token := common.GetHash160(ctx, rewardsTokenKey)
	common.TransferTo(token, account, amount)

	newClaimed := oldClaimed + amount
	common.PutInt(ctx, key, newClaimed)
	common.PutInt(ctx, totalClaimedKey, common.GetInt(ctx, totalClaimedKey)+amount)

	runtime.Notify("RewardsClaimed", account, oldClaimed, newClaimed)

	common.Unlock(ctx)
}

func shareOf(ctx storage.Context, account interop.Hash160) int {
	total := common.GetInt(ctx, totalDepositsKey)
	if total == 0 {
		return 0
	}

	deposit := common.GetInt(ctx, append([]byte{depositPrefix}, account...))
	return deposit * rewardpoolconst.SharePrecision / total
}

func entitlementOf(ctx storage.Context, account interop.Hash160) int {
	rewards := common.GetInt(ctx, totalRewardsKey)
	if rewards == 0 {
		return 0
	}

	share := shareOf(ctx, account)
	if share == 0 {
		return 0
	}

	return rewards * share / rewardpoolconst.SharePrecision
}
