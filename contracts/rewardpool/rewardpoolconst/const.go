/*
Package rewardpoolconst contains constants shared by RewardPool contract and
its Go clients. It doesn't import contract code, so it is safe to use
anywhere.
*/
package rewardpoolconst

const (
	// SharePrecision is a fixed-point scale of account shares: a share of
	// SharePrecision means 100% of all deposits. It's a percentage with
	// 6 decimal places, so rewards are calculated as
	//
	//	share = deposit * SharePrecision / totalDeposits
	//	entitlement = totalRewards * share / SharePrecision
	//
	// with integer truncation on each step.
	SharePrecision = 100_000_000

	// MaxActionLength is the maximum length of an action identifier in bytes.
	MaxActionLength = 32
)

// Reserved action identifiers.
const (
	// DefaultAction is an action used by pause/unpause when no action is
	// given. It doesn't gate any contract method on its own.
	DefaultAction = "default"
	// DepositAction gates deposits. It must be paused to allow claims.
	DepositAction = "deposit"
	// ClaimAction gates reward claims. It is paused on deployment.
	ClaimAction = "claim"
)

// Eligibility errors.
const (
	ErrNotWhitelisted = "account is not whitelisted"
	ErrNoDeposit      = "account has no deposit"
	ErrDepositsPaused = "deposits are paused"
	ErrDepositsOpen   = "deposits are still open"
	ErrClaimsPaused   = "claims are paused"
)

// Bounds errors.
const (
	ErrMaxDepositReached        = "max deposit reached"
	ErrUserMaxDepositExceeded   = "user max deposit exceeded"
	ErrUserMinDepositNotReached = "user min deposit not reached"
)

// State errors.
const (
	ErrNothingToClaim       = "nothing to claim"
	ErrRewardsAlreadyFunded = "rewards token can't be changed after funding"
	ErrInsufficientRewards  = "insufficient unclaimed rewards"
	ErrRewardsTokenNotSet   = "rewards token is not set"
	ErrNoDeposits           = "there are no deposits"
	ErrAlreadyPaused        = "action is already paused"
	ErrNotPaused            = "action is not paused"
)

// Input errors.
const (
	ErrInvalidAmount     = "amount must be positive"
	ErrInvalidLimits     = "limits must not be negative"
	ErrInvalidAccount    = "invalid account"
	ErrInvalidAction     = "invalid action"
	ErrUnexpectedPayment = "unexpected payment"
	ErrIndexOutOfRange   = "index out of range"
	ErrInvalidRange      = "invalid range"
)

// ErrRenounceForbidden is thrown on any attempt to leave the contract
// without an owner. Nobody could withdraw deposits or rewards then.
const ErrRenounceForbidden = "ownership can't be renounced"
