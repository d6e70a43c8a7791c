package rewardpool

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/rewardpool-contract/contracts/rewardpool/rewardpoolconst"
)

// SharePrecision is a scale of values returned by ShareOf, see
// [rewardpoolconst.SharePrecision].
const SharePrecision = rewardpoolconst.SharePrecision

// ErrRewardsTokenNotSet is returned by [ContractReader.RewardsToken] when the
// contract has no rewards token.
var ErrRewardsTokenNotSet = errors.New(rewardpoolconst.ErrRewardsTokenNotSet)

// ErrInvalidAction is returned on empty or too long action identifier.
var ErrInvalidAction = errors.New("invalid action")

// Action identifies a pausable group of contract operations. Reserved actions
// are [ActionDefault], [ActionDeposit] and [ActionClaim], any other is created
// with [CustomAction]. Zero value is [ActionDefault].
type Action struct {
	name string
}

var (
	// ActionDefault doesn't gate any method. It's used by the contract when
	// the action is omitted.
	ActionDefault = Action{}
	// ActionDeposit gates deposits.
	ActionDeposit = Action{rewardpoolconst.DepositAction}
	// ActionClaim gates reward claims.
	ActionClaim = Action{rewardpoolconst.ClaimAction}
)

// CustomAction returns an operator-defined action. The name must be
// 1..[rewardpoolconst.MaxActionLength] bytes long. Reserved names resolve to
// the corresponding reserved actions.
func CustomAction(name string) (Action, error) {
	if len(name) == 0 || len(name) > rewardpoolconst.MaxActionLength {
		return Action{}, fmt.Errorf("%w: %q", ErrInvalidAction, name)
	}

	switch name {
	case rewardpoolconst.DefaultAction:
		return ActionDefault, nil
	case rewardpoolconst.DepositAction:
		return ActionDeposit, nil
	case rewardpoolconst.ClaimAction:
		return ActionClaim, nil
	}

	return Action{name}, nil
}

// ParseAction is like [CustomAction], but also accepts empty string as
// [ActionDefault].
func ParseAction(s string) (Action, error) {
	if s == "" {
		return ActionDefault, nil
	}
	return CustomAction(s)
}

// String returns action identifier as it's stored by the contract.
func (a Action) String() string {
	if a.name == "" {
		return rewardpoolconst.DefaultAction
	}
	return a.name
}

// IsCustom checks whether the action is not one of reserved actions.
func (a Action) IsCustom() bool {
	return a != ActionDefault && a != ActionDeposit && a != ActionClaim
}
