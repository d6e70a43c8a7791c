/*
Package rewardpool implements RewardPool contract.

RewardPool contract accepts deposits of a NEP-17 token from (optionally
whitelisted) accounts and then distributes a separately funded pool of
another NEP-17 token among depositors in proportion to their share of
total deposits.

Contract lifecycle is controlled by its owner. Deposits are accepted while
"deposit" action is open. Owner then pauses deposits, optionally moving
deposited funds away with WithdrawDeposits, funds rewards with DepositRewards
and opens "claim" action. Accounts claim their rewards with ClaimRewards.
Funding may be repeated any number of times, every account can claim the
difference between its current entitlement and already claimed amount.

Deposit bounds are described by Limits: total deposits must stay strictly
below Limits.Max, an account balance must be between Limits.UserMin and
Limits.UserMax inclusive. Zero disables the bound.

Every method transferring tokens is guarded against re-entrance, nested call
of any of them fails with common.ErrReentrantCall.

# Contract notifications

WhitelistAdded notification. This notification is produced for each account
passed to AddToWhitelist.

	WhitelistAdded
	  - name: account
	    type: Hash160

WhitelistRemoved notification. This notification is produced for each account
passed to RemoveFromWhitelist.

	WhitelistRemoved
	  - name: account
	    type: Hash160

DepositAdded notification. This notification is produced on successful
deposit.

	DepositAdded
	  - name: account
	    type: Hash160
	  - name: oldBalance
	    type: Integer
	  - name: newBalance
	    type: Integer

FundsWithdrawn notification. This notification is produced when the owner
withdraws deposits or unclaimed rewards.

	FundsWithdrawn
	  - name: token
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

RewardsDeposited notification. This notification is produced on reward
funding. Total is the funding after the operation.

	RewardsDeposited
	  - name: amount
	    type: Integer
	  - name: total
	    type: Integer

RewardsClaimed notification. This notification is produced on successful
claim.

	RewardsClaimed
	  - name: account
	    type: Hash160
	  - name: oldClaimed
	    type: Integer
	  - name: newClaimed
	    type: Integer

Paused and Unpaused notifications. These notifications are produced when
action state changes.

	Paused
	  - name: action
	    type: String

	Unpaused
	  - name: action
	    type: String

LimitsSet notification.

	LimitsSet
	  - name: max
	    type: Integer
	  - name: userMax
	    type: Integer
	  - name: userMin
	    type: Integer

RewardsTokenSet notification.

	RewardsTokenSet
	  - name: token
	    type: Hash160

OwnershipTransferred notification.

	OwnershipTransferred
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160

# Contract storage model

	| Key                  | Value           | Description                       |
	|----------------------|-----------------|-----------------------------------|
	| O                    | Hash160         | owner                             |
	| T                    | Hash160         | deposit token                     |
	| R                    | Hash160         | rewards token                     |
	| L                    | serialized      | Limits                            |
	| D                    | int             | total deposits                    |
	| F                    | int             | total rewards deposited           |
	| C                    | int             | total rewards claimed             |
	| W                    | int             | whitelist length                  |
	| N                    | int             | number of depositors              |
	| d + account          | int             | account deposit                   |
	| c + account          | int             | rewards claimed by account        |
	| w + account          | 0x01            | whitelist membership              |
	| p + action           | 0x01            | action is paused                  |
	| i + decimal index    | Hash160         | depositors in order of deposit    |
	| lock                 | 0x01            | guarded method is running         |
*/
package rewardpool
