// Package rewardpool contains RPC wrappers for RewardPool contract.
package rewardpool

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// RewardPoolLimits is a contract-specific rewardpool.Limits type used by its methods.
type RewardPoolLimits struct {
	Max     *big.Int
	UserMax *big.Int
	UserMin *big.Int
}

// WhitelistAddedEvent represents "WhitelistAdded" event emitted by the contract.
type WhitelistAddedEvent struct {
	Account util.Uint160
}

// WhitelistRemovedEvent represents "WhitelistRemoved" event emitted by the contract.
type WhitelistRemovedEvent struct {
	Account util.Uint160
}

// DepositAddedEvent represents "DepositAdded" event emitted by the contract.
type DepositAddedEvent struct {
	Account    util.Uint160
	OldBalance *big.Int
	NewBalance *big.Int
}

// FundsWithdrawnEvent represents "FundsWithdrawn" event emitted by the contract.
type FundsWithdrawnEvent struct {
	Token  util.Uint160
	To     util.Uint160
	Amount *big.Int
}

// RewardsDepositedEvent represents "RewardsDeposited" event emitted by the contract.
type RewardsDepositedEvent struct {
	Amount *big.Int
	Total  *big.Int
}

// RewardsClaimedEvent represents "RewardsClaimed" event emitted by the contract.
type RewardsClaimedEvent struct {
	Account    util.Uint160
	OldClaimed *big.Int
	NewClaimed *big.Int
}

// PausedEvent represents "Paused" event emitted by the contract.
type PausedEvent struct {
	Action string
}

// UnpausedEvent represents "Unpaused" event emitted by the contract.
type UnpausedEvent struct {
	Action string
}

// LimitsSetEvent represents "LimitsSet" event emitted by the contract.
type LimitsSetEvent struct {
	Max     *big.Int
	UserMax *big.Int
	UserMin *big.Int
}

// RewardsTokenSetEvent represents "RewardsTokenSet" event emitted by the contract.
type RewardsTokenSetEvent struct {
	Token util.Uint160
}

// OwnershipTransferredEvent represents "OwnershipTransferred" event emitted by the contract.
type OwnershipTransferredEvent struct {
	PreviousOwner util.Uint160
	NewOwner      util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// AccountAt invokes `accountAt` method of contract.
func (c *ContractReader) AccountAt(index *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "accountAt", index))
}

// AccountCount invokes `accountCount` method of contract.
func (c *ContractReader) AccountCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "accountCount"))
}

// Accounts invokes `accounts` method of contract.
func (c *ContractReader) Accounts(offset *big.Int, limit *big.Int) ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "accounts", offset, limit))
}

// ClaimableOf invokes `claimableOf` method of contract.
func (c *ContractReader) ClaimableOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "claimableOf", account))
}

// ClaimedOf invokes `claimedOf` method of contract.
func (c *ContractReader) ClaimedOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "claimedOf", account))
}

// DepositOf invokes `depositOf` method of contract.
func (c *ContractReader) DepositOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "depositOf", account))
}

// DepositToken invokes `depositToken` method of contract.
func (c *ContractReader) DepositToken() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "depositToken"))
}

// EntitlementOf invokes `entitlementOf` method of contract.
func (c *ContractReader) EntitlementOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "entitlementOf", account))
}

// GetLimits invokes `getLimits` method of contract.
func (c *ContractReader) GetLimits() (*RewardPoolLimits, error) {
	return itemToRewardPoolLimits(unwrap.Item(c.invoker.Call(c.hash, "getLimits")))
}

// IsWhitelisted invokes `isWhitelisted` method of contract.
func (c *ContractReader) IsWhitelisted(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isWhitelisted", account))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// ShareOf invokes `shareOf` method of contract.
func (c *ContractReader) ShareOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "shareOf", account))
}

// SharePrecision invokes `sharePrecision` method of contract.
func (c *ContractReader) SharePrecision() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "sharePrecision"))
}

// TotalDeposits invokes `totalDeposits` method of contract.
func (c *ContractReader) TotalDeposits() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalDeposits"))
}

// TotalRewardsClaimed invokes `totalRewardsClaimed` method of contract.
func (c *ContractReader) TotalRewardsClaimed() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalRewardsClaimed"))
}

// TotalRewardsDeposited invokes `totalRewardsDeposited` method of contract.
func (c *ContractReader) TotalRewardsDeposited() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalRewardsDeposited"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// WhitelistLength invokes `whitelistLength` method of contract.
func (c *ContractReader) WhitelistLength() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "whitelistLength"))
}

// IterateWhitelist invokes `iterateWhitelist` method of contract.
func (c *ContractReader) IterateWhitelist() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateWhitelist"))
}

// IterateWhitelistExpanded is similar to IterateWhitelist (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateWhitelistExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateWhitelist", _numOfIteratorItems))
}

// IsPaused invokes `isPaused` method of contract.
func (c *ContractReader) IsPaused(action Action) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isPaused", action.String()))
}

// RewardsToken invokes `rewardsToken` method of contract. It returns
// [ErrRewardsTokenNotSet] if the contract has no rewards token yet.
func (c *ContractReader) RewardsToken() (util.Uint160, error) {
	item, err := unwrap.Item(c.invoker.Call(c.hash, "rewardsToken"))
	if err != nil {
		return util.Uint160{}, err
	}
	if _, ok := item.(stackitem.Null); ok {
		return util.Uint160{}, ErrRewardsTokenNotSet
	}
	return itemToUint160(item)
}

// AddToWhitelist creates a transaction invoking `addToWhitelist` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddToWhitelist(accounts []util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addToWhitelist", hashesToItems(accounts))
}

// AddToWhitelistTransaction creates a transaction invoking `addToWhitelist` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddToWhitelistTransaction(accounts []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addToWhitelist", hashesToItems(accounts))
}

// AddToWhitelistUnsigned creates a transaction invoking `addToWhitelist` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddToWhitelistUnsigned(accounts []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addToWhitelist", nil, hashesToItems(accounts))
}

// ClaimRewards creates a transaction invoking `claimRewards` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimRewards(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimRewards", account)
}

// ClaimRewardsTransaction creates a transaction invoking `claimRewards` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimRewardsTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimRewards", account)
}

// ClaimRewardsUnsigned creates a transaction invoking `claimRewards` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimRewardsUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimRewards", nil, account)
}

// Deposit creates a transaction invoking `deposit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Deposit(account util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deposit", account, amount)
}

// DepositTransaction creates a transaction invoking `deposit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DepositTransaction(account util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deposit", account, amount)
}

// DepositUnsigned creates a transaction invoking `deposit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DepositUnsigned(account util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deposit", nil, account, amount)
}

// DepositRewards creates a transaction invoking `depositRewards` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DepositRewards(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "depositRewards", amount)
}

// DepositRewardsTransaction creates a transaction invoking `depositRewards` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DepositRewardsTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "depositRewards", amount)
}

// DepositRewardsUnsigned creates a transaction invoking `depositRewards` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DepositRewardsUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "depositRewards", nil, amount)
}

// Pause creates a transaction invoking `pause` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Pause(action Action) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "pause", action.String())
}

// PauseTransaction creates a transaction invoking `pause` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PauseTransaction(action Action) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "pause", action.String())
}

// PauseUnsigned creates a transaction invoking `pause` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PauseUnsigned(action Action) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "pause", nil, action.String())
}

// RemoveFromWhitelist creates a transaction invoking `removeFromWhitelist` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveFromWhitelist(accounts []util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeFromWhitelist", hashesToItems(accounts))
}

// RemoveFromWhitelistTransaction creates a transaction invoking `removeFromWhitelist` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveFromWhitelistTransaction(accounts []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeFromWhitelist", hashesToItems(accounts))
}

// RemoveFromWhitelistUnsigned creates a transaction invoking `removeFromWhitelist` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveFromWhitelistUnsigned(accounts []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeFromWhitelist", nil, hashesToItems(accounts))
}

// RenounceOwnership creates a transaction invoking `renounceOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RenounceOwnership() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "renounceOwnership")
}

// RenounceOwnershipTransaction creates a transaction invoking `renounceOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RenounceOwnershipTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "renounceOwnership")
}

// RenounceOwnershipUnsigned creates a transaction invoking `renounceOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RenounceOwnershipUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "renounceOwnership", nil)
}

// SetLimits creates a transaction invoking `setLimits` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetLimits(maxTotal *big.Int, userMax *big.Int, userMin *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setLimits", maxTotal, userMax, userMin)
}

// SetLimitsTransaction creates a transaction invoking `setLimits` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetLimitsTransaction(maxTotal *big.Int, userMax *big.Int, userMin *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setLimits", maxTotal, userMax, userMin)
}

// SetLimitsUnsigned creates a transaction invoking `setLimits` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetLimitsUnsigned(maxTotal *big.Int, userMax *big.Int, userMin *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setLimits", nil, maxTotal, userMax, userMin)
}

// SetRewardsToken creates a transaction invoking `setRewardsToken` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetRewardsToken(token util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setRewardsToken", token)
}

// SetRewardsTokenTransaction creates a transaction invoking `setRewardsToken` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetRewardsTokenTransaction(token util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setRewardsToken", token)
}

// SetRewardsTokenUnsigned creates a transaction invoking `setRewardsToken` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetRewardsTokenUnsigned(token util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setRewardsToken", nil, token)
}

// TransferOwnership creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipTransaction creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipUnsigned creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOwnership", nil, newOwner)
}

// Unpause creates a transaction invoking `unpause` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unpause(action Action) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unpause", action.String())
}

// UnpauseTransaction creates a transaction invoking `unpause` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnpauseTransaction(action Action) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unpause", action.String())
}

// UnpauseUnsigned creates a transaction invoking `unpause` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnpauseUnsigned(action Action) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unpause", nil, action.String())
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// WithdrawDeposits creates a transaction invoking `withdrawDeposits` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawDeposits(amount *big.Int, pause bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawDeposits", amount, pause)
}

// WithdrawDepositsTransaction creates a transaction invoking `withdrawDeposits` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawDepositsTransaction(amount *big.Int, pause bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawDeposits", amount, pause)
}

// WithdrawDepositsUnsigned creates a transaction invoking `withdrawDeposits` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawDepositsUnsigned(amount *big.Int, pause bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawDeposits", nil, amount, pause)
}

// WithdrawRewards creates a transaction invoking `withdrawRewards` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawRewards(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawRewards", amount)
}

// WithdrawRewardsTransaction creates a transaction invoking `withdrawRewards` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawRewardsTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawRewards", amount)
}

// WithdrawRewardsUnsigned creates a transaction invoking `withdrawRewards` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawRewardsUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawRewards", nil, amount)
}

// itemToRewardPoolLimits converts stack item into *RewardPoolLimits.
func itemToRewardPoolLimits(item stackitem.Item, err error) (*RewardPoolLimits, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RewardPoolLimits)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RewardPoolLimits from the given
// [stackitem.Item] or returns an error if it's not compatible.
func (res *RewardPoolLimits) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Max, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Max: %w", err)
	}

	index++
	res.UserMax, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UserMax: %w", err)
	}

	index++
	res.UserMin, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UserMin: %w", err)
	}

	return nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	u, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return util.Uint160{}, err
	}
	return u, nil
}

func hashesToItems(hs []util.Uint160) []any {
	res := make([]any, len(hs))
	for i := range hs {
		res[i] = hs[i]
	}
	return res
}

func itemToUTF8String(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}

// WhitelistAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "WhitelistAdded" name from the provided [result.ApplicationLog].
func WhitelistAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*WhitelistAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WhitelistAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WhitelistAdded" {
				continue
			}
			event := new(WhitelistAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WhitelistAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WhitelistAddedEvent or
// returns an error if it's not possible to do to so.
func (e *WhitelistAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Account, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	return nil
}

// WhitelistRemovedEventsFromApplicationLog retrieves a set of all emitted events
// with "WhitelistRemoved" name from the provided [result.ApplicationLog].
func WhitelistRemovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*WhitelistRemovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WhitelistRemovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WhitelistRemoved" {
				continue
			}
			event := new(WhitelistRemovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WhitelistRemovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WhitelistRemovedEvent or
// returns an error if it's not possible to do to so.
func (e *WhitelistRemovedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Account, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	return nil
}

// DepositAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "DepositAdded" name from the provided [result.ApplicationLog].
func DepositAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DepositAdded" {
				continue
			}
			event := new(DepositAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositAddedEvent or
// returns an error if it's not possible to do to so.
func (e *DepositAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Account, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.OldBalance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OldBalance: %w", err)
	}

	index++
	e.NewBalance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewBalance: %w", err)
	}

	return nil
}

// FundsWithdrawnEventsFromApplicationLog retrieves a set of all emitted events
// with "FundsWithdrawn" name from the provided [result.ApplicationLog].
func FundsWithdrawnEventsFromApplicationLog(log *result.ApplicationLog) ([]*FundsWithdrawnEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FundsWithdrawnEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FundsWithdrawn" {
				continue
			}
			event := new(FundsWithdrawnEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FundsWithdrawnEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FundsWithdrawnEvent or
// returns an error if it's not possible to do to so.
func (e *FundsWithdrawnEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Token, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Token: %w", err)
	}

	index++
	e.To, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// RewardsDepositedEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardsDeposited" name from the provided [result.ApplicationLog].
func RewardsDepositedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardsDepositedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardsDepositedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardsDeposited" {
				continue
			}
			event := new(RewardsDepositedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardsDepositedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardsDepositedEvent or
// returns an error if it's not possible to do to so.
func (e *RewardsDepositedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Total, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Total: %w", err)
	}

	return nil
}

// RewardsClaimedEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardsClaimed" name from the provided [result.ApplicationLog].
func RewardsClaimedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardsClaimedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardsClaimedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardsClaimed" {
				continue
			}
			event := new(RewardsClaimedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardsClaimedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardsClaimedEvent or
// returns an error if it's not possible to do to so.
func (e *RewardsClaimedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Account, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.OldClaimed, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OldClaimed: %w", err)
	}

	index++
	e.NewClaimed, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewClaimed: %w", err)
	}

	return nil
}

// PausedEventsFromApplicationLog retrieves a set of all emitted events
// with "Paused" name from the provided [result.ApplicationLog].
func PausedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PausedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PausedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Paused" {
				continue
			}
			event := new(PausedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PausedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PausedEvent or
// returns an error if it's not possible to do to so.
func (e *PausedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Action, err = itemToUTF8String(arr[index])
	if err != nil {
		return fmt.Errorf("field Action: %w", err)
	}

	return nil
}

// UnpausedEventsFromApplicationLog retrieves a set of all emitted events
// with "Unpaused" name from the provided [result.ApplicationLog].
func UnpausedEventsFromApplicationLog(log *result.ApplicationLog) ([]*UnpausedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UnpausedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Unpaused" {
				continue
			}
			event := new(UnpausedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UnpausedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UnpausedEvent or
// returns an error if it's not possible to do to so.
func (e *UnpausedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Action, err = itemToUTF8String(arr[index])
	if err != nil {
		return fmt.Errorf("field Action: %w", err)
	}

	return nil
}

// LimitsSetEventsFromApplicationLog retrieves a set of all emitted events
// with "LimitsSet" name from the provided [result.ApplicationLog].
func LimitsSetEventsFromApplicationLog(log *result.ApplicationLog) ([]*LimitsSetEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*LimitsSetEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "LimitsSet" {
				continue
			}
			event := new(LimitsSetEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize LimitsSetEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to LimitsSetEvent or
// returns an error if it's not possible to do to so.
func (e *LimitsSetEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Max, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Max: %w", err)
	}

	index++
	e.UserMax, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UserMax: %w", err)
	}

	index++
	e.UserMin, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UserMin: %w", err)
	}

	return nil
}

// RewardsTokenSetEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardsTokenSet" name from the provided [result.ApplicationLog].
func RewardsTokenSetEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardsTokenSetEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardsTokenSetEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardsTokenSet" {
				continue
			}
			event := new(RewardsTokenSetEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardsTokenSetEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardsTokenSetEvent or
// returns an error if it's not possible to do to so.
func (e *RewardsTokenSetEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Token, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Token: %w", err)
	}

	return nil
}

// OwnershipTransferredEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnershipTransferred" name from the provided [result.ApplicationLog].
func OwnershipTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipTransferredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OwnershipTransferredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OwnershipTransferred" {
				continue
			}
			event := new(OwnershipTransferredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OwnershipTransferredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OwnershipTransferredEvent or
// returns an error if it's not possible to do to so.
func (e *OwnershipTransferredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.PreviousOwner, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field PreviousOwner: %w", err)
	}

	index++
	e.NewOwner, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field NewOwner: %w", err)
	}

	return nil
}
