package rewardpool

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/rewardpool-contract/common"
	"github.com/nspcc-dev/rewardpool-contract/contracts/rewardpool/rewardpoolconst"
)

// Limits are deposit bounds. Zero value of any field disables the bound.
type Limits struct {
	// Max is an exclusive cap of total deposits.
	Max int
	// UserMax is an inclusive cap of a single account balance.
	UserMax int
	// UserMin is an inclusive floor of a single account balance.
	UserMin int
}

// Deposit method transfers amount of deposit token from the account to the
// contract. Transaction must be signed by the account with a scope allowing
// deposit token to check it. Deposits must be open, the account must be
// whitelisted and its new balance must satisfy the limits.
//
// It produces DepositAdded notification.
func Deposit(account interop.Hash160, amount int) {
	common.CheckWitness(account)
	if amount <= 0 {
		panic(rewardpoolconst.ErrInvalidAmount)
	}

	ctx := storage.GetContext()
	common.Lock(ctx)

	whenOpen(ctx, rewardpoolconst.DepositAction, rewardpoolconst.ErrDepositsPaused)
	checkWhitelisted(ctx, account)

	key := append([]byte{depositPrefix}, account...)
	oldBalance := common.GetInt(ctx, key)
	newBalance := oldBalance + amount
	newTotal := common.GetInt(ctx, totalDepositsKey) + amount

	limits := getLimits(ctx)
	if limits.Max != 0 && newTotal >= limits.Max {
		panic(rewardpoolconst.ErrMaxDepositReached)
	}
	if limits.UserMax != 0 && newBalance > limits.UserMax {
		panic(rewardpoolconst.ErrUserMaxDepositExceeded)
	}
	if limits.UserMin != 0 && newBalance < limits.UserMin {
		panic(rewardpoolconst.ErrUserMinDepositNotReached)
	}

	token := common.GetHash160(ctx, depositTokenKey)
	common.TransferFrom(token, account, amount)

	if oldBalance == 0 {
		appendAccount(ctx, account)
	}

	common.PutInt(ctx, key, newBalance)
	common.PutInt(ctx, totalDepositsKey, newTotal)

	runtime.Notify("DepositAdded", account, oldBalance, newBalance)

	common.Unlock(ctx)
}

// DepositOf returns the deposit balance of the account.
func DepositOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, append([]byte{depositPrefix}, account...))
}

// TotalDeposits returns the sum of all account deposits.
func TotalDeposits() int {
	return common.GetInt(storage.GetReadOnlyContext(), totalDepositsKey)
}

// AccountCount returns the number of accounts that have ever deposited.
func AccountCount() int {
	return common.GetInt(storage.GetReadOnlyContext(), accountCountKey)
}

// AccountAt returns the depositor with the given index in the order of their
// first deposits.
func AccountAt(index int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	if index < 0 || index >= common.GetInt(ctx, accountCountKey) {
		panic(rewardpoolconst.ErrIndexOutOfRange)
	}
	return common.GetHash160(ctx, accountKey(index))
}

// Accounts returns at most limit depositors starting from offset in the order
// of their first deposits.
func Accounts(offset, limit int) []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	if offset < 0 || limit < 0 {
		panic(rewardpoolconst.ErrInvalidRange)
	}

	count := common.GetInt(ctx, accountCountKey)
	end := offset + limit
	if end > count {
		end = count
	}

	result := []interop.Hash160{}
	for i := offset; i < end; i++ {
		result = append(result, common.GetHash160(ctx, accountKey(i)))
	}

	return result
}

// GetLimits returns current deposit limits.
func GetLimits() Limits {
	return getLimits(storage.GetReadOnlyContext())
}

func getLimits(ctx storage.Context) Limits {
	data := storage.Get(ctx, limitsKey)
	if data == nil {
		return Limits{}
	}
	return std.Deserialize(data.([]byte)).(Limits)
}

func setLimits(ctx storage.Context, total, userMax, userMin int) {
	if total < 0 || userMax < 0 || userMin < 0 {
		panic(rewardpoolconst.ErrInvalidLimits)
	}

	common.SetSerialized(ctx, limitsKey, Limits{
		Max:     total,
		UserMax: userMax,
		UserMin: userMin,
	})
}

func appendAccount(ctx storage.Context, account interop.Hash160) {
	count := common.GetInt(ctx, accountCountKey)
	storage.Put(ctx, accountKey(count), account)
	common.PutInt(ctx, accountCountKey, count+1)
}

func accountKey(index int) string {
	return accountPrefix + std.Itoa(index, 10)
}
