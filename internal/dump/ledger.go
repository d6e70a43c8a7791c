package dump

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"

	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Storage layout of the RewardPool contract, see contracts/rewardpool.
const (
	ownerKey         = 'O'
	depositTokenKey  = 'T'
	rewardsTokenKey  = 'R'
	limitsKey        = 'L'
	totalDepositsKey = 'D'
	totalRewardsKey  = 'F'
	totalClaimedKey  = 'C'
	whitelistLenKey  = 'W'
	accountCountKey  = 'N'

	depositPrefix   = 'd'
	claimedPrefix   = 'c'
	whitelistPrefix = 'w'
	pausePrefix     = 'p'
	accountPrefix   = 'i'
)

// Limits are deposit bounds of the RewardPool contract.
type Limits struct {
	Max, UserMax, UserMin *big.Int
}

// Ledger is a decoded state of the RewardPool contract.
type Ledger struct {
	Owner        util.Uint160
	DepositToken util.Uint160
	RewardsToken *util.Uint160
	Limits       Limits

	TotalDeposits *big.Int
	TotalRewards  *big.Int
	TotalClaimed  *big.Int

	// Number of whitelisted accounts as the contract counts them.
	WhitelistLength int64
	Whitelist       []util.Uint160

	// Number of depositors as the contract counts them.
	AccountCount int64
	// Depositors by their index.
	Accounts map[int64]util.Uint160

	Deposits map[util.Uint160]*big.Int
	Claimed  map[util.Uint160]*big.Int

	// Paused actions.
	Paused []string
}

// NewLedger returns empty Ledger which is filled via Put.
func NewLedger() *Ledger {
	return &Ledger{
		Limits: Limits{
			Max:     new(big.Int),
			UserMax: new(big.Int),
			UserMin: new(big.Int),
		},
		TotalDeposits: new(big.Int),
		TotalRewards:  new(big.Int),
		TotalClaimed:  new(big.Int),
		Accounts:      make(map[int64]util.Uint160),
		Deposits:      make(map[util.Uint160]*big.Int),
		Claimed:       make(map[util.Uint160]*big.Int),
	}
}

// Put decodes contract storage item and saves it in the Ledger.
func (x *Ledger) Put(key, value []byte) error {
	if len(key) == 0 {
		return errors.New("empty storage key")
	}

	if len(key) == 1 {
		return x.putSingleton(key[0], value)
	}

	var err error

	switch key[0] {
	case depositPrefix, claimedPrefix, whitelistPrefix:
		var acc util.Uint160
		acc, err = util.Uint160DecodeBytesBE(key[1:])
		if err != nil {
			break
		}

		switch key[0] {
		case depositPrefix:
			x.Deposits[acc] = bigint.FromBytes(value)
		case claimedPrefix:
			x.Claimed[acc] = bigint.FromBytes(value)
		default:
			x.Whitelist = append(x.Whitelist, acc)
		}
	case pausePrefix:
		x.Paused = append(x.Paused, string(key[1:]))
	case accountPrefix:
		var ind int64
		ind, err = strconv.ParseInt(string(key[1:]), 10, 64)
		if err != nil {
			break
		}

		var acc util.Uint160
		acc, err = util.Uint160DecodeBytesBE(value)
		if err != nil {
			break
		}

		x.Accounts[ind] = acc
	default:
		err = errors.New("unknown prefix")
	}
	if err != nil {
		return fmt.Errorf("decode storage item with key %x: %w", key, err)
	}

	return nil
}

func (x *Ledger) putSingleton(key byte, value []byte) error {
	var err error

	switch key {
	case ownerKey:
		x.Owner, err = util.Uint160DecodeBytesBE(value)
	case depositTokenKey:
		x.DepositToken, err = util.Uint160DecodeBytesBE(value)
	case rewardsTokenKey:
		var h util.Uint160
		h, err = util.Uint160DecodeBytesBE(value)
		x.RewardsToken = &h
	case limitsKey:
		x.Limits, err = decodeLimits(value)
	case totalDepositsKey:
		x.TotalDeposits = bigint.FromBytes(value)
	case totalRewardsKey:
		x.TotalRewards = bigint.FromBytes(value)
	case totalClaimedKey:
		x.TotalClaimed = bigint.FromBytes(value)
	case whitelistLenKey:
		x.WhitelistLength = bigint.FromBytes(value).Int64()
	case accountCountKey:
		x.AccountCount = bigint.FromBytes(value).Int64()
	default:
		err = errors.New("unknown key")
	}
	if err != nil {
		return fmt.Errorf("decode storage item with key '%c': %w", key, err)
	}

	return nil
}

func decodeLimits(data []byte) (Limits, error) {
	item, err := stackitem.Deserialize(data)
	if err != nil {
		return Limits{}, err
	}

	fields, ok := item.Value().([]stackitem.Item)
	if !ok || len(fields) != 3 {
		return Limits{}, errors.New("limits must be a structure of 3 fields")
	}

	var res [3]*big.Int
	for i := range fields {
		res[i], err = fields[i].TryInteger()
		if err != nil {
			return Limits{}, fmt.Errorf("field #%d: %w", i, err)
		}
	}

	return Limits{Max: res[0], UserMax: res[1], UserMin: res[2]}, nil
}

// Check verifies consistency of the Ledger and returns all found violations
// joined into a single error.
func (x *Ledger) Check() error {
	var errs []error

	sum := new(big.Int)
	for acc, v := range x.Deposits {
		if v.Sign() <= 0 {
			errs = append(errs, fmt.Errorf("non-positive deposit %s of %s", v, acc.StringLE()))
		}
		sum.Add(sum, v)
	}
	if sum.Cmp(x.TotalDeposits) != 0 {
		errs = append(errs, fmt.Errorf("sum of deposits %s differs from total %s", sum, x.TotalDeposits))
	}

	sum = new(big.Int)
	for acc, v := range x.Claimed {
		if _, ok := x.Deposits[acc]; !ok {
			errs = append(errs, fmt.Errorf("%s claimed without deposit", acc.StringLE()))
		}
		sum.Add(sum, v)
	}
	if sum.Cmp(x.TotalClaimed) != 0 {
		errs = append(errs, fmt.Errorf("sum of claims %s differs from total %s", sum, x.TotalClaimed))
	}

	if x.TotalClaimed.Cmp(x.TotalRewards) > 0 {
		errs = append(errs, fmt.Errorf("claimed %s exceeds rewards %s", x.TotalClaimed, x.TotalRewards))
	}

	if int64(len(x.Whitelist)) != x.WhitelistLength {
		errs = append(errs, fmt.Errorf("%d whitelisted accounts, counter is %d", len(x.Whitelist), x.WhitelistLength))
	}

	if int64(len(x.Accounts)) != x.AccountCount {
		errs = append(errs, fmt.Errorf("%d indexed depositors, counter is %d", len(x.Accounts), x.AccountCount))
	}

	indexed := make(map[util.Uint160]struct{}, len(x.Accounts))
	for ind, acc := range x.Accounts {
		if ind < 0 || ind >= x.AccountCount {
			errs = append(errs, fmt.Errorf("depositor index %d is out of range", ind))
		}
		if _, ok := indexed[acc]; ok {
			errs = append(errs, fmt.Errorf("depositor %s is indexed twice", acc.StringLE()))
		}
		indexed[acc] = struct{}{}
	}
	for acc := range x.Deposits {
		if _, ok := indexed[acc]; !ok {
			errs = append(errs, fmt.Errorf("depositor %s is not indexed", acc.StringLE()))
		}
	}

	return errors.Join(errs...)
}

// Depositors returns all depositors in the order of their first deposits.
func (x *Ledger) Depositors() []util.Uint160 {
	inds := make([]int64, 0, len(x.Accounts))
	for ind := range x.Accounts {
		inds = append(inds, ind)
	}
	sort.Slice(inds, func(i, j int) bool { return inds[i] < inds[j] })

	res := make([]util.Uint160, len(inds))
	for i := range inds {
		res[i] = x.Accounts[inds[i]]
	}
	return res
}
