package dump

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type item struct{ k, v []byte }

func intItem(key []byte, v int64) item {
	return item{key, bigint.ToBytes(big.NewInt(v))}
}

func accKey(prefix byte, acc util.Uint160) []byte {
	return append([]byte{prefix}, acc.BytesBE()...)
}

// consistentStorage returns storage of the contract after two deposits and a
// claim.
func consistentStorage(t testing.TB) []item {
	var (
		a, b  = util.Uint160{1}, util.Uint160{2}
		owner = util.Uint160{3}
		token = util.Uint160{4}
	)

	limits, err := stackitem.Serialize(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(50000), stackitem.Make(10000), stackitem.Make(1000),
	}))
	require.NoError(t, err)

	return []item{
		{[]byte{ownerKey}, owner.BytesBE()},
		{[]byte{depositTokenKey}, token.BytesBE()},
		{[]byte{rewardsTokenKey}, token.BytesBE()},
		{[]byte{limitsKey}, limits},
		intItem([]byte{totalDepositsKey}, 30),
		intItem([]byte{totalRewardsKey}, 90),
		intItem([]byte{totalClaimedKey}, 30),
		intItem([]byte{accountCountKey}, 2),
		intItem([]byte{whitelistLenKey}, 1),
		intItem(accKey(depositPrefix, a), 10),
		intItem(accKey(depositPrefix, b), 20),
		intItem(accKey(claimedPrefix, a), 30),
		{accKey(whitelistPrefix, a), []byte{1}},
		{[]byte("i0"), b.BytesBE()},
		{[]byte("i1"), a.BytesBE()},
		{[]byte("pdeposit"), []byte{1}},
	}
}

func TestDumpRoundTrip(t *testing.T) {
	var (
		dir = t.TempDir()
		id  = ID{Label: "testnet", Block: 1024}
		st  = state.Contract{ContractBase: state.ContractBase{
			ID:       7,
			Hash:     util.Uint160{9},
			Manifest: *manifest.NewManifest("RewardPool"),
		}}
	)

	_nef, err := nef.NewFile(make([]byte, 32))
	require.NoError(t, err)
	st.NEF = *_nef

	c, err := NewCreator(dir, id)
	require.NoError(t, err)

	w := c.AddContract("rewardpool", st)
	for _, it := range consistentStorage(t) {
		require.NoError(t, w.Write(it.k, it.v))
	}
	require.NoError(t, c.Flush())
	c.Close()

	_, err = NewCreator(dir, id)
	require.Error(t, err, "dump must not be overwritten")

	var ids []ID
	err = IterateDumps(dir, func(dumpID ID, r *Reader) {
		ids = append(ids, dumpID)

		r.IterateContractStates(func(name string, s state.Contract) {
			require.Equal(t, "rewardpool", name)
			require.Equal(t, st.Hash, s.Hash)
		})

		l, err := r.Ledger("rewardpool")
		require.NoError(t, err)
		require.NoError(t, l.Check())
		require.EqualValues(t, 30, l.TotalDeposits.Int64())
		require.EqualValues(t, 10000, l.Limits.UserMax.Int64())
		require.Equal(t, []util.Uint160{{2}, {1}}, l.Depositors())
		require.Equal(t, []string{"deposit"}, l.Paused)

		_, err = r.Ledger("unknown")
		require.Error(t, err)
	})
	require.NoError(t, err)
	require.Equal(t, []ID{id}, ids)
}

func TestParseID(t *testing.T) {
	for _, id := range []ID{
		{Label: "mainnet", Block: 0},
		{Label: "private-net", Block: 4294967295},
	} {
		parsed, err := parseID(id.String() + statesFileSuffix)
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	}

	for _, name := range []string{
		"mainnet-1-storage.csv",
		"mainnet-contracts.json",
		"-1-contracts.json",
		"mainnet-x-contracts.json",
		"mainnet-4294967296-contracts.json",
	} {
		_, err := parseID(name)
		require.Error(t, err, name)
	}
}

func TestIterateDumpsMissing(t *testing.T) {
	err := IterateDumps(filepath.Join(t.TempDir(), "missing"), func(ID, *Reader) {
		t.Fatal("no dumps expected")
	})
	require.NoError(t, err)

	_, err = Open(t.TempDir(), ID{Label: "testnet"})
	require.Error(t, err)
}

func TestLedgerCheck(t *testing.T) {
	build := func(t *testing.T, corrupt func([]item) []item) *Ledger {
		l := NewLedger()
		for _, it := range corrupt(consistentStorage(t)) {
			require.NoError(t, l.Put(it.k, it.v))
		}
		return l
	}

	for name, tc := range map[string]struct {
		corrupt func([]item) []item
		msg     string
	}{
		"total deposits": {
			corrupt: func(s []item) []item { return append(s, intItem([]byte{totalDepositsKey}, 31)) },
			msg:     "sum of deposits",
		},
		"total claimed": {
			corrupt: func(s []item) []item { return append(s, intItem([]byte{totalClaimedKey}, 29)) },
			msg:     "sum of claims",
		},
		"claim without deposit": {
			corrupt: func(s []item) []item {
				return append(s, intItem(accKey(claimedPrefix, util.Uint160{5}), 1), intItem([]byte{totalClaimedKey}, 31))
			},
			msg: "claimed without deposit",
		},
		"overclaimed": {
			corrupt: func(s []item) []item { return append(s, intItem([]byte{totalRewardsKey}, 20)) },
			msg:     "exceeds rewards",
		},
		"whitelist counter": {
			corrupt: func(s []item) []item { return append(s, intItem([]byte{whitelistLenKey}, 2)) },
			msg:     "whitelisted accounts",
		},
		"account counter": {
			corrupt: func(s []item) []item { return append(s, intItem([]byte{accountCountKey}, 3)) },
			msg:     "indexed depositors",
		},
		"unindexed depositor": {
			corrupt: func(s []item) []item { return append(s, item{[]byte("i1"), util.Uint160{2}.BytesBE()}) },
			msg:     "is not indexed",
		},
	} {
		t.Run(name, func(t *testing.T) {
			require.ErrorContains(t, build(t, tc.corrupt).Check(), tc.msg)
		})
	}
}

func TestLedgerPutInvalid(t *testing.T) {
	l := NewLedger()

	require.Error(t, l.Put(nil, nil))
	require.Error(t, l.Put([]byte{'X'}, nil))
	require.Error(t, l.Put([]byte("x123"), nil))
	require.Error(t, l.Put([]byte{ownerKey}, []byte{1, 2, 3}))
	require.Error(t, l.Put([]byte{depositPrefix, 1, 2}, []byte{1}))
	require.Error(t, l.Put([]byte("inotanumber"), util.Uint160{}.BytesBE()))
	require.Error(t, l.Put([]byte{limitsKey}, []byte{0xff}))
}
