package rewardpool_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/rewardpool-contract/common"
	"github.com/nspcc-dev/rewardpool-contract/contracts/rewardpool/rewardpoolconst"
	"github.com/stretchr/testify/require"
)

const (
	poolPath  = "."
	tokenPath = "../../internal/testcontracts/testtoken"
)

type poolConfig struct {
	maxTotal    *big.Int
	userMax     *big.Int
	userMin     *big.Int
	whitelist   []neotest.Signer
	withRewards bool
}

type testEnv struct {
	e     *neotest.Executor
	owner neotest.Signer

	poolHash    util.Uint160
	pool        *neotest.ContractInvoker
	depositHash util.Uint160
	deposit     *neotest.ContractInvoker
	rewardsHash util.Uint160
	rewards     *neotest.ContractInvoker
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func newSigner(t *testing.T) neotest.Signer {
	acc, err := wallet.NewAccount()
	require.NoError(t, err)
	return neotest.NewSingleSigner(acc)
}

// tokens converts decimal string to the amount of 18-decimal token.
func tokens(s string) *big.Int {
	v, err := fixedn.FromString(s, 18)
	if err != nil {
		panic(err)
	}
	return v
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return v
}

func newTestEnv(t *testing.T, cfg poolConfig) *testEnv {
	e := newExecutor(t)

	tokenCtr := neotest.CompileFile(t, e.CommitteeHash, tokenPath, tokenPath+"/config.yml")
	e.DeployContract(t, tokenCtr, nil)

	// same code under another name gives another hash
	rewardsManifest := *tokenCtr.Manifest
	rewardsManifest.Name = "Test Rewards Token"
	rewardsCtr := &neotest.Contract{
		Hash:     state.CreateContractHash(e.CommitteeHash, tokenCtr.NEF.Checksum, rewardsManifest.Name),
		NEF:      tokenCtr.NEF,
		Manifest: &rewardsManifest,
	}
	e.DeployContract(t, rewardsCtr, nil)

	env := &testEnv{
		e:           e,
		owner:       e.NewAccount(t),
		depositHash: tokenCtr.Hash,
		deposit:     e.CommitteeInvoker(tokenCtr.Hash),
		rewardsHash: rewardsCtr.Hash,
		rewards:     e.CommitteeInvoker(rewardsCtr.Hash),
	}

	rewardsToken := []byte{}
	if cfg.withRewards {
		rewardsToken = env.rewardsHash.BytesBE()
	}

	whitelist := make([]any, 0, len(cfg.whitelist))
	for i := range cfg.whitelist {
		whitelist = append(whitelist, cfg.whitelist[i].ScriptHash())
	}

	poolCtr := neotest.CompileFile(t, e.CommitteeHash, poolPath, "config.yml")
	e.DeployContract(t, poolCtr, []any{
		env.owner.ScriptHash(),
		env.depositHash,
		rewardsToken,
		orZero(cfg.maxTotal),
		orZero(cfg.userMax),
		orZero(cfg.userMin),
		whitelist,
	})

	env.poolHash = poolCtr.Hash
	env.pool = e.CommitteeInvoker(poolCtr.Hash)

	return env
}

func (env *testEnv) as(s neotest.Signer) *neotest.ContractInvoker {
	return env.pool.WithSigners(s)
}

// newDepositor creates an account owning amount of deposit token.
func (env *testEnv) newDepositor(t *testing.T, amount *big.Int) neotest.Signer {
	acc := env.e.NewAccount(t)
	env.deposit.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), amount)
	return acc
}

func (env *testEnv) depositBy(t *testing.T, acc neotest.Signer, amount *big.Int) util.Uint256 {
	return env.as(acc).Invoke(t, stackitem.Null{}, "deposit", acc.ScriptHash(), amount)
}

// fund moves the pool to the reward phase with amount of rewards deposited.
func (env *testEnv) fund(t *testing.T, amount *big.Int) {
	env.rewards.Invoke(t, stackitem.Null{}, "mint", env.owner.ScriptHash(), amount)
	env.as(env.owner).Invoke(t, stackitem.Null{}, "depositRewards", amount)
}

func (env *testEnv) startClaims(t *testing.T) {
	owner := env.as(env.owner)
	owner.Invoke(t, stackitem.Null{}, "pause", rewardpoolconst.DepositAction)
	owner.Invoke(t, stackitem.Null{}, "unpause", rewardpoolconst.ClaimAction)
}

func checkInt(t *testing.T, inv *neotest.ContractInvoker, expected *big.Int, method string, args ...any) {
	s, err := inv.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.Equal(t, expected.String(), s.Pop().BigInt().String(), method)
}

func checkBool(t *testing.T, inv *neotest.ContractInvoker, expected bool, method string, args ...any) {
	s, err := inv.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.Equal(t, expected, s.Pop().Bool(), method)
}

func events(t *testing.T, e *neotest.Executor, h util.Uint256, name string) []state.NotificationEvent {
	var res []state.NotificationEvent
	for _, ev := range e.GetTxExecResult(t, h).Events {
		if ev.Name == name {
			res = append(res, ev)
		}
	}
	return res
}

func TestDeploy(t *testing.T) {
	a := newSigner(t)
	env := newTestEnv(t, poolConfig{
		maxTotal:  tokens("50000"),
		userMax:   tokens("10000"),
		userMin:   tokens("1000"),
		whitelist: []neotest.Signer{a, a},
	})

	env.pool.Invoke(t, env.owner.ScriptHash().BytesBE(), "owner")
	env.pool.Invoke(t, env.depositHash.BytesBE(), "depositToken")
	env.pool.Invoke(t, stackitem.Null{}, "rewardsToken")
	env.pool.Invoke(t, common.Version, "version")
	require.Equal(t, 1_000, common.Version) // 0.1.0, the first release
	require.Equal(t, common.Version, common.MinUpdatableVersion)
	env.pool.Invoke(t, rewardpoolconst.SharePrecision, "sharePrecision")

	env.pool.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(tokens("50000")),
		stackitem.Make(tokens("10000")),
		stackitem.Make(tokens("1000")),
	}), "getLimits")

	// duplicated entries don't inflate the counter
	env.pool.Invoke(t, 1, "whitelistLength")

	checkBool(t, env.pool, true, "isPaused", rewardpoolconst.ClaimAction)
	checkBool(t, env.pool, false, "isPaused", rewardpoolconst.DepositAction)
	checkBool(t, env.pool, false, "isPaused", rewardpoolconst.DefaultAction)

	checkInt(t, env.pool, big.NewInt(0), "totalDeposits")
	checkInt(t, env.pool, big.NewInt(0), "totalRewardsDeposited")
	checkInt(t, env.pool, big.NewInt(0), "accountCount")
}

func TestDeployWithRewardsToken(t *testing.T) {
	env := newTestEnv(t, poolConfig{withRewards: true})
	env.pool.Invoke(t, env.rewardsHash.BytesBE(), "rewardsToken")
}

func TestDeployInvalidAccount(t *testing.T) {
	e := newExecutor(t)
	c := neotest.CompileFile(t, e.CommitteeHash, poolPath, "config.yml")

	e.DeployContractCheckFAULT(t, c, []any{
		util.Uint160{}, util.Uint160{1}, []byte{}, 0, 0, 0, []any{},
	}, rewardpoolconst.ErrInvalidAccount)

	e.DeployContractCheckFAULT(t, c, []any{
		util.Uint160{1}, util.Uint160{2}, []byte{}, -1, 0, 0, []any{},
	}, rewardpoolconst.ErrInvalidLimits)
}

func TestOwnership(t *testing.T) {
	env := newTestEnv(t, poolConfig{})
	stranger := env.e.NewAccount(t)
	newOwner := env.e.NewAccount(t)

	env.as(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed, "transferOwnership", newOwner.ScriptHash())
	env.as(env.owner).InvokeFail(t, rewardpoolconst.ErrRenounceForbidden, "transferOwnership", util.Uint160{})

	h := env.as(env.owner).Invoke(t, stackitem.Null{}, "transferOwnership", newOwner.ScriptHash())
	env.e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: env.poolHash,
		Name:       "OwnershipTransferred",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.NewByteArray(env.owner.ScriptHash().BytesBE()),
			stackitem.NewByteArray(newOwner.ScriptHash().BytesBE()),
		}),
	})
	env.pool.Invoke(t, newOwner.ScriptHash().BytesBE(), "owner")

	env.as(env.owner).InvokeFail(t, common.ErrOwnerWitnessFailed, "pause", "")
	env.as(newOwner).Invoke(t, stackitem.Null{}, "pause", "")
}

func TestRenounceOwnership(t *testing.T) {
	env := newTestEnv(t, poolConfig{})

	env.as(env.owner).InvokeFail(t, rewardpoolconst.ErrRenounceForbidden, "renounceOwnership")
	env.as(env.e.NewAccount(t)).InvokeFail(t, rewardpoolconst.ErrRenounceForbidden, "renounceOwnership")
	env.pool.Invoke(t, env.owner.ScriptHash().BytesBE(), "owner")
}

func TestUpdate(t *testing.T) {
	env := newTestEnv(t, poolConfig{})
	c := neotest.CompileFile(t, env.e.CommitteeHash, poolPath, "config.yml")

	rawNef, err := c.NEF.Bytes()
	require.NoError(t, err)
	rawManifest, err := json.Marshal(c.Manifest)
	require.NoError(t, err)

	env.as(env.e.NewAccount(t)).InvokeFail(t, common.ErrOwnerWitnessFailed, "update", rawNef, rawManifest, nil)
	env.as(env.owner).InvokeFail(t, common.ErrAlreadyUpdated, "update", rawNef, rawManifest, nil)
}
