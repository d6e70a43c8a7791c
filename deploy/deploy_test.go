package deploy

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/config/netmode"
	"github.com/nspcc-dev/neo-go/pkg/consensus"
	"github.com/nspcc-dev/neo-go/pkg/core"
	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/network"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/services/rpcsrv"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/rewardpool-contract/common"
	"github.com/nspcc-dev/rewardpool-contract/rpc/rewardpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const contractPath = "../contracts/rewardpool"

func TestDeployData(t *testing.T) {
	var (
		owner  = util.Uint160{1}
		token  = util.Uint160{2}
		reward = util.Uint160{3}
		member = util.Uint160{4}
	)

	data := DeployData(RewardPoolConfig{
		Owner:        owner,
		DepositToken: token,
		UserMax:      big.NewInt(10),
		Whitelist:    []util.Uint160{member},
	})
	require.Equal(t, []any{
		owner, token, []byte{},
		big.NewInt(0), big.NewInt(10), big.NewInt(0),
		[]any{member},
	}, data)

	data = DeployData(RewardPoolConfig{Owner: owner, DepositToken: token, RewardsToken: &reward})
	require.Equal(t, reward.BytesBE(), data[2])
	require.Equal(t, []any{}, data[6])
}

func TestDeployInvalidParameters(t *testing.T) {
	acc, err := wallet.NewAccount()
	require.NoError(t, err)

	valid := func() Prm {
		return Prm{
			Logger:       zaptest.NewLogger(t),
			Blockchain:   new(rpcclient.Client),
			LocalAccount: acc,
			Contract:     CommonDeployPrm{Manifest: manifestNamed("RewardPool")},
			Config:       RewardPoolConfig{DepositToken: util.Uint160{1}},
		}
	}

	for name, corrupt := range map[string]func(*Prm){
		"no logger":         func(p *Prm) { p.Logger = nil },
		"no blockchain":     func(p *Prm) { p.Blockchain = nil },
		"no account":        func(p *Prm) { p.LocalAccount = nil },
		"no manifest":       func(p *Prm) { p.Contract.Manifest.Name = "" },
		"no deposit token":  func(p *Prm) { p.Config.DepositToken = util.Uint160{} },
		"negative user min": func(p *Prm) { p.Config.UserMin = big.NewInt(-1) },
	} {
		t.Run(name, func(t *testing.T) {
			prm := valid()
			corrupt(&prm)

			_, err := Deploy(context.Background(), prm)
			require.ErrorContains(t, err, "invalid parameters")
		})
	}

	prm := valid()
	require.NoError(t, prm.validate())
	require.Equal(t, acc.ScriptHash(), prm.Config.Owner)
}

func TestContractDeploy(t *testing.T) {
	acc, rpcClient := newChain(t)

	c := neotest.CompileFile(t, acc.ScriptHash(), contractPath, filepath.Join(contractPath, "config.yml"))

	var (
		depositToken = util.Uint160{1, 2, 3}
		member       = util.Uint160{4, 5, 6}
		deployPrm    = Prm{
			Logger:       zaptest.NewLogger(t),
			Blockchain:   rpcClient,
			LocalAccount: acc,
			Contract: CommonDeployPrm{
				NEF:      *c.NEF,
				Manifest: *c.Manifest,
			},
			Config: RewardPoolConfig{
				DepositToken: depositToken,
				UserMax:      big.NewInt(1000),
				Whitelist:    []util.Uint160{member},
			},
		}
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	address, err := Deploy(ctx, deployPrm)
	require.NoError(t, err)
	require.Equal(t, c.Hash, address)

	reader := rewardpool.NewReader(invoker.New(rpcClient, nil), address)

	owner, err := reader.Owner()
	require.NoError(t, err)
	require.Equal(t, acc.ScriptHash(), owner)

	token, err := reader.DepositToken()
	require.NoError(t, err)
	require.Equal(t, depositToken, token)

	_, err = reader.RewardsToken()
	require.ErrorIs(t, err, rewardpool.ErrRewardsTokenNotSet)

	limits, err := reader.GetLimits()
	require.NoError(t, err)
	require.EqualValues(t, 1000, limits.UserMax.Int64())

	ok, err := reader.IsWhitelisted(member)
	require.NoError(t, err)
	require.True(t, ok)

	paused, err := reader.IsPaused(rewardpool.ActionClaim)
	require.NoError(t, err)
	require.True(t, paused)

	t.Run("up-to-date", func(t *testing.T) {
		again, err := Deploy(ctx, deployPrm)
		require.NoError(t, err)
		require.Equal(t, address, again)
	})

	t.Run("update of the same version", func(t *testing.T) {
		prm := deployPrm
		prm.Address = address
		prm.Contract.NEF.Compiler = "other-compiler"
		prm.Contract.NEF.Checksum = prm.Contract.NEF.CalculateChecksum()

		_, err := Deploy(ctx, prm)
		require.ErrorContains(t, err, common.ErrAlreadyUpdated)
	})

	t.Run("missing contract", func(t *testing.T) {
		prm := deployPrm
		prm.Address = util.Uint160{0xff}

		_, err := Deploy(ctx, prm)
		require.ErrorContains(t, err, "is missing in the chain")
	})
}

// newChain runs single-node network and returns its RPC client along with
// the validator account having all the network GAS.
func newChain(t *testing.T) (*wallet.Account, *rpcclient.Internal) {
	validatorAcc, err := wallet.NewAccount()
	require.NoError(t, err)

	var (
		tmpDir     = t.TempDir()
		walletPath = filepath.Join(tmpDir, "wallet.json")
	)

	wlt, err := wallet.NewWallet(walletPath)
	require.NoError(t, err)

	err = validatorAcc.Encrypt("", keys.NEP2ScryptParams())
	require.NoError(t, err)
	wlt.Accounts = append(wlt.Accounts, validatorAcc)
	require.NoError(t, wlt.Save())

	var (
		cfg = config.Config{
			ApplicationConfiguration: config.ApplicationConfiguration{
				RPC: config.RPC{
					BasicService: config.BasicService{
						Enabled: true,
					},
					MaxGasInvoke: fixedn.Fixed8FromInt64(50),
				},
				Consensus: config.Consensus{
					Enabled: true,
					UnlockWallet: config.Wallet{
						Path:     walletPath,
						Password: "",
					},
				},
			},
			ProtocolConfiguration: config.ProtocolConfiguration{
				Magic:                       netmode.UnitTestNet,
				MaxTraceableBlocks:          1000,
				MaxValidUntilBlockIncrement: 1000 / 2,
				TimePerBlock:                50 * time.Millisecond,
				StandbyCommittee:            []string{hex.EncodeToString(validatorAcc.PublicKey().Bytes())},
				ValidatorsCount:             1,
				VerifyTransactions:          true,
			},
		}
		logger = zaptest.NewLogger(t)
		store  = storage.NewMemoryStore()
	)

	bc, err := core.NewBlockchain(store, config.Blockchain{ProtocolConfiguration: cfg.ProtocolConfiguration}, logger)
	require.NoError(t, err)
	go bc.Run()
	t.Cleanup(bc.Close)

	serverConfig, err := network.NewServerConfig(config.Config{ProtocolConfiguration: cfg.ProtocolConfiguration})
	require.NoError(t, err)
	serverConfig.UserAgent = fmt.Sprintf(config.UserAgentFormat, "something")
	netSrv, err := network.NewServer(serverConfig, bc, bc.GetStateSyncModule(), logger)
	require.NoError(t, err)
	cons, err := consensus.NewService(consensus.Config{
		Logger:                logger,
		Broadcast:             netSrv.BroadcastExtensible,
		Chain:                 bc,
		BlockQueue:            netSrv.GetBlockQueue(),
		ProtocolConfiguration: cfg.ProtocolConfiguration,
		RequestTx:             netSrv.RequestTx,
		StopTxFlow:            netSrv.StopTxFlow,
		Wallet:                cfg.ApplicationConfiguration.Consensus.UnlockWallet,
	})
	require.NoError(t, err)
	netSrv.AddConsensusService(cons, cons.OnPayload, cons.OnTransaction)
	go netSrv.Start()
	t.Cleanup(netSrv.Shutdown)

	errCh := make(chan error, 2)
	rpcServer := rpcsrv.New(bc, cfg.ApplicationConfiguration.RPC, netSrv, nil, logger, errCh)
	rpcServer.Start()
	t.Cleanup(rpcServer.Shutdown)

	rpcClient, err := rpcclient.NewInternal(context.TODO(), rpcServer.RegisterLocal)
	require.NoError(t, err)
	require.NoError(t, rpcClient.Init())

	// genesis GAS belongs to the validators' multi-signature account
	var validatorMulti = new(wallet.Account)
	*validatorMulti = *validatorAcc
	err = validatorMulti.ConvertMultisig(1, []*keys.PublicKey{validatorAcc.PublicKey()})
	require.NoError(t, err)

	return validatorMulti, rpcClient
}

func manifestNamed(name string) manifest.Manifest {
	return *manifest.NewManifest(name)
}
