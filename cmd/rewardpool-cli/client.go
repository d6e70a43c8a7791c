package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/rewardpool-contract/rpc/rewardpool"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var errMissingContract = errors.New("missing contract address")

// env groups resources shared by the commands.
type env struct {
	log *zap.Logger
	cfg Config
	rpc *rpcclient.Client
	inv *invoker.Invoker

	// Zero if the contract isn't configured.
	pool   util.Uint160
	reader *rewardpool.ContractReader
}

// newEnv reads configuration and connects to the RPC node. Resulting env
// must be closed.
func newEnv(c *cli.Context) (*env, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	log, err := cfg.newLogger()
	if err != nil {
		return nil, err
	}

	if cfg.RPC.Endpoint == "" {
		return nil, errors.New("missing RPC endpoint")
	}

	log.Debug("connecting to RPC node...", zap.String("endpoint", cfg.RPC.Endpoint))

	rpc, err := rpcclient.New(context.Background(), cfg.RPC.Endpoint, rpcclient.Options{
		DialTimeout:    cfg.RPC.DialTimeout,
		RequestTimeout: cfg.RPC.RequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = rpc.Init()
	if err != nil {
		rpc.Close()
		return nil, fmt.Errorf("init RPC client: %w", err)
	}

	e := &env{
		log: log,
		cfg: cfg,
		rpc: rpc,
		inv: invoker.New(rpc, nil),
	}

	if cfg.Contract != "" {
		e.pool, err = parseHash(cfg.Contract)
		if err != nil {
			rpc.Close()
			return nil, fmt.Errorf("invalid contract address: %w", err)
		}
		e.reader = rewardpool.NewReader(e.inv, e.pool)
	}

	return e, nil
}

func (e *env) close() {
	e.rpc.Close()
	_ = e.log.Sync()
}

func (e *env) requireContract() error {
	if e.reader == nil {
		return errMissingContract
	}
	return nil
}

// account opens configured wallet and returns decrypted account.
func (e *env) account() (*wallet.Account, error) {
	if e.cfg.Wallet.Path == "" {
		return nil, errors.New("missing wallet")
	}

	w, err := wallet.NewWalletFromFile(e.cfg.Wallet.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var h util.Uint160
	if e.cfg.Wallet.Address != "" {
		h, err = parseHash(e.cfg.Wallet.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid wallet account: %w", err)
		}
	} else {
		h = w.GetChangeAddress()
	}

	acc := w.GetAccount(h)
	if acc == nil {
		return nil, fmt.Errorf("account %s is missing in the wallet", address.Uint160ToString(h))
	}

	err = acc.Decrypt(e.cfg.Wallet.Password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

// contract returns RewardPool contract client signing transactions with the
// configured account. The signature is valid for the contract and its tokens
// only.
func (e *env) contract() (*rewardpool.Contract, *actor.Actor, *wallet.Account, error) {
	if err := e.requireContract(); err != nil {
		return nil, nil, nil, err
	}

	acc, err := e.account()
	if err != nil {
		return nil, nil, nil, err
	}

	allowed := []util.Uint160{e.pool}

	token, err := e.reader.DepositToken()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read deposit token: %w", err)
	}
	allowed = append(allowed, token)

	token, err = e.reader.RewardsToken()
	if err == nil {
		allowed = append(allowed, token)
	} else if !errors.Is(err, rewardpool.ErrRewardsTokenNotSet) {
		return nil, nil, nil, fmt.Errorf("read rewards token: %w", err)
	}

	act, err := actor.New(e.rpc, []actor.SignerAccount{{
		Signer: transaction.Signer{
			Account:          acc.ScriptHash(),
			Scopes:           transaction.CustomContracts,
			AllowedContracts: allowed,
		},
		Account: acc,
	}})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init actor: %w", err)
	}

	return rewardpool.New(act, e.pool), act, acc, nil
}

// await returns function waiting for the sent transaction. The function
// returns execution log if the transaction has been successfully executed.
// Transaction sending results are expected to be passed to it directly:
//
//	log, err := e.await(act)(pool.Deposit(acc, amount))
func (e *env) await(act *actor.Actor) func(util.Uint256, uint32, error) (*result.ApplicationLog, error) {
	return func(txHash util.Uint256, vub uint32, err error) (*result.ApplicationLog, error) {
		if err != nil {
			return nil, fmt.Errorf("send transaction: %w", err)
		}

		e.log.Info("transaction sent, waiting...", zap.Stringer("hash", txHash), zap.Uint32("valid until block", vub))

		res, err := act.Wait(txHash, vub, nil)
		if err != nil {
			return nil, fmt.Errorf("wait for transaction %s: %w", txHash.StringLE(), err)
		}

		if res.VMState != vmstate.Halt {
			return nil, fmt.Errorf("transaction %s failed: %s", txHash.StringLE(), res.FaultException)
		}

		e.log.Info("transaction successfully executed", zap.Stringer("hash", txHash),
			zap.Int64("GAS consumed", res.GasConsumed))

		return &result.ApplicationLog{
			Container:  res.Container,
			Executions: []state.Execution{res.Execution},
		}, nil
	}
}

// token is a NEP-17 token used to format and parse amounts.
type token struct {
	hash     util.Uint160
	symbol   string
	decimals int
}

func (e *env) token(h util.Uint160) (token, error) {
	r := nep17.NewReader(e.inv, h)

	decimals, err := r.Decimals()
	if err != nil {
		return token{}, fmt.Errorf("read decimals of token %s: %w", h.StringLE(), err)
	}

	symbol, err := r.Symbol()
	if err != nil {
		return token{}, fmt.Errorf("read symbol of token %s: %w", h.StringLE(), err)
	}

	return token{hash: h, symbol: symbol, decimals: decimals}, nil
}

func (e *env) depositToken() (token, error) {
	h, err := e.reader.DepositToken()
	if err != nil {
		return token{}, fmt.Errorf("read deposit token: %w", err)
	}
	return e.token(h)
}

func (e *env) rewardsToken() (token, error) {
	h, err := e.reader.RewardsToken()
	if err != nil {
		return token{}, fmt.Errorf("read rewards token: %w", err)
	}
	return e.token(h)
}

func (t token) format(v *big.Int) string {
	return fixedn.ToString(v, t.decimals) + " " + t.symbol
}

func (t token) parse(s string) (*big.Int, error) {
	v, err := fixedn.FromString(s, t.decimals)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return v, nil
}

// positive parses amount which must be greater than zero.
func (t token) positive(s string) (*big.Int, error) {
	v, err := t.parse(s)
	if err != nil {
		return nil, err
	}
	if v.Sign() <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %s", s)
	}
	return v, nil
}

// formatShare formats share of the pool as percentage.
func formatShare(share *big.Int) string {
	// share is scaled by 10^8, percentage by 10^2
	return fixedn.ToString(share, 6) + "%"
}

// action runs f with the initialized env and converts resulting error to the
// command exit error.
func action(f func(*cli.Context, *env) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		e, err := newEnv(c)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer e.close()

		err = f(c, e)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	}
}
