package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/rewardpool-contract/contracts"
	"github.com/nspcc-dev/rewardpool-contract/deploy"
	"github.com/nspcc-dev/rewardpool-contract/internal/dump"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// name of the contract in the dumps.
const dumpContractName = "rewardpool"

func deployContract(c *cli.Context, e *env) error {
	acc, err := e.account()
	if err != nil {
		return err
	}

	ctr, err := contracts.ReadDir(c.String("in"))
	if err != nil {
		return err
	}

	prm := deploy.Prm{
		Logger:       e.log,
		Blockchain:   e.rpc,
		LocalAccount: acc,
		Address:      e.pool,
		Contract: deploy.CommonDeployPrm{
			NEF:      ctr.NEF,
			Manifest: ctr.Manifest,
		},
	}

	if prm.Address.Equals(util.Uint160{}) {
		err = fillDeployConfig(c, e, &prm.Config)
		if err != nil {
			return err
		}
	} else {
		e.log.Info("contract address is set, only update is possible", zap.Stringer("address", prm.Address))
	}

	h, err := deploy.Deploy(context.Background(), prm)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "RewardPool contract: %s (%s)\n", h.StringLE(), address.Uint160ToString(h))

	return nil
}

func fillDeployConfig(c *cli.Context, e *env, cfg *deploy.RewardPoolConfig) error {
	var err error

	cfg.DepositToken, err = parseHash(c.String("deposit-token"))
	if err != nil {
		return fmt.Errorf("--deposit-token: %w", err)
	}

	if s := c.String("rewards-token"); s != "" {
		h, err := parseHash(s)
		if err != nil {
			return fmt.Errorf("--rewards-token: %w", err)
		}
		cfg.RewardsToken = &h
	}

	if s := c.String("owner"); s != "" {
		cfg.Owner, err = parseHash(s)
		if err != nil {
			return fmt.Errorf("--owner: %w", err)
		}
	}

	cfg.Whitelist, err = parseHashes(c.StringSlice("whitelisted"))
	if err != nil {
		return fmt.Errorf("--whitelisted: %w", err)
	}

	dt, err := e.token(cfg.DepositToken)
	if err != nil {
		return err
	}

	limits, err := parseLimits(c, dt)
	if err != nil {
		return err
	}

	cfg.MaxTotal, cfg.UserMax, cfg.UserMin = limits.Max, limits.UserMax, limits.UserMin

	return nil
}

func dumpContract(c *cli.Context, e *env) error {
	if err := e.requireContract(); err != nil {
		return err
	}

	label := c.String("label")
	if label == "" {
		return fmt.Errorf("%w: --label", errMissingArgument)
	}

	height, err := e.rpc.GetBlockCount()
	if err != nil {
		return fmt.Errorf("get number of the latest block: %w", err)
	}

	// state of the latest block may be not ready yet
	height--

	st, err := e.rpc.GetContractStateByHash(e.pool)
	if err != nil {
		return fmt.Errorf("get contract state: %w", err)
	}

	out := c.String("out")

	err = os.MkdirAll(out, 0o700)
	if err != nil {
		return fmt.Errorf("create dump dir: %w", err)
	}

	d, err := dump.NewCreator(out, dump.ID{Label: label, Block: height})
	if err != nil {
		return fmt.Errorf("init local dumper: %w", err)
	}
	defer d.Close()

	w := d.AddContract(dumpContractName, *st)

	err = e.iterateContractStorage(height, e.pool, w.Write)
	if err != nil {
		return fmt.Errorf("iterate contract storage: %w", err)
	}

	err = d.Flush()
	if err != nil {
		return fmt.Errorf("flush dump: %w", err)
	}

	e.log.Info("contract is successfully dumped", zap.String("dir", out), zap.Uint32("block", height))

	return nil
}

// iterateContractStorage iterates over all storage items of the Neo smart
// contract referenced by given address at the given height and passes them
// into f. iterateContractStorage breaks on any f's error and returns it.
func (e *env) iterateContractStorage(height uint32, contract util.Uint160, f func(key, value []byte) error) error {
	stateRoot, err := e.rpc.GetStateRootByHeight(height)
	if err != nil {
		return fmt.Errorf("get state root at block #%d: %w", height, err)
	}

	var start []byte

	for {
		res, err := e.rpc.FindStates(stateRoot.Root, contract, nil, start, nil)
		if err != nil {
			return fmt.Errorf("get historical storage items of the requested contract at state root '%s': %w", stateRoot.Root, err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}

func auditDumps(c *cli.Context) error {
	dir := c.Args().First()
	if dir == "" {
		return cli.NewExitError(fmt.Errorf("%w: dump directory", errMissingArgument), 1)
	}

	var (
		w      = c.App.Writer
		failed int
	)

	err := dump.IterateDumps(dir, func(id dump.ID, r *dump.Reader) {
		l, err := r.Ledger(dumpContractName)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", id, err)
			failed++
			return
		}

		fmt.Fprintf(w, "%s: %d depositors, deposits %s, rewards %s, claimed %s\n",
			id, len(l.Deposits), l.TotalDeposits, l.TotalRewards, l.TotalClaimed)

		err = l.Check()
		if err != nil {
			fmt.Fprintf(w, "%s: inconsistent storage:\n%v\n", id, err)
			failed++
		}
	})
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if failed > 0 {
		return cli.NewExitError(fmt.Sprintf("%d dumps failed the audit", failed), 1)
	}

	return nil
}
