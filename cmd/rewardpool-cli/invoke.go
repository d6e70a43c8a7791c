package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/rewardpool-contract/rpc/rewardpool"
	"github.com/urfave/cli"
)

var errMissingArgument = errors.New("missing argument")

func firstArg(c *cli.Context) (string, error) {
	if c.NArg() == 0 {
		return "", fmt.Errorf("%w, see '%s --help'", errMissingArgument, c.Command.FullName())
	}
	return c.Args().First(), nil
}

func deposit(c *cli.Context, e *env) error {
	s, err := firstArg(c)
	if err != nil {
		return err
	}

	pool, act, signer, err := e.contract()
	if err != nil {
		return err
	}

	dt, err := e.depositToken()
	if err != nil {
		return err
	}

	amount, err := dt.positive(s)
	if err != nil {
		return err
	}

	log, err := e.await(act)(pool.Deposit(signer.ScriptHash(), amount))
	if err != nil {
		return err
	}

	evs, err := rewardpool.DepositAddedEventsFromApplicationLog(log)
	if err != nil {
		return fmt.Errorf("parse deposit events: %w", err)
	}

	for _, ev := range evs {
		fmt.Fprintf(c.App.Writer, "%s deposit: %s -> %s\n", address.Uint160ToString(ev.Account),
			dt.format(ev.OldBalance), dt.format(ev.NewBalance))
	}

	return nil
}

func claim(c *cli.Context, e *env) error {
	pool, act, signer, err := e.contract()
	if err != nil {
		return err
	}

	rt, err := e.rewardsToken()
	if err != nil {
		return err
	}

	log, err := e.await(act)(pool.ClaimRewards(signer.ScriptHash()))
	if err != nil {
		return err
	}

	evs, err := rewardpool.RewardsClaimedEventsFromApplicationLog(log)
	if err != nil {
		return fmt.Errorf("parse claim events: %w", err)
	}

	for _, ev := range evs {
		fmt.Fprintf(c.App.Writer, "%s claimed %s, %s in total\n", address.Uint160ToString(ev.Account),
			rt.format(new(big.Int).Sub(ev.NewClaimed, ev.OldClaimed)), rt.format(ev.NewClaimed))
	}

	return nil
}

func pause(c *cli.Context, e *env) error {
	return setPaused(c, e, true)
}

func unpause(c *cli.Context, e *env) error {
	return setPaused(c, e, false)
}

func setPaused(c *cli.Context, e *env, paused bool) error {
	s, err := firstArg(c)
	if err != nil {
		return err
	}

	a, err := rewardpool.ParseAction(s)
	if err != nil {
		return err
	}

	pool, act, _, err := e.contract()
	if err != nil {
		return err
	}

	if paused {
		_, err = e.await(act)(pool.Pause(a))
	} else {
		_, err = e.await(act)(pool.Unpause(a))
	}
	return err
}

func addToWhitelist(c *cli.Context, e *env) error {
	return changeWhitelist(c, e, true)
}

func removeFromWhitelist(c *cli.Context, e *env) error {
	return changeWhitelist(c, e, false)
}

func changeWhitelist(c *cli.Context, e *env, add bool) error {
	if _, err := firstArg(c); err != nil {
		return err
	}

	accs, err := parseHashes(c.Args())
	if err != nil {
		return err
	}

	pool, act, _, err := e.contract()
	if err != nil {
		return err
	}

	if add {
		_, err = e.await(act)(pool.AddToWhitelist(accs))
	} else {
		_, err = e.await(act)(pool.RemoveFromWhitelist(accs))
	}
	return err
}

func setLimits(c *cli.Context, e *env) error {
	pool, act, _, err := e.contract()
	if err != nil {
		return err
	}

	dt, err := e.depositToken()
	if err != nil {
		return err
	}

	limits, err := parseLimits(c, dt)
	if err != nil {
		return err
	}

	_, err = e.await(act)(pool.SetLimits(limits.Max, limits.UserMax, limits.UserMin))
	return err
}

func parseLimits(c *cli.Context, t token) (rewardpool.RewardPoolLimits, error) {
	var (
		res    rewardpool.RewardPoolLimits
		fields = map[string]**big.Int{
			"max-total": &res.Max,
			"user-max":  &res.UserMax,
			"user-min":  &res.UserMin,
		}
	)

	for flag, field := range fields {
		v, err := t.parse(c.String(flag))
		if err != nil {
			return res, fmt.Errorf("--%s: %w", flag, err)
		}
		if v.Sign() < 0 {
			return res, fmt.Errorf("--%s must not be negative", flag)
		}
		*field = v
	}

	return res, nil
}

func setRewardsToken(c *cli.Context, e *env) error {
	s, err := firstArg(c)
	if err != nil {
		return err
	}

	h, err := parseHash(s)
	if err != nil {
		return err
	}

	pool, act, _, err := e.contract()
	if err != nil {
		return err
	}

	_, err = e.await(act)(pool.SetRewardsToken(h))
	return err
}

func depositRewards(c *cli.Context, e *env) error {
	s, err := firstArg(c)
	if err != nil {
		return err
	}

	pool, act, _, err := e.contract()
	if err != nil {
		return err
	}

	rt, err := e.rewardsToken()
	if err != nil {
		return err
	}

	amount, err := rt.positive(s)
	if err != nil {
		return err
	}

	log, err := e.await(act)(pool.DepositRewards(amount))
	if err != nil {
		return err
	}

	evs, err := rewardpool.RewardsDepositedEventsFromApplicationLog(log)
	if err != nil {
		return fmt.Errorf("parse funding events: %w", err)
	}

	for _, ev := range evs {
		fmt.Fprintf(c.App.Writer, "rewards funded: %s, total %s\n", rt.format(ev.Amount), rt.format(ev.Total))
	}

	return nil
}

func withdrawRewards(c *cli.Context, e *env) error {
	s, err := firstArg(c)
	if err != nil {
		return err
	}

	pool, act, _, err := e.contract()
	if err != nil {
		return err
	}

	rt, err := e.rewardsToken()
	if err != nil {
		return err
	}

	amount, err := rt.positive(s)
	if err != nil {
		return err
	}

	log, err := e.await(act)(pool.WithdrawRewards(amount))
	if err != nil {
		return err
	}

	return printWithdrawals(c, log, rt)
}

func withdrawDeposits(c *cli.Context, e *env) error {
	s, err := firstArg(c)
	if err != nil {
		return err
	}

	pool, act, _, err := e.contract()
	if err != nil {
		return err
	}

	dt, err := e.depositToken()
	if err != nil {
		return err
	}

	amount, err := dt.positive(s)
	if err != nil {
		return err
	}

	log, err := e.await(act)(pool.WithdrawDeposits(amount, c.Bool("pause")))
	if err != nil {
		return err
	}

	return printWithdrawals(c, log, dt)
}

func printWithdrawals(c *cli.Context, log *result.ApplicationLog, t token) error {
	evs, err := rewardpool.FundsWithdrawnEventsFromApplicationLog(log)
	if err != nil {
		return fmt.Errorf("parse withdrawal events: %w", err)
	}

	for _, ev := range evs {
		fmt.Fprintf(c.App.Writer, "%s withdrawn to %s\n", t.format(ev.Amount), address.Uint160ToString(ev.To))
	}

	return nil
}

func transferOwnership(c *cli.Context, e *env) error {
	s, err := firstArg(c)
	if err != nil {
		return err
	}

	h, err := parseHash(s)
	if err != nil {
		return err
	}

	pool, act, _, err := e.contract()
	if err != nil {
		return err
	}

	_, err = e.await(act)(pool.TransferOwnership(h))
	return err
}
