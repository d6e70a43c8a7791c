package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/rewardpool-contract/rpc/rewardpool"
	"github.com/urfave/cli"
)

// whitelist is expanded at once, bigger lists are rare.
const maxWhitelistItems = 1000

func status(c *cli.Context, e *env) error {
	if err := e.requireContract(); err != nil {
		return err
	}

	r := e.reader
	w := c.App.Writer

	version, err := r.Version()
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}

	owner, err := r.Owner()
	if err != nil {
		return fmt.Errorf("read owner: %w", err)
	}

	dt, err := e.depositToken()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Contract:       %s (version %s)\n", e.pool.StringLE(), version)
	fmt.Fprintf(w, "Owner:          %s\n", address.Uint160ToString(owner))
	fmt.Fprintf(w, "Deposit token:  %s (%s)\n", dt.hash.StringLE(), dt.symbol)

	rt, err := e.rewardsToken()
	switch {
	case errors.Is(err, rewardpool.ErrRewardsTokenNotSet):
		fmt.Fprintf(w, "Rewards token:  not set\n")
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "Rewards token:  %s (%s)\n", rt.hash.StringLE(), rt.symbol)
	}

	limits, err := r.GetLimits()
	if err != nil {
		return fmt.Errorf("read limits: %w", err)
	}

	fmt.Fprintf(w, "Max total:      %s\n", formatLimit(dt, limits.Max))
	fmt.Fprintf(w, "User max:       %s\n", formatLimit(dt, limits.UserMax))
	fmt.Fprintf(w, "User min:       %s\n", formatLimit(dt, limits.UserMin))

	for _, a := range []rewardpool.Action{rewardpool.ActionDeposit, rewardpool.ActionClaim, rewardpool.ActionDefault} {
		paused, err := r.IsPaused(a)
		if err != nil {
			return fmt.Errorf("read %s pause: %w", a, err)
		}
		fmt.Fprintf(w, "Paused %-8s %t\n", a.String()+":", paused)
	}

	total, err := r.TotalDeposits()
	if err != nil {
		return fmt.Errorf("read total deposits: %w", err)
	}

	count, err := r.AccountCount()
	if err != nil {
		return fmt.Errorf("read account count: %w", err)
	}

	wl, err := r.WhitelistLength()
	if err != nil {
		return fmt.Errorf("read whitelist length: %w", err)
	}

	fmt.Fprintf(w, "Total deposits: %s by %s accounts\n", dt.format(total), count)
	fmt.Fprintf(w, "Whitelisted:    %s\n", wl)

	if rt.symbol == "" {
		return nil
	}

	funded, err := r.TotalRewardsDeposited()
	if err != nil {
		return fmt.Errorf("read total rewards: %w", err)
	}

	claimed, err := r.TotalRewardsClaimed()
	if err != nil {
		return fmt.Errorf("read total claimed: %w", err)
	}

	fmt.Fprintf(w, "Total rewards:  %s, claimed %s\n", rt.format(funded), rt.format(claimed))

	return nil
}

func formatLimit(t token, v *big.Int) string {
	if v.Sign() == 0 {
		return "unlimited"
	}
	return t.format(v)
}

func accountInfo(c *cli.Context, e *env) error {
	if err := e.requireContract(); err != nil {
		return err
	}

	acc, err := parseHash(c.Args().First())
	if err != nil {
		return err
	}

	r := e.reader
	w := c.App.Writer

	dt, err := e.depositToken()
	if err != nil {
		return err
	}

	dep, err := r.DepositOf(acc)
	if err != nil {
		return fmt.Errorf("read deposit: %w", err)
	}

	share, err := r.ShareOf(acc)
	if err != nil {
		return fmt.Errorf("read share: %w", err)
	}

	whitelisted, err := r.IsWhitelisted(acc)
	if err != nil {
		return fmt.Errorf("read whitelist: %w", err)
	}

	fmt.Fprintf(w, "Account:     %s\n", address.Uint160ToString(acc))
	fmt.Fprintf(w, "Whitelisted: %t\n", whitelisted)
	fmt.Fprintf(w, "Deposit:     %s\n", dt.format(dep))
	fmt.Fprintf(w, "Share:       %s\n", formatShare(share))

	rt, err := e.rewardsToken()
	if errors.Is(err, rewardpool.ErrRewardsTokenNotSet) {
		return nil
	} else if err != nil {
		return err
	}

	entitlement, err := r.EntitlementOf(acc)
	if err != nil {
		return fmt.Errorf("read entitlement: %w", err)
	}

	claimed, err := r.ClaimedOf(acc)
	if err != nil {
		return fmt.Errorf("read claimed rewards: %w", err)
	}

	claimable, err := r.ClaimableOf(acc)
	if err != nil {
		return fmt.Errorf("read claimable rewards: %w", err)
	}

	fmt.Fprintf(w, "Entitlement: %s\n", rt.format(entitlement))
	fmt.Fprintf(w, "Claimed:     %s\n", rt.format(claimed))
	fmt.Fprintf(w, "Claimable:   %s\n", rt.format(claimable))

	return nil
}

func listAccounts(c *cli.Context, e *env) error {
	if err := e.requireContract(); err != nil {
		return err
	}

	offset, limit := c.Int("offset"), c.Int("limit")
	if offset < 0 || limit < 0 {
		return errors.New("offset and limit must not be negative")
	}

	dt, err := e.depositToken()
	if err != nil {
		return err
	}

	accs, err := e.reader.Accounts(big.NewInt(int64(offset)), big.NewInt(int64(limit)))
	if err != nil {
		return fmt.Errorf("read accounts: %w", err)
	}

	for i := range accs {
		dep, err := e.reader.DepositOf(accs[i])
		if err != nil {
			return fmt.Errorf("read deposit of %s: %w", accs[i].StringLE(), err)
		}

		fmt.Fprintf(c.App.Writer, "%d\t%s\t%s\n", offset+i, address.Uint160ToString(accs[i]), dt.format(dep))
	}

	return nil
}

func listWhitelist(c *cli.Context, e *env) error {
	if err := e.requireContract(); err != nil {
		return err
	}

	items, err := e.reader.IterateWhitelistExpanded(maxWhitelistItems)
	if err != nil {
		return fmt.Errorf("read whitelist: %w", err)
	}

	if len(items) == 0 {
		fmt.Fprintln(c.App.Writer, "whitelist is empty, everyone is allowed")
		return nil
	}

	for i := range items {
		b, err := items[i].TryBytes()
		if err != nil {
			return fmt.Errorf("invalid whitelist item #%d: %w", i, err)
		}

		h, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return fmt.Errorf("invalid whitelist item #%d: %w", i, err)
		}

		fmt.Fprintln(c.App.Writer, address.Uint160ToString(h))
	}

	return nil
}
