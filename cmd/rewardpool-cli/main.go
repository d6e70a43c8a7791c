package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

const (
	configFlag   = "config"
	rpcFlag      = "rpc"
	walletFlag   = "wallet"
	addressFlag  = "address"
	contractFlag = "contract"
	timeoutFlag  = "timeout"
	logLevelFlag = "log-level"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rewardpool-cli"
	app.Usage = "Operate RewardPool contract deployed in Neo network"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: configFlag + ", c", Usage: "Path to the YAML configuration file"},
		cli.StringFlag{Name: rpcFlag + ", r", Usage: "Neo RPC endpoint"},
		cli.StringFlag{Name: walletFlag + ", w", Usage: "Path to the NEP-6 wallet"},
		cli.StringFlag{Name: addressFlag + ", a", Usage: "Wallet account to sign transactions with (default account if empty)"},
		cli.StringFlag{Name: contractFlag, Usage: "RewardPool contract address or script hash"},
		cli.DurationFlag{Name: timeoutFlag, Usage: "Timeout of RPC connection and requests"},
		cli.StringFlag{Name: logLevelFlag, Usage: "Logging level (debug, info, warn, error)"},
	}
	app.Commands = []cli.Command{
		{
			Name:   "status",
			Usage:  "Print contract settings and totals",
			Action: action(status),
		},
		{
			Name:      "account",
			Usage:     "Print deposit and rewards of the account",
			ArgsUsage: "<account>",
			Action:    action(accountInfo),
		},
		{
			Name:  "accounts",
			Usage: "List depositors in the order of their first deposits",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "offset", Usage: "Index of the first depositor"},
				cli.IntFlag{Name: "limit", Value: 100, Usage: "Max number of depositors"},
			},
			Action: action(listAccounts),
		},
		{
			Name:      "deposit",
			Usage:     "Deposit tokens of the signing account into the pool",
			ArgsUsage: "<amount>",
			Action:    action(deposit),
		},
		{
			Name:   "claim",
			Usage:  "Claim available rewards of the signing account",
			Action: action(claim),
		},
		{
			Name:      "pause",
			Usage:     "Pause an action (deposit, claim, default or custom one)",
			ArgsUsage: "<action>",
			Action:    action(pause),
		},
		{
			Name:      "unpause",
			Usage:     "Unpause an action (deposit, claim, default or custom one)",
			ArgsUsage: "<action>",
			Action:    action(unpause),
		},
		{
			Name:  "whitelist",
			Usage: "Manage depositors whitelist",
			Subcommands: []cli.Command{
				{
					Name:   "list",
					Usage:  "List whitelisted accounts",
					Action: action(listWhitelist),
				},
				{
					Name:      "add",
					Usage:     "Add accounts to the whitelist",
					ArgsUsage: "<account> [<account> ...]",
					Action:    action(addToWhitelist),
				},
				{
					Name:      "remove",
					Usage:     "Remove accounts from the whitelist",
					ArgsUsage: "<account> [<account> ...]",
					Action:    action(removeFromWhitelist),
				},
			},
		},
		{
			Name:   "set-limits",
			Usage:  "Set deposit bounds, zero disables a bound",
			Flags:  limitFlags,
			Action: action(setLimits),
		},
		{
			Name:      "set-rewards-token",
			Usage:     "Set token rewards are paid in",
			ArgsUsage: "<token>",
			Action:    action(setRewardsToken),
		},
		{
			Name:      "deposit-rewards",
			Usage:     "Fund rewards for distribution between depositors",
			ArgsUsage: "<amount>",
			Action:    action(depositRewards),
		},
		{
			Name:      "withdraw-rewards",
			Usage:     "Withdraw unclaimed rewards",
			ArgsUsage: "<amount>",
			Action:    action(withdrawRewards),
		},
		{
			Name:      "withdraw-deposits",
			Usage:     "Withdraw deposited tokens",
			ArgsUsage: "<amount>",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "pause", Usage: "Pause deposits along with the withdrawal"},
			},
			Action: action(withdrawDeposits),
		},
		{
			Name:      "transfer-ownership",
			Usage:     "Pass contract administration to another account",
			ArgsUsage: "<account>",
			Action:    action(transferOwnership),
		},
		{
			Name:   "deploy",
			Usage:  "Deploy the contract or update already deployed one",
			Flags:  deployFlags,
			Action: action(deployContract),
		},
		{
			Name:  "dump",
			Usage: "Save contract state and storage to the local directory",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "out", Value: "dumps", Usage: "Directory to save dump to"},
				cli.StringFlag{Name: "label", Usage: "Label of the network (e.g. 'testnet')"},
			},
			Action: action(dumpContract),
		},
		{
			Name:      "audit",
			Usage:     "Check consistency of the dumped contract storages",
			ArgsUsage: "<dir>",
			Action:    auditDumps,
		},
	}

	return app
}

var limitFlags = []cli.Flag{
	cli.StringFlag{Name: "max-total", Value: "0", Usage: "Max total of deposits"},
	cli.StringFlag{Name: "user-max", Value: "0", Usage: "Max deposit of an account"},
	cli.StringFlag{Name: "user-min", Value: "0", Usage: "Min deposit of an account"},
}

var deployFlags = append([]cli.Flag{
	cli.StringFlag{Name: "in", Value: "contracts/rewardpool", Usage: "Directory with contract.nef and manifest.json"},
	cli.StringFlag{Name: "deposit-token", Usage: "Token accepted as deposits"},
	cli.StringFlag{Name: "rewards-token", Usage: "Token rewards are paid in"},
	cli.StringFlag{Name: "owner", Usage: "Contract owner (signing account if empty)"},
	cli.StringSliceFlag{Name: "whitelisted", Usage: "Initially whitelisted account, can be repeated"},
}, limitFlags...)
