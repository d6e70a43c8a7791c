// Package deploy provides deployment procedure of the RewardPool contract.
package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/rewardpool-contract/rpc/rewardpool"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// RewardPoolConfig groups initial settings of the RewardPool contract passed
// to it on deployment. They are ignored on update.
type RewardPoolConfig struct {
	// Account allowed to administer the contract. Defaults to the local
	// account.
	Owner util.Uint160

	// NEP-17 token accepted as deposits. Required.
	DepositToken util.Uint160

	// NEP-17 token distributed as rewards. Optional, can be set later.
	RewardsToken *util.Uint160

	// Deposit bounds, zero values disable corresponding checks.
	MaxTotal *big.Int
	UserMax  *big.Int
	UserMin  *big.Int

	// Initial whitelist, empty list allows everyone.
	Whitelist []util.Uint160
}

// Prm groups all parameters of the RewardPool deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance the contract is deployed to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// It's the contract sender, so it affects resulting contract address.
	LocalAccount *wallet.Account

	// Address of the already deployed contract to be updated. If zero, it's
	// calculated from the local account and Contract, so a contract with
	// changed NEF will be deployed anew.
	Address util.Uint160

	Contract CommonDeployPrm
	Config   RewardPoolConfig
}

// Deploy makes RewardPool contract represented by Prm.Contract available in
// the network represented by Prm.Blockchain and returns its address.
//
// If the contract is missing, it's deployed with Prm.Config. If the contract
// already exists and its NEF differs from the local one, the contract is
// updated, this requires the local account to be the owner of the contract.
// Otherwise Deploy does nothing.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	if err := prm.validate(); err != nil {
		return util.Uint160{}, fmt.Errorf("invalid parameters: %w", err)
	}

	var (
		l       = prm.Logger
		address = prm.Address
		known   = !address.Equals(util.Uint160{})
	)

	if !known {
		address = ContractAddress(prm.LocalAccount.ScriptHash(), prm.Contract)
	}

	l.Info("checking RewardPool contract presence in the chain...", zap.Stringer("address", address))

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return address, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	onChain, err := prm.Blockchain.GetContractStateByHash(address)
	if err != nil {
		if !isErrContractNotFound(err) {
			return address, fmt.Errorf("read contract state: %w", err)
		}

		if known {
			return address, fmt.Errorf("contract %s is missing in the chain", address.StringLE())
		}

		l.Info("RewardPool contract is missing in the chain, deploying...")

		err = deployContract(ctx, act, prm)
		if err != nil {
			return address, fmt.Errorf("deploy contract: %w", err)
		}

		l.Info("RewardPool contract successfully deployed", zap.Stringer("address", address))

		return address, nil
	}

	if onChain.NEF.Checksum == prm.Contract.NEF.Checksum {
		l.Info("RewardPool contract is already up-to-date", zap.Stringer("address", address),
			zap.Int32("id", onChain.ID), zap.Uint16("update counter", onChain.UpdateCounter))
		return address, nil
	}

	l.Info("RewardPool contract differs from the local one, updating...",
		zap.Uint32("on-chain checksum", onChain.NEF.Checksum), zap.Uint32("local checksum", prm.Contract.NEF.Checksum))

	err = updateContract(ctx, rewardpool.New(act, address), act, prm.Contract)
	if err != nil {
		return address, fmt.Errorf("update contract: %w", err)
	}

	l.Info("RewardPool contract successfully updated", zap.Stringer("address", address))

	return address, nil
}

// ContractAddress returns address of the contract deployed by the given
// sender.
func ContractAddress(sender util.Uint160, c CommonDeployPrm) util.Uint160 {
	return state.CreateContractHash(sender, c.NEF.Checksum, c.Manifest.Name)
}

// DeployData returns parameters of the RewardPool contract deployment
// in the form expected by the contract.
func DeployData(cfg RewardPoolConfig) []any {
	var rewardsToken = []byte{}
	if cfg.RewardsToken != nil {
		rewardsToken = cfg.RewardsToken.BytesBE()
	}

	whitelist := make([]any, 0, len(cfg.Whitelist))
	for i := range cfg.Whitelist {
		whitelist = append(whitelist, cfg.Whitelist[i])
	}

	return []any{
		cfg.Owner,
		cfg.DepositToken,
		rewardsToken,
		orZero(cfg.MaxTotal),
		orZero(cfg.UserMax),
		orZero(cfg.UserMin),
		whitelist,
	}
}

func (prm *Prm) validate() error {
	switch {
	case prm.Logger == nil:
		return errors.New("missing logger")
	case prm.Blockchain == nil:
		return errors.New("missing blockchain")
	case prm.LocalAccount == nil:
		return errors.New("missing local account")
	case prm.Contract.Manifest.Name == "":
		return errors.New("missing contract manifest")
	case prm.Config.DepositToken.Equals(util.Uint160{}):
		return errors.New("missing deposit token")
	}

	for _, v := range []*big.Int{prm.Config.MaxTotal, prm.Config.UserMax, prm.Config.UserMin} {
		if v != nil && v.Sign() < 0 {
			return fmt.Errorf("negative deposit limit %s", v)
		}
	}

	if prm.Config.Owner.Equals(util.Uint160{}) {
		prm.Config.Owner = prm.LocalAccount.ScriptHash()
	}

	return nil
}

func deployContract(ctx context.Context, act *actor.Actor, prm Prm) error {
	txHash, vub, err := management.New(act).Deploy(&prm.Contract.NEF, &prm.Contract.Manifest, DeployData(prm.Config))
	return await(ctx, act, txHash, vub, err)
}

func updateContract(ctx context.Context, c *rewardpool.Contract, act *actor.Actor, prm CommonDeployPrm) error {
	bNEF, err := prm.NEF.Bytes()
	if err != nil {
		return fmt.Errorf("encode NEF: %w", err)
	}

	jManifest, err := json.Marshal(&prm.Manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	txHash, vub, err := c.Update(bNEF, jManifest, nil)
	return await(ctx, act, txHash, vub, err)
}

// await waits for the transaction to be accepted and checks that it has been
// successfully executed.
func await(ctx context.Context, act *actor.Actor, txHash util.Uint256, vub uint32, err error) error {
	if err != nil {
		return fmt.Errorf("send transaction: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	res, err := act.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for transaction %s: %w", txHash.StringLE(), err)
	}

	if res.VMState != vmstate.Halt {
		return fmt.Errorf("transaction %s failed: %s", txHash.StringLE(), res.FaultException)
	}

	return nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return v
}
