package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrTransferFailed is thrown when NEP-17 token contract refuses to move
// funds, e.g. because of insufficient balance or missing witness.
const ErrTransferFailed = "token transfer failed"

// TransferFrom pulls amount of the NEP-17 token from the account to the
// executing contract. Token contract checks witness of the account, so the
// transaction must be signed with a scope allowing the token to use it.
func TransferFrom(token, from interop.Hash160, amount int) {
	to := runtime.GetExecutingScriptHash()
	transfer(token, from, to, amount)
}

// TransferTo pushes amount of the NEP-17 token from the executing contract
// to the account.
func TransferTo(token, to interop.Hash160, amount int) {
	from := runtime.GetExecutingScriptHash()
	transfer(token, from, to, amount)
}

func transfer(token, from, to interop.Hash160, amount int) {
	ok := contract.Call(token, "transfer", contract.All, from, to, amount, nil).(bool)
	if !ok {
		panic(ErrTransferFailed)
	}
}
