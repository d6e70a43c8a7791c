package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSigningAccountCommands(t *testing.T) {
	app := newApp()
	app.Writer = new(bytes.Buffer)
	app.ErrWriter = new(bytes.Buffer)

	// contract checks the witness of the account, so only the signer can
	// deposit and claim for itself
	for _, name := range []string{"deposit", "claim"} {
		cmd := app.Command(name)
		require.NotNil(t, cmd, name)
		require.Empty(t, cmd.Flags, name)
	}

	err := app.Run([]string{"rewardpool-cli", "deposit", "--for", "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP", "1"})
	require.ErrorContains(t, err, "flag provided but not defined")
}
