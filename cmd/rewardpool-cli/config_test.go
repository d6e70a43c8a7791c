package main

import (
	"bytes"
	"flag"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/rewardpool-contract/internal/dump"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

const testConfig = `
rpc:
  endpoint: http://localhost:30333
  dial_timeout: 5s
wallet:
  path: /etc/wallet.json
  address: NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP
contract: 0x0102030405060708090a0b0c0d0e0f1011121314
logger:
  level: debug
`

func writeConfig(t *testing.T) string {
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(testConfig), 0o600))
	return p
}

func TestReadConfig(t *testing.T) {
	cfg, err := readConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)

	cfg, err = readConfig(writeConfig(t))
	require.NoError(t, err)
	require.Equal(t, "http://localhost:30333", cfg.RPC.Endpoint)
	require.Equal(t, 5*time.Second, cfg.RPC.DialTimeout)
	require.Equal(t, defaultRequestTimeout, cfg.RPC.RequestTimeout)
	require.Equal(t, "/etc/wallet.json", cfg.Wallet.Path)
	require.Equal(t, "debug", cfg.Logger.Level)

	_, err = readConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	p := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(p, []byte("rpc: [1, 2"), 0o600))
	_, err = readConfig(p)
	require.Error(t, err)
}

func TestLoadConfigOverride(t *testing.T) {
	var cfg Config

	app := newApp()
	app.Commands = []cli.Command{{
		Name: "check",
		Action: func(c *cli.Context) error {
			var err error
			cfg, err = loadConfig(c)
			return err
		},
	}}

	err := app.Run([]string{"rewardpool-cli",
		"--config", writeConfig(t),
		"--rpc", "http://other:30333",
		"--timeout", "1m",
		"check",
	})
	require.NoError(t, err)
	require.Equal(t, "http://other:30333", cfg.RPC.Endpoint)
	require.Equal(t, time.Minute, cfg.RPC.DialTimeout)
	require.Equal(t, time.Minute, cfg.RPC.RequestTimeout)
	require.Equal(t, "/etc/wallet.json", cfg.Wallet.Path)
	require.Equal(t, "0x0102030405060708090a0b0c0d0e0f1011121314", cfg.Contract)
}

func TestNewLogger(t *testing.T) {
	cfg := defaultConfig()
	_, err := cfg.newLogger()
	require.NoError(t, err)

	cfg.Logger.Level = "loud"
	_, err = cfg.newLogger()
	require.Error(t, err)
}

func TestParseHash(t *testing.T) {
	h := util.Uint160{1, 2, 3}

	res, err := parseHash(address.Uint160ToString(h))
	require.NoError(t, err)
	require.Equal(t, h, res)

	res, err = parseHash(h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, res)

	res, err = parseHash("0x" + h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, res)

	_, err = parseHash("")
	require.ErrorIs(t, err, errEmptyHash)

	_, err = parseHash("not an account")
	require.Error(t, err)

	_, err = parseHashes([]string{h.StringLE(), "bad"})
	require.Error(t, err)
}

func TestToken(t *testing.T) {
	tok := token{symbol: "TEST", decimals: 18}

	v, err := tok.parse("12658.765")
	require.NoError(t, err)
	require.Equal(t, "12658765000000000000000", v.String())
	require.Equal(t, "12658.765 TEST", tok.format(v))

	_, err = tok.positive("0")
	require.Error(t, err)
	_, err = tok.positive("-1")
	require.Error(t, err)
	_, err = tok.parse("1.2.3")
	require.Error(t, err)

	require.Equal(t, "12.658765%", formatShare(big.NewInt(12658765)))
	require.Equal(t, "100%", formatShare(big.NewInt(100_000_000)))
}

func TestParseLimits(t *testing.T) {
	set := flag.NewFlagSet("set-limits", flag.ContinueOnError)
	for _, f := range limitFlags {
		f.Apply(set)
	}
	require.NoError(t, set.Parse([]string{"--max-total", "50000", "--user-min", "1000"}))

	tok := token{decimals: 2}
	limits, err := parseLimits(cli.NewContext(nil, set, nil), tok)
	require.NoError(t, err)
	require.EqualValues(t, 5000000, limits.Max.Int64())
	require.EqualValues(t, 0, limits.UserMax.Int64())
	require.EqualValues(t, 100000, limits.UserMin.Int64())

	require.NoError(t, set.Parse([]string{"--user-max", "-1"}))
	_, err = parseLimits(cli.NewContext(nil, set, nil), tok)
	require.Error(t, err)
}

func TestAudit(t *testing.T) {
	dir := t.TempDir()

	c, err := dump.NewCreator(dir, dump.ID{Label: "testnet", Block: 10})
	require.NoError(t, err)

	w := c.AddContract(dumpContractName, state.Contract{ContractBase: state.ContractBase{
		Manifest: *manifest.NewManifest("RewardPool"),
	}})
	acc := util.Uint160{1}
	for _, kv := range [][2][]byte{
		{{'D'}, bigint.ToBytes(big.NewInt(5))},
		{{'N'}, bigint.ToBytes(big.NewInt(1))},
		{append([]byte{'d'}, acc.BytesBE()...), bigint.ToBytes(big.NewInt(5))},
		{[]byte("i0"), acc.BytesBE()},
	} {
		require.NoError(t, w.Write(kv[0], kv[1]))
	}
	require.NoError(t, c.Flush())
	c.Close()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	err = app.Run([]string{"rewardpool-cli", "audit", dir})
	require.NoError(t, err)
	require.Contains(t, out.String(), "testnet-10: 1 depositors, deposits 5")
}
