package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is a configuration of the command line tool. It's read from the YAML
// file, global flags override it.
type Config struct {
	RPC struct {
		Endpoint       string        `yaml:"endpoint"`
		DialTimeout    time.Duration `yaml:"dial_timeout"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
	} `yaml:"rpc"`

	Wallet struct {
		Path     string `yaml:"path"`
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
	} `yaml:"wallet"`

	// Address of the RewardPool contract.
	Contract string `yaml:"contract"`

	Logger struct {
		Level string `yaml:"level"`
	} `yaml:"logger"`
}

const (
	defaultDialTimeout    = 15 * time.Second
	defaultRequestTimeout = 15 * time.Second
	defaultLogLevel       = "info"
)

func defaultConfig() Config {
	var cfg Config
	cfg.RPC.DialTimeout = defaultDialTimeout
	cfg.RPC.RequestTimeout = defaultRequestTimeout
	cfg.Logger.Level = defaultLogLevel
	return cfg
}

// readConfig reads configuration from the YAML file. Empty path results in
// default configuration.
func readConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode config file %s: %w", path, err)
	}

	return cfg, nil
}

// loadConfig reads configuration file referenced by the global flag and
// applies other global flags.
func loadConfig(c *cli.Context) (Config, error) {
	cfg, err := readConfig(c.GlobalString(configFlag))
	if err != nil {
		return cfg, err
	}

	for flag, field := range map[string]*string{
		rpcFlag:      &cfg.RPC.Endpoint,
		walletFlag:   &cfg.Wallet.Path,
		addressFlag:  &cfg.Wallet.Address,
		contractFlag: &cfg.Contract,
		logLevelFlag: &cfg.Logger.Level,
	} {
		if c.GlobalIsSet(flag) {
			*field = c.GlobalString(flag)
		}
	}

	if c.GlobalIsSet(timeoutFlag) {
		cfg.RPC.DialTimeout = c.GlobalDuration(timeoutFlag)
		cfg.RPC.RequestTimeout = c.GlobalDuration(timeoutFlag)
	}

	return cfg, nil
}

func (cfg Config) newLogger() (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(cfg.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	c := zap.NewProductionConfig()
	c.Level = lvl
	c.Encoding = "console"
	c.DisableStacktrace = true

	return c.Build()
}

var errEmptyHash = errors.New("empty account")

// parseHash accepts Neo address or hex-encoded little-endian script hash
// (optionally prefixed with 0x).
func parseHash(s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, errEmptyHash
	}

	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	h, errLE := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if errLE != nil {
		return h, fmt.Errorf("%q is neither address (%v) nor script hash (%v)", s, err, errLE)
	}

	return h, nil
}

func parseHashes(ss []string) ([]util.Uint160, error) {
	res := make([]util.Uint160, len(ss))
	for i := range ss {
		var err error
		res[i], err = parseHash(ss[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
