package dump

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// ID is a unique identifier of the dump.
type ID struct {
	// Label of the dump source (e.g. testnet, mainnet).
	Label string
	// Blockchain height at which the state was pulled.
	Block uint32
}

const (
	sep = "-"

	statesFileSuffix  = sep + "contracts.json"
	storageFileSuffix = sep + "storage.csv"
)

// String returns hyphen-separated ID fields.
func (x ID) String() string {
	return x.Label + sep + strconv.FormatUint(uint64(x.Block), 10)
}

// parseID decodes ID from the name of the file with contract states. Label
// may contain separator itself, block is always the last.
func parseID(fileName string) (ID, error) {
	s, ok := strings.CutSuffix(fileName, statesFileSuffix)
	if !ok {
		return ID{}, fmt.Errorf("missing '%s' suffix", statesFileSuffix)
	}

	i := strings.LastIndex(s, sep)
	if i <= 0 {
		return ID{}, fmt.Errorf("expected '<label>%s<block>' prefix", sep)
	}

	n, err := strconv.ParseUint(s[i+len(sep):], 10, 32)
	if err != nil {
		return ID{}, fmt.Errorf("decode block number: %w", err)
	}

	return ID{Label: s[:i], Block: uint32(n)}, nil
}

func (x ID) statesPath(dir string) string {
	return filepath.Join(dir, x.String()+statesFileSuffix)
}

func (x ID) storagePath(dir string) string {
	return filepath.Join(dir, x.String()+storageFileSuffix)
}

// binary keys and values are stored as base64 strings.
var _encoding = base64.StdEncoding

// contractState is a JSON-encoded information about the dumped contract.
type contractState struct {
	Name  string         `json:"name"`
	State state.Contract `json:"state"`
}

// createFiles creates new files at the given paths, it fails if any of them
// already exists. Created files are removed on failure.
func createFiles(paths ...string) ([]*os.File, error) {
	var res = make([]*os.File, 0, len(paths))

	for _, p := range paths {
		f, err := os.OpenFile(p, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err != nil {
			for i := range res {
				_ = res[i].Close()
				_ = os.Remove(res[i].Name())
			}

			if errors.Is(err, os.ErrExist) {
				return nil, fmt.Errorf("dump file '%s' already exists", p)
			}
			return nil, fmt.Errorf("create dump file: %w", err)
		}

		res = append(res, f)
	}

	return res, nil
}
