package dump

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// IterateDumps iterates over all dumps collected by the Creator in the
// specified directory in the order of their file names, and passes ID and
// Reader of each dump into f. Missing directory has no dumps.
func IterateDumps(dir string, f func(ID, *Reader)) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read dump directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), statesFileSuffix) {
			continue
		}

		id, err := parseID(e.Name())
		if err != nil {
			return fmt.Errorf("decode dump ID from file name '%s': %w", e.Name(), err)
		}

		r, err := Open(dir, id)
		if err != nil {
			return err
		}

		f(id, r)
	}

	return nil
}

// Open reads the dump with the given ID from the specified directory.
func Open(dir string, id ID) (*Reader, error) {
	fStates, err := os.Open(id.statesPath(dir))
	if err != nil {
		return nil, fmt.Errorf("open dump %s: %w", id, err)
	}
	defer fStates.Close()

	fStorage, err := os.Open(id.storagePath(dir))
	if err != nil {
		return nil, fmt.Errorf("open dump %s: %w", id, err)
	}
	defer fStorage.Close()

	var r Reader

	err = r.decode(fStates, fStorage)
	if err != nil {
		return nil, fmt.Errorf("decode dump %s: %w", id, err)
	}

	return &r, nil
}

type kv struct{ k, v []byte }

// Reader reads contracts collected in the dump.
type Reader struct {
	states  []contractState
	storage map[string][]kv
}

func (x *Reader) decode(rStates, rStorage io.Reader) error {
	err := json.NewDecoder(rStates).Decode(&x.states)
	if err != nil {
		return fmt.Errorf("decode contract states from JSON: %w", err)
	}

	r := csv.NewReader(rStorage)
	r.FieldsPerRecord = 3

	x.storage = make(map[string][]kv)

	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read next CSV record: %w", err)
		}

		var item kv

		// out-of-range safety guaranteed by csv settings
		item.k, err = _encoding.DecodeString(rec[1])
		if err != nil {
			return fmt.Errorf("decode storage item key: %w", err)
		}

		item.v, err = _encoding.DecodeString(rec[2])
		if err != nil {
			return fmt.Errorf("decode storage item value: %w", err)
		}

		x.storage[rec[0]] = append(x.storage[rec[0]], item)
	}
}

// IterateContractStates iterates over all contracts from the dump and passes
// their states into f.
func (x *Reader) IterateContractStates(f func(name string, _state state.Contract)) {
	for i := range x.states {
		f(x.states[i].Name, x.states[i].State)
	}
}

// IterateContractStorage passes storage items of the named contract from the
// dump into f in the order they were dumped.
func (x *Reader) IterateContractStorage(name string, f func(key, value []byte)) {
	kvs := x.storage[name]
	for i := range kvs {
		f(kvs[i].k, kvs[i].v)
	}
}

// Ledger decodes storage of the named RewardPool contract from the dump.
func (x *Reader) Ledger(name string) (*Ledger, error) {
	if _, ok := x.storage[name]; !ok {
		return nil, fmt.Errorf("no storage of contract '%s' in the dump", name)
	}

	l := NewLedger()

	var err error
	x.IterateContractStorage(name, func(key, value []byte) {
		if err == nil {
			err = l.Put(key, value)
		}
	})
	if err != nil {
		return nil, err
	}

	return l, nil
}
