package dump

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// Creator dumps states of the Neo smart contracts. Output file format:
//
//	'<label>-<block>-contracts.json': JSON array of contracts' states
//	'<label>-<block>-storage.csv': CSV of contracts' storages
//
// Storage CSV records are 'name,key,value' where name stands for contract name
// and binary key-value are base64-encoded.
//
// Use IterateDumps to access existing dumps.
type Creator struct {
	statesFile, storageFile *os.File

	states []contractState

	storage *csv.Writer
}

// NewCreator returns Creator which dumps contracts into the given directory.
// The dump is identified by specified ID. Resulting Creator should be closed
// when finished working with it.
//
// NewCreator fails if dump with provided ID already exists.
func NewCreator(dir string, id ID) (*Creator, error) {
	fs, err := createFiles(id.statesPath(dir), id.storagePath(dir))
	if err != nil {
		return nil, err
	}

	return &Creator{
		statesFile:  fs[0],
		storageFile: fs[1],
		storage:     csv.NewWriter(fs[1]),
	}, nil
}

// AddContract adds given state of the named contract to the resulting dump
// and returns StorageWriter for the contract storage. Added contracts are
// saved by Flush.
func (x *Creator) AddContract(name string, st state.Contract) *StorageWriter {
	x.states = append(x.states, contractState{
		Name:  name,
		State: st,
	})

	return &StorageWriter{
		name: name,
		csv:  x.storage,
	}
}

// Flush saves accumulated dump to the file system.
func (x *Creator) Flush() error {
	enc := json.NewEncoder(x.statesFile)
	enc.SetIndent("", " ")

	err := enc.Encode(x.states)
	if err != nil {
		return fmt.Errorf("encode contract states to JSON: %w", err)
	}

	x.storage.Flush()

	err = x.storage.Error()
	if err != nil {
		return fmt.Errorf("flush CSV data: %w", err)
	}

	return nil
}

// Close releases underlying resources of the Creator and makes it unusable.
func (x *Creator) Close() {
	_ = x.storageFile.Close()
	_ = x.statesFile.Close()
}

// StorageWriter writes storage items of the contract into the dump.
type StorageWriter struct {
	name string
	csv  *csv.Writer
}

// Write saves given binary key-value into the contract dump as storage item.
func (x *StorageWriter) Write(key, value []byte) error {
	err := x.csv.Write([]string{
		x.name,
		_encoding.EncodeToString(key),
		_encoding.EncodeToString(value),
	})
	if err != nil {
		return fmt.Errorf("write storage item as CSV data: %w", err)
	}

	return nil
}
