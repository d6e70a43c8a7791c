package contracts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/stretchr/testify/require"
)

func TestReadMissingFiles(t *testing.T) {
	_fs := fstest.MapFS{}

	// Missing NEF
	_, err := Read(_fs, RewardPoolDir)
	require.Error(t, err)

	// Missing manifest.
	_fs[RewardPoolDir+"/"+nefName] = &fstest.MapFile{}
	_, err = Read(_fs, RewardPoolDir)
	require.Error(t, err)
}

func TestReadInvalidFormat(t *testing.T) {
	var (
		_fs          = fstest.MapFS{}
		nefPath      = RewardPoolDir + "/" + nefName
		manifestPath = RewardPoolDir + "/" + manifestName
	)

	expectedNEF, validNEF := anyValidNEF(t)
	expectedManifest, validManifest := anyValidManifest(t, "RewardPool")

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	c, err := Read(_fs, RewardPoolDir)
	require.NoError(t, err)
	require.Equal(t, expectedNEF.Checksum, c.NEF.Checksum)
	require.Equal(t, expectedManifest.Name, c.Manifest.Name)

	_fs[nefPath] = &fstest.MapFile{Data: []byte("not a NEF")}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err = Read(_fs, RewardPoolDir)
	require.ErrorIs(t, err, errInvalidNEF)

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: []byte("not a manifest")}

	_, err = Read(_fs, RewardPoolDir)
	require.ErrorIs(t, err, errInvalidManifest)
}

func TestReadAll(t *testing.T) {
	_, validNEF := anyValidNEF(t)
	_, first := anyValidManifest(t, "first")
	_, second := anyValidManifest(t, "second")

	_fs := fstest.MapFS{
		"a/" + nefName:      &fstest.MapFile{Data: validNEF},
		"a/" + manifestName: &fstest.MapFile{Data: first},
		"b/" + nefName:      &fstest.MapFile{Data: validNEF},
		"b/" + manifestName: &fstest.MapFile{Data: second},
	}

	cs, err := ReadAll(_fs, "b", "a")
	require.NoError(t, err)
	require.Len(t, cs, 2)
	require.Equal(t, "second", cs[0].Manifest.Name)
	require.Equal(t, "first", cs[1].Manifest.Name)

	_, err = ReadAll(_fs, "a", "c")
	require.Error(t, err)
}

func TestReadRoot(t *testing.T) {
	_, validNEF := anyValidNEF(t)
	_, validManifest := anyValidManifest(t, "RewardPool")

	_fs := fstest.MapFS{
		nefName:      &fstest.MapFile{Data: validNEF},
		manifestName: &fstest.MapFile{Data: validManifest},
	}

	c, err := Read(_fs, ".")
	require.NoError(t, err)
	require.Equal(t, "RewardPool", c.Manifest.Name)
}

func TestReadDir(t *testing.T) {
	dir := t.TempDir()

	_, validNEF := anyValidNEF(t)
	_, validManifest := anyValidManifest(t, "RewardPool")

	require.NoError(t, os.WriteFile(filepath.Join(dir, nefName), validNEF, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifestName), validManifest, 0o600))

	c, err := ReadDir(dir)
	require.NoError(t, err)
	require.Equal(t, "RewardPool", c.Manifest.Name)
}

func anyValidNEF(tb testing.TB) (nef.File, []byte) {
	script := make([]byte, 32)

	_nef, err := nef.NewFile(script)
	require.NoError(tb, err)

	bNEF, err := _nef.Bytes()
	require.NoError(tb, err)

	return *_nef, bNEF
}

func anyValidManifest(tb testing.TB, name string) (manifest.Manifest, []byte) {
	_manifest := manifest.NewManifest(name)

	jManifest, err := json.Marshal(_manifest)
	require.NoError(tb, err)

	return *_manifest, jManifest
}
