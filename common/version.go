package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

// Contract version is encoded as major*1_000_000 + minor*1_000 + patch.
const (
	major = 0
	minor = 1
	patch = 0

	Version = major*1_000_000 + minor*1_000 + patch

	// MinUpdatableVersion is the oldest version an update can start from.
	// It's the first release: storage layout hasn't changed since, so no
	// migration is needed.
	MinUpdatableVersion = 0*1_000_000 + 1*1_000 + 0

	// ErrVersionMismatch is thrown by CheckVersion if the deployed contract is
	// older than MinUpdatableVersion.
	ErrVersionMismatch = "previous version mismatch"

	// ErrAlreadyUpdated is thrown by CheckVersion if the deployed contract is
	// of the current version already.
	ErrAlreadyUpdated = "contract is already of the latest version"
)

// CheckVersion panics unless the contract of version from can be updated to
// Version.
func CheckVersion(from int) {
	if from < MinUpdatableVersion {
		panic(ErrVersionMismatch + ": expected >=" + std.Itoa(MinUpdatableVersion, 10))
	}
	if from == Version {
		panic(ErrAlreadyUpdated + ": " + std.Itoa(Version, 10))
	}
}

// AppendVersion appends Version to the update data, so the new contract code
// can check it in _deploy.
func AppendVersion(data any) []any {
	if data == nil {
		return []any{Version}
	}
	return append(data.([]any), Version)
}
