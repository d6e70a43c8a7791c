package rewardpool

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/rewardpool-contract/contracts/rewardpool/rewardpoolconst"
)

// IsPaused checks whether the action is paused. Empty action means
// the default one.
func IsPaused(action string) bool {
	action = normalizeAction(action)
	return isPaused(storage.GetReadOnlyContext(), action)
}

// Pause method pauses the action. Empty action means the default one. It can
// be invoked only by the owner and fails if the action is already paused.
//
// It produces Paused notification.
func Pause(action string) {
	action = normalizeAction(action)

	ctx := storage.GetContext()
	checkOwner(ctx)

	if isPaused(ctx, action) {
		panic(rewardpoolconst.ErrAlreadyPaused)
	}

	setPaused(ctx, action, true)
}

// Unpause method resumes the action. Empty action means the default one. It
// can be invoked only by the owner and fails if the action is not paused.
//
// It produces Unpaused notification.
func Unpause(action string) {
	action = normalizeAction(action)

	ctx := storage.GetContext()
	checkOwner(ctx)

	if !isPaused(ctx, action) {
		panic(rewardpoolconst.ErrNotPaused)
	}

	setPaused(ctx, action, false)
}

func normalizeAction(action string) string {
	if len(action) == 0 {
		return rewardpoolconst.DefaultAction
	}
	if len(action) > rewardpoolconst.MaxActionLength {
		panic(rewardpoolconst.ErrInvalidAction)
	}
	return action
}

func isPaused(ctx storage.Context, action string) bool {
	return storage.Get(ctx, pausePrefix+action) != nil
}

func setPaused(ctx storage.Context, action string, paused bool) {
	if paused {
		storage.Put(ctx, pausePrefix+action, []byte{1})
		runtime.Notify("Paused", action)
		return
	}

	storage.Delete(ctx, pausePrefix+action)
	runtime.Notify("Unpaused", action)
}

// whenOpen panics with msg if the action is paused.
func whenOpen(ctx storage.Context, action, msg string) {
	if isPaused(ctx, action) {
		panic(msg)
	}
}
