package service

import "errors"

// Game-rule outcomes. These are expected results the handler turns into
// 200 responses with an error flag, never HTTP errors.
var (
	ErrAlreadyParticipated = errors.New("already participated")
	ErrNotYetOpen          = errors.New("not yet open")
	ErrNoPendingDraw       = errors.New("no pending draw to confirm")
	ErrPrizeMismatch       = errors.New("prize does not match the drawn one")
)

// IsBusinessError reports whether err is a game-rule outcome rather than a
// system fault.
func IsBusinessError(err error) bool {
	return errors.Is(err, ErrAlreadyParticipated) ||
		errors.Is(err, ErrNotYetOpen) ||
		errors.Is(err, ErrNoPendingDraw) ||
		errors.Is(err, ErrPrizeMismatch)
}
