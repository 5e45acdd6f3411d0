package inkwash

import "errors"

// Engine error kinds. All of these describe conditions the engine recovers
// from locally; they surface through error returns only where the caller
// has a decision to make (Canvas.Paste, Canvas.SetImage, preset loading).
// Everywhere else the operation degrades to a logged no-op, per the
// engine's contract that a bad region or a bad asset never corrupts
// canvas state.
var (
	// ErrShapeMismatch reports that a buffer's dimensions do not match the
	// target rectangle or channel layout. The target is left untouched.
	ErrShapeMismatch = errors.New("inkwash: shape mismatch")

	// ErrAssetInvalid reports that a brush shape asset is missing or
	// unreadable. The shape library substitutes a synthesized fallback.
	ErrAssetInvalid = errors.New("inkwash: invalid brush asset")
)
