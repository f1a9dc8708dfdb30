package id3codec

import "github.com/simonhull/id3codec/internal/types"

// InvalidIdentifierError is an alias to types.InvalidIdentifierError.
// Re-exporting from internal/types to keep one definition module-wide.
type InvalidIdentifierError = types.InvalidIdentifierError

// UnsupportedVersionError is an alias to types.UnsupportedVersionError.
// Re-exporting from internal/types to keep one definition module-wide.
type UnsupportedVersionError = types.UnsupportedVersionError

// CorruptedFrameError is an alias to types.CorruptedFrameError.
// Re-exporting from internal/types to keep one definition module-wide.
type CorruptedFrameError = types.CorruptedFrameError

// InvalidFrameDataError is an alias to types.InvalidFrameDataError.
// Re-exporting from internal/types to keep one definition module-wide.
type InvalidFrameDataError = types.InvalidFrameDataError
