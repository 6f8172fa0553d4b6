package assets

import "errors"

// ErrAssetUnavailable marks a sound name or file that cannot be resolved to
// a decodable audio stream.
var ErrAssetUnavailable = errors.New("asset unavailable")
