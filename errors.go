package server

import "errors"

// ErrUnknownWeather rejects weather modes outside the fixed set before any
// state is touched. A character name that matches nothing is deliberately
// not an error: such operations degrade to a no-op followed by a broadcast
// of unchanged state.
var ErrUnknownWeather = errors.New("unknown weather mode")
