package cli

import "errors"

// Common CLI errors
var (
	ErrNoInput        = errors.New("no input given")
	ErrSelectNoResult = errors.New("--select matched nothing")
)
