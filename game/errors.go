package game

import "errors"

// Move errors come through two separate channels so that prompts can tell
// "couldn't parse" apart from "not a legal move".
var (
	ErrUnparsable  = errors.New("could not parse move")
	ErrIllegalMove = errors.New("illegal move")
)
