package game

import "errors"

var (
	ErrInvalidShip        = errors.New("ship length must be at least 1")
	ErrShipTooLong        = errors.New("ship does not fit on the board")
	ErrPlacementExhausted = errors.New("could not place ship without overlap")
	ErrOccupancy          = errors.New("occupancy bookkeeping violated")
	ErrNotSetUp           = errors.New("game is not set up")
	ErrAlreadySetUp       = errors.New("game is already set up")
	ErrGameOver           = errors.New("game is over")
)
