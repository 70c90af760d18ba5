package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrWrongPhase       = errors.New("action not allowed in this phase")

	ErrUnknownPlayer = errors.New("unknown player")
	ErrUnknownTile   = errors.New("unknown tile")
	ErrUnknownIntent = errors.New("unknown intent")

	ErrPlayerBankrupt    = errors.New("player is bankrupt")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrTileNotOwnable    = errors.New("tile cannot be owned")
	ErrTileAlreadyOwned  = errors.New("tile is already owned")
	ErrNotTileOwner      = errors.New("tile belongs to someone else")
	ErrIncompleteGroup   = errors.New("color group is not complete")
	ErrMaxBuildings      = errors.New("tile already carries a hotel")
	ErrNotJailed         = errors.New("player is not in jail")
	ErrNoPendingCard     = errors.New("no card is pending")

	ErrRoomFull      = errors.New("room is full")
	ErrRoomNotOpen   = errors.New("room is not open")
	ErrNotEnoughSeat = errors.New("not enough seats to start")
	ErrNotRoomHost   = errors.New("only the host can do that")
)
