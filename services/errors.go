package services

import "errors"

// ErrInvalidInventoryData is returned when the inventory file holds a line
// that cannot be turned into a room.
var ErrInvalidInventoryData = errors.New("invalid inventory data")

// ErrFileIO wraps read and write failures on the inventory and
// reservations files.
var ErrFileIO = errors.New("file i/o error")

// ErrInvalidStayLength is returned when check-out is not after check-in.
var ErrInvalidStayLength = errors.New("stay must be at least one night")

// Validation errors. All of them are recoverable by asking again.
var (
	ErrInvalidDate          = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrPastDate             = errors.New("check-in date cannot be in the past")
	ErrInvalidNights        = errors.New("number of nights must be a whole number greater than zero")
	ErrInvalidContactNumber = errors.New("invalid contact number, must be 11 digits")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrInvalidAnswer        = errors.New("invalid input, enter Y or N")
	ErrRoomNotAvailable     = errors.New("invalid room number or room is not available")
)
