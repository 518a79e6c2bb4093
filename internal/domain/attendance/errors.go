package attendance

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("employee already has an open attendance log")
	ErrNotClockedIn     = errors.New("employee has no open attendance log")
)
