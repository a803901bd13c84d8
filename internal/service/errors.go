package service

import "errors"

var (
	ErrUnavailable       = errors.New("alert store is unavailable")
	ErrAlertNotFound     = errors.New("alert not found")
	ErrAlertClosed       = errors.New("alert is already resolved")
	ErrNotOwner          = errors.New("alert belongs to another user")
	ErrNoActiveBroadcast = errors.New("no active broadcast")
	ErrBroadcastActive   = errors.New("an emergency broadcast is already active")
	ErrSessionClosed     = errors.New("session is closed")
)
