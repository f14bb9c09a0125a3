package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStorageUnavailable    = errors.New("storage unavailable")

	ErrServerUnavailable = errors.New("server unavailable")
	ErrAssistBusy        = errors.New("assistant request already in progress")
)
