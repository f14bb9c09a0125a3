package assist

import "errors"

var (
	ErrUnparseable   = errors.New("unparseable assistant output")
	ErrEmptyResponse = errors.New("assistant returned no content")
	ErrRequestFailed = errors.New("assistant request failed")
)
