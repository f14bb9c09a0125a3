package models

import "errors"

var ErrInvalidFlag = errors.New("flag must be one of true, false, 0, 1")
