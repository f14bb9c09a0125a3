package client

import "errors"

var errNoUI = errors.New("client has no user interface")
