package session

import "errors"

var ErrEmptyUsername = errors.New("username is required")
