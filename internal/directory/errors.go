package directory

import "errors"

var ErrEmptyName = errors.New("group name is empty")
