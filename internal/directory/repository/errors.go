package repository

import "errors"

var (
	ErrFailedToGet  = errors.New("failed to get directory record")
	ErrFailedToList = errors.New("failed to list directory records")
)
