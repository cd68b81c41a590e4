package manager

import "errors"

var (
	ErrManagerOnly = errors.New("access denied, only managers can access this endpoint")
)
