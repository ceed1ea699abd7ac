package repository

import (
	"errors"
	"fmt"
)

// ErrorKind classifies store failures so callers can pick a workaround
// without inspecting error text.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindHolidayViewMissing: business-day scheduling needs a view the store lacks.
	KindHolidayViewMissing
	KindDuplicateName
	// KindManagerGroupMissing: the controller has no personal group.
	KindManagerGroupMissing
	KindConnection
	// KindMonthlyDayLimitation: the recurrence value does not fit the store.
	KindMonthlyDayLimitation
)

func (k ErrorKind) String() string {
	switch k {
	case KindHolidayViewMissing:
		return "holiday_view_missing"
	case KindDuplicateName:
		return "duplicate_name"
	case KindManagerGroupMissing:
		return "manager_group_missing"
	case KindConnection:
		return "connection"
	case KindMonthlyDayLimitation:
		return "monthly_day_limitation"
	default:
		return "unknown"
	}
}

var (
	ErrFailedToCreate = errors.New("failed to create task")
	ErrFailedToGet    = errors.New("failed to get task record")
	ErrFailedToList   = errors.New("failed to list task records")
	ErrFailedToUpdate = errors.New("failed to update priority list")
)

// Error is a classified store failure.
type Error struct {
	Kind ErrorKind
	Op   error // one of the ErrFailedTo sentinels
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Op, e.Err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var rErr *Error
	if errors.As(err, &rErr) {
		return rErr.Kind
	}
	return KindUnknown
}
