package postgre

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/lib/pq"

	repo "task-assistant/internal/task/repository"
)

// SQLSTATE codes raised by the task creation routine itself.
const (
	codeDuplicateTaskName   pq.ErrorCode = "TA001"
	codeManagerGroupMissing pq.ErrorCode = "TA002"
	codeMonthlyDayLimit     pq.ErrorCode = "TA003"
)

const (
	managerGroupColumn = "manager_group_id"
	holidayView        = "vwholidayschedule"
)

// classify maps a driver error to a repository.Error.
func classify(op, err error) error {
	return &repo.Error{Kind: kindOf(err), Op: op, Err: err}
}

func kindOf(err error) repo.ErrorKind {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == codeDuplicateTaskName, pqErr.Code.Name() == "unique_violation":
			return repo.KindDuplicateName
		case pqErr.Code == codeManagerGroupMissing,
			pqErr.Code.Name() == "not_null_violation" && pqErr.Column == managerGroupColumn:
			return repo.KindManagerGroupMissing
		case pqErr.Code == codeMonthlyDayLimit, pqErr.Code.Name() == "numeric_value_out_of_range":
			return repo.KindMonthlyDayLimitation
		case pqErr.Code.Name() == "undefined_table" && namesHolidayView(pqErr):
			return repo.KindHolidayViewMissing
		case pqErr.Code.Class() == "08", pqErr.Code.Class() == "57":
			return repo.KindConnection
		}
		return repo.KindUnknown
	}

	var netErr net.Error
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr):
		return repo.KindConnection
	}
	return repo.KindUnknown
}

// namesHolidayView reports whether a missing-relation error is about the
// holiday schedule view. Postgres folds unquoted names to lower case.
func namesHolidayView(pqErr *pq.Error) bool {
	return strings.Contains(strings.ToLower(pqErr.Table), holidayView) ||
		strings.Contains(strings.ToLower(pqErr.Message), holidayView)
}
