package usecase

import (
	"context"
	"errors"
	"math/bits"
	"strings"

	"task-assistant/internal/errtrack"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
	"task-assistant/internal/task/repository"
	"task-assistant/internal/translation"
	"task-assistant/pkg/datemath"
	"task-assistant/pkg/retry"
	"task-assistant/pkg/schedule"
)

// createTask stores one fully prepared task and returns its instance id.
// Every failure comes back as a *model.TaskCreationError.
func (uc *implUseCase) createTask(ctx context.Context, t turn, params model.TaskParameters) (int64, error) {
	id, err := uc.createWithPriorityHandling(ctx, params, t.userFullName)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			return 0, validationFailed(vErr)
		}
		fc := errtrack.FormatContext{UserFullName: t.userFullName, TaskName: params.TaskName}
		if repository.KindOf(err) == repository.KindMonthlyDayLimitation {
			fc.Day = monthlyDay(params.Record)
		}
		return 0, uc.fail(ctx, err, t.input.Username, fc)
	}
	if id == 0 {
		trackingID := uc.tracker.Track(ctx, errors.New(task.MsgNoInstanceID), t.input.Username, "task_name", params.TaskName)
		return 0, model.NewTaskCreationError(task.MsgNoInstanceID, model.CodeNoInstanceID, nil).WithTrackingID(trackingID)
	}
	return id, nil
}

// createWithPriorityHandling encodes schedules the store cannot hold,
// creates the task, recovers from the known store defects and finally makes
// sure priority tasks reach the assignees' priority lists.
func (uc *implUseCase) createWithPriorityHandling(ctx context.Context, params model.TaskParameters, mainController string) (int64, error) {
	stored := params
	var metadataID int64
	if uc.translator.NeedsTranslation(params.Record) {
		encoded, md, err := uc.translator.Encode(params)
		if err != nil {
			return 0, err
		}
		stored = encoded
		metadataID = uc.translator.StoreMetadata(ctx, translation.StoreInput{Metadata: md, CreatedBy: mainController})
		uc.l.Infof(ctx, "task.usecase.createWithPriorityHandling: day %d encoded as %d for %q", md.Day, md.EncodedValue, params.TaskName)
	}

	opt := createOptions(stored, mainController)
	id, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		if repository.KindOf(err) != repository.KindHolidayViewMissing {
			return 0, err
		}
		if id, err = uc.createWithoutBusinessDays(ctx, opt); err != nil {
			return 0, err
		}
	}

	if id == 0 {
		id = uc.findTaskByName(ctx, opt.TaskName)
	}
	if id == 0 {
		return 0, nil
	}

	if metadataID != 0 {
		uc.translator.LinkToTask(ctx, metadataID, id)
	}
	if opt.AddToPriorityList == 1 {
		uc.addToPriorityLists(ctx, id, opt.Assignees)
	}
	return id, nil
}

// createWithoutBusinessDays retries once with business-day behavior disabled.
// The failed attempt may still have stored the task, so the name is looked up
// before giving up.
func (uc *implUseCase) createWithoutBusinessDays(ctx context.Context, opt repository.CreateTaskOptions) (int64, error) {
	uc.tracker.Attempt(errtrack.WorkaroundHolidaySchedule)
	uc.l.Warnf(ctx, "task.usecase.createWithoutBusinessDays: holiday schedule unavailable, retrying %q", opt.TaskName)

	opt.BusinessDayBehavior = schedule.BusinessDayIgnore
	id, err := uc.repo.CreateTask(ctx, opt)
	if err == nil && id != 0 {
		uc.tracker.Succeed(errtrack.WorkaroundHolidaySchedule)
		return id, nil
	}
	if found := uc.findTaskByName(ctx, opt.TaskName); found != 0 {
		uc.tracker.Succeed(errtrack.WorkaroundHolidaySchedule)
		return found, nil
	}
	return 0, err
}

func (uc *implUseCase) findTaskByName(ctx context.Context, name string) int64 {
	id, err := retry.DoValue(ctx, uc.dbRetry, func(ctx context.Context) (int64, error) {
		return uc.repo.FindTaskByName(ctx, name)
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.findTaskByName: %q: %v", name, err)
		return 0
	}
	if id != 0 {
		uc.l.Infof(ctx, "task.usecase.findTaskByName: recovered %q as instance %d", name, id)
	}
	return id
}

// addToPriorityLists adds the instance to the priority list of every user in
// every assignee group. The store's own handling of the flag is unreliable.
// Failures are logged and skipped.
func (uc *implUseCase) addToPriorityLists(ctx context.Context, instanceID int64, assignees string) {
	uc.tracker.Attempt(errtrack.WorkaroundPriorityList)

	checklistID, err := retry.DoValue(ctx, uc.dbRetry, func(ctx context.Context) (int64, error) {
		return uc.repo.GetActiveChecklistID(ctx, instanceID)
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.addToPriorityLists: instance %d: %v", instanceID, err)
		return
	}
	if checklistID == 0 {
		uc.l.Warnf(ctx, "task.usecase.addToPriorityLists: no active checklist for instance %d", instanceID)
		return
	}

	added := 0
	for _, group := range splitNames(assignees) {
		userIDs, err := retry.DoValue(ctx, uc.dbRetry, func(ctx context.Context) ([]int64, error) {
			return uc.repo.ListGroupUserIDs(ctx, group)
		})
		if err != nil {
			uc.l.Warnf(ctx, "task.usecase.addToPriorityLists: group %q: %v", group, err)
			continue
		}
		for _, userID := range userIDs {
			err := uc.dbRetry.Do(ctx, func(ctx context.Context) error {
				return uc.repo.AddToPriorityList(ctx, repository.AddToPriorityListOptions{
					UserID:            userID,
					ActiveChecklistID: checklistID,
				})
			})
			if err != nil {
				uc.l.Warnf(ctx, "task.usecase.addToPriorityLists: user %d: %v", userID, err)
				continue
			}
			added++
		}
	}

	if added > 0 {
		uc.tracker.Succeed(errtrack.WorkaroundPriorityList)
	}
	uc.l.Infof(ctx, "task.usecase.addToPriorityLists: instance %d added to %d priority lists", instanceID, added)
}

// createOptions maps prepared parameters onto the store routine's arguments.
func createOptions(p model.TaskParameters, mainController string) repository.CreateTaskOptions {
	return repository.CreateTaskOptions{
		TaskName:            p.TaskName,
		MainController:      mainController,
		Controllers:         p.Controllers,
		Assignees:           p.Assignees,
		DueDate:             storeDate(p.DueDate, p.DueTime),
		LocalDueDate:        storeDate(p.LocalDueDate, p.DueTime),
		Location:            p.Location,
		DueTime:             datemath.ClockInt(p.DueTime),
		SoftDueDate:         storeDate(p.SoftDueDate, p.DueTime),
		FinalDueDate:        storeDate(p.FinalDueDate, p.DueTime),
		Items:               p.Items,
		IsRecurring:         p.IsRecurring,
		FreqType:            int(p.FreqType),
		FreqRecurrance:      p.FreqRecurrance,
		FreqInterval:        p.FreqInterval,
		BusinessDayBehavior: p.BusinessDayBehavior,
		Activate:            p.Activate,
		IsReminder:          p.IsReminder,
		ReminderDate:        storeDate(p.ReminderDate, p.DueTime),
		AddToPriorityList:   p.AddToPriorityList,
	}
}

// storeDate renders date at clock. Values that are not plain dates are sent
// as they are.
func storeDate(date, clock string) string {
	if date == "" {
		return ""
	}
	ts, err := datemath.Timestamp(date, clock)
	if err != nil {
		return date
	}
	return ts
}

// monthlyDay returns the day of a single-day monthly schedule, 0 otherwise.
func monthlyDay(rec schedule.Record) int {
	if rec.FreqType != schedule.FreqMonthly || rec.FreqRecurrance <= 0 || bits.OnesCount(uint(rec.FreqRecurrance)) != 1 {
		return 0
	}
	return bits.TrailingZeros(uint(rec.FreqRecurrance)) + 1
}

func splitNames(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
