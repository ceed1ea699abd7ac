package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
)

// createBatch creates one task per name on top of the shared parameters. A
// failing item is reported and does not stop the others.
func (uc *implUseCase) createBatch(ctx context.Context, t turn, names []string, base model.TaskParameters) (task.ChatOutput, error) {
	uc.l.Infof(ctx, "task.usecase.createBatch: %d tasks for %s", len(names), t.input.Username)

	var created, failed []task.BatchItem
	for _, name := range names {
		item := task.BatchItem{TaskName: strings.TrimSpace(name)}
		if item.TaskName == "" {
			item.Error = task.MsgBatchItemEmpty
			failed = append(failed, item)
			continue
		}

		id, err := uc.createBatchItem(ctx, t, base, item.TaskName)
		if err != nil {
			uc.l.Warnf(ctx, "task.usecase.createBatch: %q: %v", item.TaskName, err)
			item.Error = err.Error()
			failed = append(failed, item)
			continue
		}
		item.InstanceID = id
		created = append(created, item)
	}

	if len(created) == 0 {
		if t.input.Debug {
			return task.ChatOutput{
				Error: task.MsgBatchAllFailed,
				Debug: map[string]any{"failed": failed},
			}, nil
		}
		return task.ChatOutput{}, model.NewTaskCreationError(task.MsgBatchAllFailed, model.CodeBatchAllFailed, nil)
	}

	uc.deleteSession(ctx, t.input.Username)

	out := task.ChatOutput{Reply: batchReply(created, failed)}
	for _, c := range created {
		out.InstanceIDs = append(out.InstanceIDs, c.InstanceID)
	}
	if t.input.Debug {
		out.Debug = map[string]any{"created": created, "failed": failed}
	}
	return out, nil
}

func (uc *implUseCase) createBatchItem(ctx context.Context, t turn, base model.TaskParameters, name string) (int64, error) {
	params := base
	params.TaskName = name
	params.BatchTasks = nil

	if err := uc.validator.ValidateTaskName(params.TaskName); err != nil {
		return 0, err
	}
	if params.Assignees != "" {
		if _, err := uc.validator.ValidateAssignees(params.Assignees); err != nil {
			return 0, err
		}
	}

	params, err := uc.prepare(ctx, t, params)
	if err != nil {
		return 0, err
	}
	return uc.createTask(ctx, t, params)
}

func batchReply(created, failed []task.BatchItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I've created %d tasks:", len(created))
	for _, c := range created {
		fmt.Fprintf(&b, "\n• %s (ID: %d)", c.TaskName, c.InstanceID)
	}
	if len(failed) > 0 {
		fmt.Fprintf(&b, "\n\nFailed to create %d tasks:", len(failed))
		for _, f := range failed {
			fmt.Fprintf(&b, "\n• %s: %s", f.TaskName, f.Error)
		}
	}
	return b.String()
}
