package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"task-assistant/internal/completion"
	"task-assistant/internal/errtrack"
	"task-assistant/internal/model"
	"task-assistant/internal/session"
	"task-assistant/internal/task"
	"task-assistant/pkg/datemath"
)

// turn carries what is known about the current request.
type turn struct {
	input        task.ChatInput
	userFullName string
	parser       *datemath.Parser
	today        time.Time
	start        time.Time
}

// HandleChatTurn validates the message, loads the user's session, extracts
// parameters and creates the task once everything required is known.
func (uc *implUseCase) HandleChatTurn(ctx context.Context, input task.ChatInput) (task.ChatOutput, error) {
	input.Message = strings.TrimSpace(input.Message)
	input.Username = strings.TrimSpace(input.Username)
	if input.Message == "" {
		return task.ChatOutput{}, task.ErrEmptyMessage
	}
	if input.Username == "" {
		return task.ChatOutput{}, task.ErrEmptyUsername
	}
	if input.Controller == "" {
		input.Controller = input.Username
	}
	if input.Timezone == "" {
		input.Timezone = uc.timezone
	}

	t := turn{input: input, start: uc.now()}
	t.parser = datemath.ParserFor(input.Timezone).WithClock(uc.now)
	t.today = t.parser.Today()

	if err := uc.validator.ValidateMessage(input.Message); err != nil {
		return task.ChatOutput{}, validationFailed(err)
	}
	lookup, err := uc.validator.ValidateGroup(ctx, input.Controller)
	if err != nil {
		return task.ChatOutput{}, validationFailed(err)
	}
	t.userFullName = lookup.Name
	if t.userFullName == "" {
		t.userFullName = input.Controller
	}

	s, reset, err := uc.sessions.Manage(ctx, input.Username, input.Message)
	if err != nil {
		return task.ChatOutput{}, uc.fail(ctx, err, input.Username, errtrack.FormatContext{UserFullName: t.userFullName})
	}
	if reset {
		uc.l.Debugf(ctx, "task.usecase.HandleChatTurn: started a new conversation for %s", input.Username)
	}

	out, err := uc.converse(ctx, t, s)
	if err != nil {
		uc.sessions.PreserveOnError(ctx, s, s.History)
		return task.ChatOutput{}, err
	}
	return out, nil
}

func (uc *implUseCase) converse(ctx context.Context, t turn, s *session.PendingSession) (task.ChatOutput, error) {
	input := t.input
	s.AddMessage(model.RoleUser, input.Message)

	if uc.completion.HasConditionalLogic(input.Message) {
		uc.l.Infof(ctx, "task.usecase.HandleChatTurn: rejected conditional request from %s", input.Username)
		return task.ChatOutput{}, validationFailed(
			model.NewValidationError(completion.ConditionalLogicMessage, model.CodeConditionalLogic),
		)
	}

	pre := uc.extractor.Extract(input.Message, input.Controller, t.today)
	uc.l.Debug(ctx, "pre-extracted parameters", "user", input.Username, "params", pre.ToMap())

	res, err := uc.completion.Extract(ctx, completion.ExtractInput{
		Message:        input.Message,
		MainController: input.Controller,
		Today:          t.today,
		QuarterEnd:     t.parser.NextQuarterEnd(),
		Pre:            pre,
		History:        s.History,
		Debug:          input.Debug,
	})
	if err != nil {
		// The user can simply retry; the turn stays in the history.
		id := uc.tracker.Track(ctx, err, input.Username, "stage", "completion")
		uc.l.Warnf(ctx, "task.usecase.HandleChatTurn: completion failed [%s]", id)
		uc.saveSession(ctx, s)
		return task.ChatOutput{Reply: errtrack.FormatUserError(err, errtrack.FormatContext{UserFullName: t.userFullName})}, nil
	}
	if !res.Parsed {
		s.AddMessage(model.RoleAssistant, res.Content)
		uc.saveSession(ctx, s)
		return task.ChatOutput{Reply: res.Content}, nil
	}

	params := overlay(s.Parameters, res.Params)
	s.Parameters = params
	uc.saveSession(ctx, s)

	params = applySmartDefaults(params, input.Controller)
	params = uc.applyFallbackExtraction(ctx, params, input.Message, input.Controller)
	params = uc.applyBusinessRules(ctx, params, pre)

	if pre.IsBatch() {
		return uc.createBatch(ctx, t, pre.BatchTasks, params)
	}

	if err := uc.validator.ValidateParameters(params); err != nil {
		return task.ChatOutput{}, validationFailed(err)
	}
	params, err = uc.prepare(ctx, t, params)
	if err != nil {
		return task.ChatOutput{}, validationFailed(err)
	}

	id, err := uc.createTask(ctx, t, params)
	if err != nil {
		return task.ChatOutput{}, err
	}

	uc.deleteSession(ctx, input.Username)

	out := task.ChatOutput{
		Reply:      buildReply(params, input.Controller),
		InstanceID: id,
	}
	if input.Debug {
		out.Debug = map[string]any{
			"instance_id":    id,
			"parameters":     params.ToMap(),
			"groq_response":  res.Content,
			"execution_time": uc.now().Sub(t.start).Seconds(),
		}
	}
	uc.l.Infof(ctx, "task.usecase.HandleChatTurn: created %q (instance %d) for %s", params.TaskName, id, input.Username)
	return out, nil
}

// prepare resolves dates and fills every field the store needs.
func (uc *implUseCase) prepare(ctx context.Context, t turn, params model.TaskParameters) (model.TaskParameters, error) {
	params, err := uc.processDatesAndTimes(params, t)
	if err != nil {
		return params, err
	}
	params = uc.applyReminderOffset(ctx, params)
	params = setAutomaticFields(params, t.input.Timezone, t.today)
	return coerceFlags(params), nil
}

func (uc *implUseCase) saveSession(ctx context.Context, s *session.PendingSession) {
	if err := uc.sessions.Save(ctx, s); err != nil {
		uc.l.Warnf(ctx, "task.usecase.saveSession: %v", err)
	}
}

func (uc *implUseCase) deleteSession(ctx context.Context, username string) {
	if err := uc.sessions.Delete(ctx, username); err != nil {
		uc.l.Warnf(ctx, "task.usecase.deleteSession: %v", err)
	}
}

// validationFailed turns a validation error into the terminal error of the
// turn. Other errors pass through.
func validationFailed(err error) error {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		return model.NewTaskCreationError(vErr.Message, model.CodeValidationFailed, vErr)
	}
	return err
}

// fail logs err under a new tracking id and returns a safe terminal error.
func (uc *implUseCase) fail(ctx context.Context, err error, user string, fc errtrack.FormatContext) error {
	var tcErr *model.TaskCreationError
	if errors.As(err, &tcErr) {
		return tcErr
	}
	id := uc.tracker.Track(ctx, err, user, "task_name", fc.TaskName)
	return model.NewTaskCreationError(errtrack.FormatUserError(err, fc), model.CodeTaskCreationFailed, err).
		WithTrackingID(id)
}
