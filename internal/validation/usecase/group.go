package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-assistant/internal/directory"
	"task-assistant/internal/model"
	"task-assistant/internal/validation"
)

const maxSuggestions = 3

func (uc *implUseCase) ValidateGroup(ctx context.Context, name string) (directory.GroupLookup, error) {
	if strings.TrimSpace(name) == "" {
		return directory.GroupLookup{}, model.NewValidationError(validation.MsgEmptyGroup, model.CodeInvalidGroup)
	}
	if uc.dir == nil {
		return directory.GroupLookup{Exists: true, Name: name}, nil
	}

	// Active users are resolved by the store itself.
	if uc.dir.IsActiveUser(ctx, name) {
		uc.l.Debugf(ctx, "validation.usecase.ValidateGroup: %q is an active user", name)
		return directory.GroupLookup{Exists: true, Name: name}, nil
	}

	lookup, err := uc.dir.LookupGroup(ctx, name)
	if err != nil {
		uc.l.Errorf(ctx, "validation.usecase.ValidateGroup %q: %v", name, err)
		return directory.GroupLookup{}, model.NewValidationError(
			fmt.Sprintf("Unable to validate group '%s'. Please try again.", name), model.CodeInvalidGroup)
	}
	if lookup.Exists {
		return lookup, nil
	}

	switch {
	case uc.dir.IsUnconfiguredUser(ctx, name):
		return lookup, model.NewValidationError(fmt.Sprintf(
			`"%s" is not configured for task creation. `+
				`This user needs to be set up as a group by an administrator. `+
				`Please contact your system admin or select a different user from the dropdown.`, name,
		), model.CodeInvalidGroup)
	case len(lookup.Similar) > 0:
		similar := lookup.Similar
		if len(similar) > maxSuggestions {
			similar = similar[:maxSuggestions]
		}
		return lookup, model.NewValidationError(fmt.Sprintf(
			`"%s" is not a valid group. Did you mean one of these: %s?`, name, strings.Join(similar, ", "),
		), model.CodeInvalidGroup)
	default:
		return lookup, model.NewValidationError(fmt.Sprintf(
			`"%s" is not found in the system. Please use a valid group name.`, name,
		), model.CodeInvalidGroup)
	}
}
