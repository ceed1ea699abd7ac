package task

import (
	"context"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// HandleChatTurn processes one chat message. It either asks the user for
	// more information, or creates the task (or batch of tasks) described so
	// far in the conversation.
	HandleChatTurn(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ListUsers returns the active users that can own tasks.
	ListUsers(ctx context.Context) ([]string, error)
}
