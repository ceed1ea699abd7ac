package completion

import "context"

// UseCase turns a chat turn into task parameters with the help of the
// language model.
type UseCase interface {
	// Extract asks the model for parameters and merges them with the
	// pre-extracted ones. A model failure is returned as *model.AIServiceError.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)
	// HasConditionalLogic reports whether the message asks for if/then behavior.
	HasConditionalLogic(message string) bool
}
