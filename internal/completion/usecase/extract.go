package usecase

import (
	"context"
	"errors"

	"task-assistant/internal/completion"
	"task-assistant/internal/model"
	"task-assistant/pkg/llmprovider"
)

func (uc *implUseCase) Extract(ctx context.Context, input completion.ExtractInput) (completion.ExtractOutput, error) {
	system := SystemPrompt(input.Today, input.QuarterEnd, input.MainController, Hint(input.Pre, input.Message))

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: model.RoleSystem, Parts: []llmprovider.Part{{Text: system}}},
		Messages:          historyMessages(input.History, input.Message),
		Model:             uc.cfg.Model,
		Temperature:       uc.cfg.Temperature,
		MaxTokens:         uc.cfg.MaxTokens,
	}

	timeout := Timeout(input.Message, input.Pre)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	uc.l.Debugf(ctx, "completion.usecase.Extract: timeout=%s history=%d", timeout, len(req.Messages))

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		aiErr := classifyError(ctx, err)
		uc.l.Errorf(ctx, "completion.usecase.Extract: %s: %v", aiErr.Code, err)
		return completion.ExtractOutput{}, aiErr
	}

	content := resp.Content.Text()
	if content == "" {
		uc.l.Errorf(ctx, "completion.usecase.Extract: empty content from %s", resp.ProviderName)
		return completion.ExtractOutput{}, model.NewAIServiceError(completion.MsgInvalidFormat, model.CodeAIInvalidFormat, llmprovider.ErrEmptyResponse)
	}
	uc.logUsage(ctx, resp)

	if input.Debug {
		uc.l.Infof(ctx, "completion.usecase.Extract: raw response: %s", content)
	}

	raw, ok := ParseJSON(content)
	if !ok {
		return completion.ExtractOutput{Content: content}, nil
	}

	llmParams := model.ParametersFromJSON(raw)
	merged := Merge(llmParams, input.Pre, input.Message)

	uc.l.Debug(ctx, "completion parameters merged",
		"pre", input.Pre.ToMap(),
		"llm", llmParams.ToMap(),
		"merged", merged.ToMap(),
	)

	return completion.ExtractOutput{Parsed: true, Params: merged, Content: content}, nil
}

// historyMessages converts the session history. An empty or unusable history
// falls back to the current message alone.
func historyMessages(history []model.Message, message string) []llmprovider.Message {
	out := make([]llmprovider.Message, 0, len(history))
	for _, h := range history {
		if h.Role == "" || h.Content == "" {
			continue
		}
		out = append(out, llmprovider.TextMessage(h.Role, h.Content))
	}
	if len(out) == 0 {
		out = append(out, llmprovider.TextMessage(model.RoleUser, message))
	}
	return out
}

func classifyError(ctx context.Context, err error) *model.AIServiceError {
	switch {
	case errors.Is(err, llmprovider.ErrProviderTimeout),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(ctx.Err(), context.DeadlineExceeded):
		return model.NewAIServiceError(completion.MsgTimeout, model.CodeAITimeout, err)
	case errors.Is(err, llmprovider.ErrProviderRateLimited):
		return model.NewAIServiceError(completion.MsgRateLimited, model.CodeAIRateLimited, err)
	case errors.Is(err, llmprovider.ErrEmptyResponse):
		return model.NewAIServiceError(completion.MsgInvalidFormat, model.CodeAIInvalidFormat, err)
	default:
		return model.NewAIServiceError(completion.MsgRequestFailed, model.CodeAIRequestError, err)
	}
}

func (uc *implUseCase) logUsage(ctx context.Context, resp *llmprovider.Response) {
	if resp.Usage == nil {
		return
	}
	uc.l.Info(ctx, "token usage",
		"provider", resp.ProviderName,
		"model", resp.ModelName,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"total_tokens", resp.Usage.TotalTokens,
		"cost_usd", TokenCost(resp.ModelName, resp.Usage.InputTokens, resp.Usage.OutputTokens),
	)
}
