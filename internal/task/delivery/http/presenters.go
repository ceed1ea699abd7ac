package http

import (
	"strings"

	"task-assistant/internal/task"
)

// --- Request DTOs ---

type chatReq struct {
	Message        string `json:"message"`
	User           string `json:"user"`
	MainController string `json:"mainController"`
	Timezone       string `json:"timezone"`
	Debug          bool   `json:"debug"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errNoMessage
	}
	if strings.TrimSpace(r.User) == "" {
		return errNoUser
	}
	return nil
}

func (h *handler) toChatInput(r chatReq) task.ChatInput {
	controller := r.MainController
	if controller == "" {
		controller = r.User
	}
	tz := r.Timezone
	if tz == "" {
		tz = h.defaultTimezone
	}
	return task.ChatInput{
		Message:    r.Message,
		Username:   r.User,
		Controller: controller,
		Timezone:   tz,
		Debug:      r.Debug && h.debugAllowed,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Reply       string         `json:"reply,omitempty"`
	Error       string         `json:"error,omitempty"`
	InstanceID  int64          `json:"instance_id,omitempty"`
	InstanceIDs []int64        `json:"instance_ids,omitempty"`
	Debug       map[string]any `json:"debug,omitempty"`
}

func newChatResp(out task.ChatOutput) chatResp {
	return chatResp{
		Reply:       out.Reply,
		Error:       out.Error,
		InstanceID:  out.InstanceID,
		InstanceIDs: out.InstanceIDs,
		Debug:       out.Debug,
	}
}

type usersResp struct {
	Users []string `json:"users"`
}

func newUsersResp(users []string) usersResp {
	if users == nil {
		users = []string{}
	}
	return usersResp{Users: users}
}
