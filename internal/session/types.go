package session

import (
	"time"

	"task-assistant/internal/model"
)

// PendingSession is the conversation state kept for a user between turns
// until a task is created.
type PendingSession struct {
	Username   string               `json:"user"`
	Parameters model.TaskParameters `json:"params"`
	History    []model.Message      `json:"history"`
	LastPrompt string               `json:"last_prompt,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// AddMessage appends a turn to the history.
func (s *PendingSession) AddMessage(role, content string) {
	s.History = append(s.History, model.Message{Role: role, Content: content})
	if role == model.RoleAssistant {
		s.LastPrompt = content
	}
}

// Reset drops parameters and history.
func (s *PendingSession) Reset() {
	s.Parameters = model.TaskParameters{}
	s.History = nil
	s.LastPrompt = ""
}

// Summary describes a session for debugging.
type Summary struct {
	User          string    `json:"user"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	HasParams     bool      `json:"has_params"`
	HistoryCount  int       `json:"history_count"`
	HasLastPrompt bool      `json:"has_last_prompt"`
}
