package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Processes one conversational turn. Replies with a follow-up question or creates the task.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleChatTurn(ctx, h.toChatInput(req))
	if err != nil {
		httpErr, ok := h.mapError(err)
		if !ok {
			response.OK(c, chatResp{Reply: err.Error()})
			return
		}
		h.l.Errorf(ctx, "uc.HandleChatTurn: %v", err)
		response.Error(c, httpErr, nil)
		return
	}

	response.OK(c, newChatResp(output))
}

// ListUsers godoc
// @Summary     List users
// @Description Returns the active users that can own tasks.
// @Tags        Users
// @Produce     json
// @Success     200 {object} usersResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users [GET]
func (h *handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.uc.ListUsers(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListUsers: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newUsersResp(users))
}
