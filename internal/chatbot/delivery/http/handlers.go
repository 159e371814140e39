package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/pkg/response"
)

// ProcessMessage godoc
// @Summary     Send a message to the assistant
// @Description Interprets a French message, executes the resulting command and returns a confirmation.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string            true "Caller id"
// @Param       body      body   processMessageReq true "Message"
// @Success     200 {object} processMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chatbot/messages [POST]
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ProcessMessage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProcessMessageResp(output))
}

// Parse godoc
// @Summary     Parse a message
// @Description Runs the rule-based parser only and returns the structured reading. Nothing is executed.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Caller id"
// @Param       body      body   parseReq true "Message"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chatbot/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newParseResp(h.uc.Parse(c.Request.Context(), req.Message)))
}

// Status godoc
// @Summary     Interpreter status
// @Description Reports whether the LLM backend is reachable and which model it serves.
// @Tags        Chatbot
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Success     200 {object} statusResp
// @Router      /api/v1/chatbot/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, statusResp{
		LLMAvailable: h.uc.IsLLMAvailable(c.Request.Context()),
		LLMModel:     h.uc.LLMModelName(),
	})
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Description Forgets the caller's previous exchanges.
// @Tags        Chatbot
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chatbot/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.uc.ClearHistory(c.Request.Context(), sc.UserID)
	response.OK(c, nil)
}
