package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/middleware"
	"productivity-assistant/internal/model"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, errMissingScope
	}
	return sc, nil
}

// processMessageReq binds and validates the process-message request body.
func (h *handler) processMessageReq(c *gin.Context) (model.Scope, processMessageReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, processMessageReq{}, err
	}

	var req processMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, req.validate()
}

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func requireMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return chatbot.ErrEmptyMessage
	}
	return nil
}
