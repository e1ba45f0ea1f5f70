package handlers

import (
	"errors"

	"aftercare-app-server/internal/ai"
	"aftercare-app-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// respondAIError maps the AI error taxonomy onto HTTP responses: caller
// mistakes and unusable model output are 400s, an upstream model failure is a
// 502 so clients can tell "bad request" from "model is broken".
func respondAIError(c *gin.Context, err error) {
	var inputErr *ai.InputError
	var parseErr *ai.ParseError
	var schemaErr *ai.SchemaError
	var gatewayErr *ai.GatewayError

	switch {
	case errors.As(err, &inputErr), errors.As(err, &parseErr), errors.As(err, &schemaErr):
		utils.BadRequest(c, err.Error())
	case errors.As(err, &gatewayErr):
		utils.BadGateway(c, err.Error())
	default:
		utils.InternalServerError(c, err.Error())
	}
}
