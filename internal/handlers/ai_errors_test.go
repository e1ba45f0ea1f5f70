package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aftercare-app-server/internal/ai"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondAIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"input error is a bad request", &ai.InputError{Message: "emr_text is required"}, http.StatusBadRequest},
		{"parse error is a bad request", &ai.ParseError{Err: errors.New("unexpected token")}, http.StatusBadRequest},
		{"schema error is a bad request", &ai.SchemaError{Index: 0, Missing: []string{"description"}}, http.StatusBadRequest},
		{"gateway error is a bad gateway", &ai.GatewayError{Message: "status 500"}, http.StatusBadGateway},
		{"unknown error is internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			respondAIError(c, tt.err)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}
}
