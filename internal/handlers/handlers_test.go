package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sebasr/greeting-service/internal/validation"
)

func init() {
	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	if err := validation.Register(); err != nil {
		panic(err)
	}
}

// errorResponse mirrors the error envelope written by respondBindError
type errorResponse struct {
	Error   string                  `json:"error"`
	Message string                  `json:"message"`
	Details []validation.FieldError `json:"details"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func hasDetail(resp errorResponse, field string) bool {
	for _, d := range resp.Details {
		if d.Field == field {
			return true
		}
	}
	return false
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
