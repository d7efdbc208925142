package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func TestMsg(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Msg(c, 0, "Schedule removed")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"Schedule removed"}`, w.Body.String())
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	Error(c, http.StatusBadRequest, "Invalid payload", map[string]string{"email": "is required"})

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid payload", body.Msg)
	assert.Equal(t, "req-1", body.RequestID)
	assert.Equal(t, "is required", body.Errors["email"])
}

func TestServerError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ServerError(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"msg":"Server Error"}`, w.Body.String())
}
