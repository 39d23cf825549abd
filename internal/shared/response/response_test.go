package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(51, 2, 25)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 25, meta.PageSize)

	assert.Equal(t, 0, NewPaginationMeta(10, 1, 0).TotalPages)
}

func TestPageQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x?page=-1&page_size=500", nil)
	page, size := PageQuery(c, DefaultPageSize)
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageSize, size)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/x?page=3&page_size=10", nil)
	page, size = PageQuery(c, DefaultPageSize)
	assert.Equal(t, 3, page)
	assert.Equal(t, 10, size)
}

func TestErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, http.StatusConflict, "CONFLICT", "taken", map[string]string{"username": "taken"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":{"code":"CONFLICT","message":"taken","details":{"username":"taken"}}}`, w.Body.String())
}
