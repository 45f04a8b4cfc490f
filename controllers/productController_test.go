package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, defaultPageSize},
		{"explicit", "?page=3&limit=20", 3, 20},
		{"negative page", "?page=-4", 1, defaultPageSize},
		{"garbage", "?page=x&limit=y", 1, defaultPageSize},
		{"limit capped", "?limit=1000", 1, maxPageSize},
		{"page capped", "?page=9223372036854775807", maxPage, defaultPageSize},
		{"page above capped but parseable", "?page=1000001", maxPage, defaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = httptest.NewRequest("GET", "/product"+tt.query, nil)

			page, limit := pagination(ctx)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
