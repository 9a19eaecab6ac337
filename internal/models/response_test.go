package models

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{13}-[0-9a-z]{9}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewRequestID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 1, "request ids must not collide constantly")
}

func TestSuccess_Defaults(t *testing.T) {
	resp := Success(map[string]int{"a": 1}, "", "")

	assert.Equal(t, CodeSuccess, resp.Code)
	assert.Equal(t, "操作成功", resp.Msg)
	assert.NotEmpty(t, resp.RequestID)
	assert.InDelta(t, time.Now().UnixMilli(), resp.Timestamp, 2000)
	assert.Nil(t, resp.Error)
}

func TestSuccess_PropagatesRequestID(t *testing.T) {
	resp := Success(nil, "自定义", "req-1")
	assert.Equal(t, "req-1", resp.RequestID)
	assert.Equal(t, "自定义", resp.Msg)
}

func TestCreated(t *testing.T) {
	resp := Created(nil, "", "")
	assert.Equal(t, CodeCreated, resp.Code)
	assert.Equal(t, "创建成功", resp.Msg)
}

func TestPagination(t *testing.T) {
	resp := Pagination([]int{1, 2, 3}, 42, "", "")

	assert.Equal(t, CodeSuccess, resp.Code)
	assert.Equal(t, "查询成功", resp.Msg)
	page, ok := resp.Data.(PageData)
	require.True(t, ok)
	assert.Equal(t, int64(42), page.Total)
}

func TestErrorEnvelope_DataAlwaysNull(t *testing.T) {
	resp := ErrorEnvelope("", CodeNotFound, nil, "")

	assert.Equal(t, CodeNotFound, resp.Code)
	assert.Equal(t, "操作失败", resp.Msg)
	assert.Nil(t, resp.Data)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":null`)
	assert.NotContains(t, string(raw), `"error"`)
}

func TestErrorEnvelope_Detail(t *testing.T) {
	resp := ErrorEnvelope("boom", CodeInternalError, &ErrorDetail{Details: "d", Stack: "s"}, "req-9")

	require.NotNil(t, resp.Error)
	assert.Equal(t, "d", resp.Error.Details)
	assert.Equal(t, "req-9", resp.RequestID)
}

func TestCodeFromStatus(t *testing.T) {
	cases := map[int]ResponseCode{
		http.StatusBadRequest:          CodeBadRequest,
		http.StatusUnauthorized:        CodeUnauthorized,
		http.StatusForbidden:           CodeForbidden,
		http.StatusNotFound:            CodeNotFound,
		http.StatusServiceUnavailable:  CodeServiceUnavailable,
		http.StatusConflict:            CodeInternalError,
		http.StatusTeapot:              CodeInternalError,
		http.StatusInternalServerError: CodeInternalError,
	}
	for status, want := range cases {
		assert.Equal(t, want, CodeFromStatus(status), "status %d", status)
	}
}

func TestPageQuery_Normalize(t *testing.T) {
	q := PageQuery{Page: 0, PageSize: -5}
	q.Normalize()
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultPageSize, q.PageSize)
	assert.Equal(t, 0, q.Offset())

	q = PageQuery{Page: 3, PageSize: 20}
	q.Normalize()
	assert.Equal(t, 40, q.Offset())
}
