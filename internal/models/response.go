package models

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

// ResponseCode is the application-level code carried inside every envelope.
// Success responses use 200/201; error responses use one of the closed error set.
type ResponseCode int

const (
	CodeSuccess            ResponseCode = 200
	CodeCreated            ResponseCode = 201
	CodeBadRequest         ResponseCode = 400
	CodeUnauthorized       ResponseCode = 401
	CodeForbidden          ResponseCode = 403
	CodeNotFound           ResponseCode = 404
	CodeInternalError      ResponseCode = 500
	CodeServiceUnavailable ResponseCode = 503
)

// CodeFromStatus maps an HTTP status to the closed set of envelope error codes.
func CodeFromStatus(status int) ResponseCode {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusServiceUnavailable:
		return CodeServiceUnavailable
	default:
		return CodeInternalError
	}
}

// ErrorDetail carries optional diagnostic data on error envelopes.
// Stack is only populated outside production builds.
type ErrorDetail struct {
	Details string `json:"details,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// Response is the uniform envelope every API endpoint returns.
type Response struct {
	Code      ResponseCode `json:"code"`
	Data      any          `json:"data"`
	Msg       string       `json:"msg"`
	Timestamp int64        `json:"timestamp"`
	RequestID string       `json:"requestId"`
	Error     *ErrorDetail `json:"error,omitempty"`
}

// PageData is the payload shape of pagination envelopes.
type PageData struct {
	List       any   `json:"list"`
	Total      int64 `json:"total"`
	Page       int   `json:"page,omitempty"`
	Limit      int   `json:"limit,omitempty"`
	TotalPages int   `json:"totalPages,omitempty"`
}

const requestIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewRequestID generates a request identifier of the form <epochMs>-<9 base36 chars>.
func NewRequestID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = requestIDAlphabet[rand.Intn(len(requestIDAlphabet))]
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

func orNewRequestID(requestID string) string {
	if requestID == "" {
		return NewRequestID()
	}
	return requestID
}

// Success builds a 200 envelope around data.
func Success(data any, msg string, requestID string) Response {
	if msg == "" {
		msg = "操作成功"
	}
	return Response{
		Code:      CodeSuccess,
		Data:      data,
		Msg:       msg,
		Timestamp: time.Now().UnixMilli(),
		RequestID: orNewRequestID(requestID),
	}
}

// Created builds a 201 envelope around freshly created data.
func Created(data any, msg string, requestID string) Response {
	if msg == "" {
		msg = "创建成功"
	}
	resp := Success(data, msg, requestID)
	resp.Code = CodeCreated
	return resp
}

// Pagination builds a 200 envelope wrapping {list, total}.
func Pagination(list any, total int64, msg string, requestID string) Response {
	if msg == "" {
		msg = "查询成功"
	}
	return Success(PageData{List: list, Total: total}, msg, requestID)
}

// ErrorEnvelope builds an error envelope. Data is always null on errors.
func ErrorEnvelope(msg string, code ResponseCode, detail *ErrorDetail, requestID string) Response {
	if msg == "" {
		msg = "操作失败"
	}
	return Response{
		Code:      code,
		Data:      nil,
		Msg:       msg,
		Timestamp: time.Now().UnixMilli(),
		RequestID: orNewRequestID(requestID),
		Error:     detail,
	}
}
