package main

import (
	"context"
	"net/http"
)

// 基于string定义一个contextType
type contextKey string

// 请求 id 在 context 中的 key
const requestIDContextKey = contextKey("request_id")

// contextSetRequestID 返回一个复制的 request，context 中带有请求 id
func (app *application) contextSetRequestID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDContextKey, id)
	return r.WithContext(ctx)
}

// contextGetRequestID 从 context 中取请求 id，没有时返回空字符串
func (app *application) contextGetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDContextKey).(string)
	return id
}
