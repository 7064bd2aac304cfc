package main

import (
	"net/http"
	"time"
)

// statusHandler 返回服务状态，time 为 UTC 毫秒精度的 ISO 8601 时间
func (app *application) statusHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"ok":      true,
		"service": "film-api",
		"time":    time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
