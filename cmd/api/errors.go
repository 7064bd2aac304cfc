package main

import (
	"net/http"
)

// logError 记录错误以及请求信息
func (app *application) logError(r *http.Request, err error) {
	app.logger.PrintError(err, map[string]string{
		"request_method": r.Method,
		"request_url":    r.URL.String(),
		"request_id":     app.contextGetRequestID(r),
	})
}

// errorResponse 以 {"error": message} 的格式返回错误
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	env := envelope{"error": message}

	err := app.writeJSON(w, status, env, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse 记录错误，不向客户端暴露细节
func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	message := "Terjadi kesalahan pada server"
	app.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "Rute tidak ditemukan"
	app.errorResponse(w, r, http.StatusNotFound, message)
}

// recordNotFoundResponse entity 为 "Movie"、"Direktor" 或 "Review"
func (app *application) recordNotFoundResponse(w http.ResponseWriter, r *http.Request, entity string) {
	app.errorResponse(w, r, http.StatusNotFound, entity+" tidak ditemukan")
}

// failedValidationResponse 必填字段缺失
func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusBadRequest, message)
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	message := "Terlalu banyak permintaan"
	app.errorResponse(w, r, http.StatusTooManyRequests, message)
}
