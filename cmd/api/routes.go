package main

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	// 方法不匹配也按未知路由处理
	router.HandleMethodNotAllowed = false
	router.NotFound = http.HandlerFunc(app.notFoundResponse)

	// 不做重定向，大小写和结尾的 / 由 normalizePath 处理；OPTIONS 交给 enableCORS
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleOPTIONS = false

	router.HandlerFunc(http.MethodGet, "/status", app.statusHandler)

	router.HandlerFunc(http.MethodGet, "/movies", app.listMoviesHandler)
	router.HandlerFunc(http.MethodPost, "/movies", app.createMovieHandler)
	router.HandlerFunc(http.MethodGet, "/movies/:id", app.showMovieHandler)
	router.HandlerFunc(http.MethodPut, "/movies/:id", app.updateMovieHandler)
	router.HandlerFunc(http.MethodDelete, "/movies/:id", app.deleteMovieHandler)

	router.HandlerFunc(http.MethodGet, "/directors", app.listDirectorsHandler)
	router.HandlerFunc(http.MethodPost, "/directors", app.createDirectorHandler)
	router.HandlerFunc(http.MethodGet, "/directors/:id", app.showDirectorHandler)

	router.HandlerFunc(http.MethodGet, "/reviews", app.listReviewsHandler)
	router.HandlerFunc(http.MethodPost, "/reviews", app.createReviewHandler)
	router.HandlerFunc(http.MethodGet, "/reviews/:id", app.showReviewHandler)
	router.HandlerFunc(http.MethodPut, "/reviews/:id", app.updateReviewHandler)
	router.HandlerFunc(http.MethodDelete, "/reviews/:id", app.deleteReviewHandler)

	router.Handler(http.MethodGet, "/debug/vars", expvar.Handler())

	return app.metrics(app.requestID(app.recoverPanic(app.enableCORS(app.rateLimiter(app.normalizePath(router))))))
}
