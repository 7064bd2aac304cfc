package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"
)

// serve 在 ctx 结束前一直提供服务，随后优雅关闭
//
// 内存中的数据不会保存，关闭时把丢弃的记录数写进日志。
func (app *application) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.config.port),
		Handler:      app.routes(),
		ErrorLog:     log.New(app.logger, "", 0),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	// 使用 shutDownError 通道来接收 Shutdown() 函数返回的错误
	shutdownError := make(chan error)

	go func() {
		<-ctx.Done()

		app.logger.PrintInfo("shutting down server", map[string]string{
			"addr": ln.Addr().String(),
		})

		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(sctx)
	}()

	app.logger.PrintInfo("starting server", map[string]string{
		"addr": ln.Addr().String(),
		"env":  app.config.env,
	})

	err = srv.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	props := map[string]string{
		"addr":    ln.Addr().String(),
		"next_id": strconv.FormatInt(app.store.NextID(), 10),
	}
	for name, n := range app.store.Counts() {
		props[name] = strconv.Itoa(n)
	}

	app.logger.PrintInfo("stopped server", props)

	return nil
}
