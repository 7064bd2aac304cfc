package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/liliang-cn/film-api/internal/data"
)

type envelope map[string]interface{}

// readIDParam 读取路径中的 id，非数字返回 data.ErrInvalidID
func (app *application) readIDParam(r *http.Request) (int64, error) {
	params := httprouter.ParamsFromContext(r.Context())

	return data.ParseID(params.ByName("id"))
}

// writeJSON 写入 JSON 响应
func (app *application) writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

// readJSON 解析请求体
//
// 空请求体和顶层数组都视为 {}，未知字段会被忽略。非法 JSON 或顶层不是对象、
// 数组时返回错误，调用方按服务器错误处理。
func (app *application) readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)

	var raw json.RawMessage
	err := dec.Decode(&raw)
	if err != nil {
		var syntaxError *json.SyntaxError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)

		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")

		case errors.Is(err, io.EOF):
			return nil

		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)

		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	switch raw[0] {
	case '{':
		var invalidUnmarshalError *json.InvalidUnmarshalError

		err = json.Unmarshal(raw, dst)
		if errors.As(err, &invalidUnmarshalError) {
			panic(err)
		}
		return err
	case '[':
		return nil
	default:
		return errors.New("body must be a JSON object or array")
	}
}
