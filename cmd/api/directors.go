package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/liliang-cn/film-api/internal/data"
	"github.com/liliang-cn/film-api/internal/validator"
)

const directorEntity = "Direktor"

func (app *application) listDirectorsHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, app.models.Directors.GetAll(), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) showDirectorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.recordNotFoundResponse(w, r, directorEntity)
		return
	}

	director, err := app.models.Directors.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.recordNotFoundResponse(w, r, directorEntity)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, director, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createDirectorHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Nama      data.Value `json:"nama"`
		BirthYear data.Value `json:"birthYear"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	director := &data.Director{
		Nama:      input.Nama,
		BirthYear: input.BirthYear,
	}

	v := validator.New()
	if data.ValidateDirector(v, director); !v.Valid() {
		app.failedValidationResponse(w, r, "Nama, birthYear wajib diisi")
		return
	}

	app.models.Directors.Insert(director)

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/directors/%d", director.ID))

	err = app.writeJSON(w, http.StatusCreated, director, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
