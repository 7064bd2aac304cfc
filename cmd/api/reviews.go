package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/liliang-cn/film-api/internal/data"
	"github.com/liliang-cn/film-api/internal/validator"
)

const reviewEntity = "Review"

// reviewInput 创建和更新共用的请求体
type reviewInput struct {
	FilmID  data.Value `json:"film_id"`
	User    data.Value `json:"user"`
	Rating  data.Value `json:"rating"`
	Comment data.Value `json:"comment"`
}

func (in reviewInput) review(id int64) *data.Review {
	return &data.Review{
		ID:      id,
		FilmID:  in.FilmID,
		User:    in.User,
		Rating:  in.Rating,
		Comment: in.Comment,
	}
}

func (app *application) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, app.models.Reviews.GetAll(), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) showReviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.recordNotFoundResponse(w, r, reviewEntity)
		return
	}

	review, err := app.models.Reviews.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.recordNotFoundResponse(w, r, reviewEntity)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, review, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	var input reviewInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	review := input.review(0)

	v := validator.New()
	if data.ValidateReview(v, review); !v.Valid() {
		app.failedValidationResponse(w, r, "film_id, user, rating, comment wajib diisi")
		return
	}

	app.models.Reviews.Insert(review)

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/reviews/%d", review.ID))

	err = app.writeJSON(w, http.StatusCreated, review, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateReviewHandler 整体替换，不做必填校验
func (app *application) updateReviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.recordNotFoundResponse(w, r, reviewEntity)
		return
	}

	var input reviewInput

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	review := input.review(id)

	err = app.models.Reviews.Update(review)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.recordNotFoundResponse(w, r, reviewEntity)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, review, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.recordNotFoundResponse(w, r, reviewEntity)
		return
	}

	err = app.models.Reviews.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.recordNotFoundResponse(w, r, reviewEntity)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
