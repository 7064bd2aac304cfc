package data

import (
	"sort"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/liliang-cn/film-api/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertUsesSharedCounter(t *testing.T) {
	store, models := newTestModels(t)
	require.EqualValues(t, 5, store.NextID())

	movie := &Movie{Title: JSONValue("Ponyo"), Director: JSONValue("Hayao Miyazaki"), Year: JSONValue(2008.0)}
	models.Movies.Insert(movie)
	assert.EqualValues(t, 5, movie.ID)

	director := &Director{Nama: JSONValue("Goro Miyazaki"), BirthYear: JSONValue("1967")}
	models.Directors.Insert(director)
	assert.EqualValues(t, 6, director.ID)

	review := &Review{FilmID: JSONValue("ponyo01"), User: JSONValue("Rina"), Rating: JSONValue(0.0), Comment: JSONValue("Lucu")}
	models.Reviews.Insert(review)
	assert.EqualValues(t, 7, review.ID)

	assert.EqualValues(t, 8, store.NextID())

	got, err := models.Movies.Get(5)
	require.NoError(t, err)
	assert.Equal(t, movie, got)

	movies := models.Movies.GetAll()
	require.Len(t, movies, 3)
	assert.EqualValues(t, 5, movies[2].ID)
}

func TestGetMissing(t *testing.T) {
	_, models := newTestModels(t)

	_, err := models.Movies.Get(999)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = models.Directors.Get(5)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = models.Reviews.Get(-1)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestSeedIDsCollideAcrossCollections(t *testing.T) {
	_, models := newTestModels(t)

	movie, err := models.Movies.Get(1)
	require.NoError(t, err)
	director, err := models.Directors.Get(1)
	require.NoError(t, err)

	assert.Equal(t, JSONValue("Spirited Away"), movie.Title)
	assert.Equal(t, JSONValue("Hayao Miyazaki"), director.Nama)
}

func TestGetAllReturnsCopy(t *testing.T) {
	_, models := newTestModels(t)

	movies := models.Movies.GetAll()
	movies[0].ID = 100

	again := models.Movies.GetAll()
	require.Len(t, again, 2)
	assert.EqualValues(t, 1, again[0].ID)
	assert.EqualValues(t, 2, again[1].ID)
}

func TestUpdateReplacesWholeRecord(t *testing.T) {
	store, models := newTestModels(t)

	err := models.Movies.Update(&Movie{ID: 2, Title: JSONValue("Totoro")})
	require.NoError(t, err)

	got, err := models.Movies.Get(2)
	require.NoError(t, err)
	assert.Equal(t, &Movie{ID: 2, Title: JSONValue("Totoro")}, got)
	assert.Nil(t, got.Director)
	assert.Nil(t, got.Year)

	err = models.Reviews.Update(&Review{ID: 3})
	require.NoError(t, err)

	review, err := models.Reviews.Get(3)
	require.NoError(t, err)
	assert.Equal(t, &Review{ID: 3}, review)

	// 更新不消耗 id
	assert.EqualValues(t, 5, store.NextID())
}

func TestUpdateMissing(t *testing.T) {
	store, models := newTestModels(t)
	before := models.Reviews.GetAll()

	err := models.Reviews.Update(&Review{ID: 999, User: JSONValue("x")})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	err = models.Movies.Update(&Movie{ID: 999})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	if diff := cmp.Diff(before, models.Reviews.GetAll()); diff != "" {
		t.Errorf("reviews changed (-before +after):\n%s", diff)
	}
	assert.EqualValues(t, 5, store.NextID())
}

func TestDeletePreservesOrder(t *testing.T) {
	_, models := newTestModels(t)
	before := models.Reviews.GetAll()

	require.NoError(t, models.Reviews.Delete(2))

	want := []Review{before[0], before[2], before[3]}
	if diff := cmp.Diff(want, models.Reviews.GetAll()); diff != "" {
		t.Errorf("reviews mismatch (-want +got):\n%s", diff)
	}

	_, err := models.Reviews.Get(2)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDeleteMissing(t *testing.T) {
	store, models := newTestModels(t)

	err := models.Movies.Delete(999)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.Equal(t, map[string]int{"movies": 2, "directors": 2, "reviews": 4}, store.Counts())
}

func TestDeleteAllLeavesEmptyList(t *testing.T) {
	_, models := newTestModels(t)

	require.NoError(t, models.Movies.Delete(1))
	require.NoError(t, models.Movies.Delete(2))

	movies := models.Movies.GetAll()
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestConcurrentInsertsGetDistinctIDs(t *testing.T) {
	store, models := newTestModels(t)

	const n = 50
	ids := make(chan int64, 3*n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			m := &Movie{Title: JSONValue("t"), Director: JSONValue("d"), Year: JSONValue(1.0)}
			models.Movies.Insert(m)
			ids <- m.ID
		}()
		go func() {
			defer wg.Done()
			d := &Director{Nama: JSONValue("n"), BirthYear: JSONValue("1")}
			models.Directors.Insert(d)
			ids <- d.ID
		}()
		go func() {
			defer wg.Done()
			r := &Review{FilmID: JSONValue("f"), User: JSONValue("u"), Rating: JSONValue(1.0), Comment: JSONValue("c")}
			models.Reviews.Insert(r)
			ids <- r.ID
		}()
	}
	wg.Wait()
	close(ids)

	var got []int
	for id := range ids {
		got = append(got, int(id))
	}
	sort.Ints(got)

	require.Len(t, got, 3*n)
	for i, id := range got {
		assert.Equal(t, 5+i, id)
	}
	assert.EqualValues(t, 5+3*n, store.NextID())
}

func TestValidate(t *testing.T) {
	t.Run("movie year zero is rejected", func(t *testing.T) {
		v := validator.New()
		ValidateMovie(v, &Movie{Title: JSONValue("Ponyo"), Director: JSONValue("Hayao Miyazaki"), Year: JSONValue(0.0)})
		assert.False(t, v.Valid())
		assert.Contains(t, v.Errors, "year")
	})

	t.Run("movie empty title is rejected", func(t *testing.T) {
		v := validator.New()
		ValidateMovie(v, &Movie{Title: JSONValue(""), Director: JSONValue("Hayao Miyazaki"), Year: JSONValue(2008.0)})
		assert.Equal(t, map[string]string{"title": "must be provided"}, v.Errors)
	})

	t.Run("director requires both fields", func(t *testing.T) {
		v := validator.New()
		ValidateDirector(v, &Director{Nama: JSONValue("Isao Takahata")})
		assert.Equal(t, map[string]string{"birthYear": "must be provided"}, v.Errors)
	})

	t.Run("review rating zero is accepted", func(t *testing.T) {
		v := validator.New()
		ValidateReview(v, &Review{FilmID: JSONValue("x"), User: JSONValue("u"), Rating: JSONValue(0.0), Comment: JSONValue("c")})
		assert.True(t, v.Valid())
	})

	t.Run("values of any type are accepted", func(t *testing.T) {
		v := validator.New()
		ValidateDirector(v, &Director{Nama: JSONValue("Goro Miyazaki"), BirthYear: JSONValue(1967)})
		ValidateMovie(v, &Movie{Title: JSONValue([]string{"Ponyo"}), Director: JSONValue(true), Year: JSONValue("x")})
		assert.True(t, v.Valid())
	})

	t.Run("review null rating is accepted", func(t *testing.T) {
		v := validator.New()
		ValidateReview(v, &Review{FilmID: JSONValue("x"), User: JSONValue("u"), Rating: Value("null"), Comment: JSONValue("c")})
		assert.True(t, v.Valid())
	})

	t.Run("review without rating is rejected", func(t *testing.T) {
		v := validator.New()
		ValidateReview(v, &Review{FilmID: JSONValue("x"), User: JSONValue("u"), Comment: JSONValue("c")})
		assert.Equal(t, map[string]string{"rating": "must be provided"}, v.Errors)
	})
}
