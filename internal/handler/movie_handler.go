package handler

import (
	"cinedex/internal/model/requestresponse"
	"cinedex/internal/ports"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	ports.MovieService
}

func NewMovieHandler(movieService ports.MovieService) *MovieHandler {
	return &MovieHandler{movieService}
}

// ListMovies godoc
// @Summary Список фильмов
// @Description Возвращает фильмы каталога, опционально отфильтрованные по году
// @Tags Movies
// @Produce json
// @Param year query int false "Фильтр по году выпуска"
// @Param limit query int false "Максимальное количество записей"
// @Success 200 {object} requestresponse.MovieListResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /movie-svc/movies [get]
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	movies, err := h.MovieService.ListMovies(ctx, year, limit)
	if err != nil {
		log.Println(err)
		sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		return
	}

	resp := requestresponse.MovieListResponse{Response: []requestresponse.MovieResponse{}}
	for _, movie := range movies {
		resp.Response = append(resp.Response, requestresponse.MovieResponse{
			UUID:  movie.UUID,
			Title: movie.Title,
			Year:  movie.Year,
		})
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// GetMovie godoc
// @Summary Получение фильма
// @Description Возвращает фильм по UUID (сначала проверяется кэш)
// @Tags Movies
// @Produce json
// @Param movie_id path string true "UUID фильма"
// @Success 200 {object} requestresponse.MovieResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /movie-svc/movies/{movie_id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	movieUUID := chi.URLParam(r, "movie_id")

	movie, err := h.MovieService.GetMovie(ctx, movieUUID)
	if err != nil {
		log.Println(err)
		if strings.Contains(err.Error(), "не найден") {
			sendErrorResponse(w, 404, "фильм не найден")
		} else {
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.MovieResponse{
		UUID:  movie.UUID,
		Title: movie.Title,
		Year:  movie.Year,
	})
}

// CreateMovie godoc
// @Summary Создание фильма
// @Description Добавляет фильм в каталог
// @Tags Movies
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateMovieRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.MovieResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /movie-svc/movies [post]
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.CreateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, 400, "некорректный JSON")
		return
	}

	movie, err := h.MovieService.CreateMovie(ctx, req.Title, req.Year)
	if err != nil {
		log.Println(err)
		if strings.Contains(err.Error(), "обязательно") || strings.Contains(err.Error(), "некорректный") {
			sendErrorResponse(w, 400, "некорректные данные фильма")
		} else {
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	w.WriteHeader(201)
	json.NewEncoder(w).Encode(requestresponse.MovieResponse{
		UUID:  movie.UUID,
		Title: movie.Title,
		Year:  movie.Year,
	})
}

// UpdateMovie godoc
// @Summary Обновление фильма
// @Description Обновляет название и год фильма
// @Tags Movies
// @Accept json
// @Produce json
// @Param movie_id path string true "UUID фильма"
// @Param body body requestresponse.UpdateMovieRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.MovieResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /movie-svc/movies/{movie_id} [put]
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	movieUUID := chi.URLParam(r, "movie_id")

	var req requestresponse.UpdateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, 400, "некорректный JSON")
		return
	}

	movie, err := h.MovieService.UpdateMovie(ctx, movieUUID, req.Title, req.Year)
	if err != nil {
		log.Println(err)
		switch {
		case strings.Contains(err.Error(), "не найден"):
			sendErrorResponse(w, 404, "фильм не найден")
		case strings.Contains(err.Error(), "обязательно"):
			sendErrorResponse(w, 400, "некорректные данные фильма")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.MovieResponse{
		UUID:  movie.UUID,
		Title: movie.Title,
		Year:  movie.Year,
	})
}

// DeleteMovie godoc
// @Summary Удаление фильма
// @Description Удаляет фильм, его запись в кэше и постер в S3
// @Tags Movies
// @Param movie_id path string true "UUID фильма"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 204 "Фильм удалён"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /movie-svc/movies/{movie_id} [delete]
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	movieUUID := chi.URLParam(r, "movie_id")

	if err := h.MovieService.DeleteMovie(ctx, movieUUID); err != nil {
		log.Println(err)
		if strings.Contains(err.Error(), "не найден") {
			sendErrorResponse(w, 404, "фильм не найден")
		} else {
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PosterUploadURL godoc
// @Summary URL загрузки постера
// @Description Возвращает presigned PUT URL для загрузки постера фильма в S3
// @Tags Movies
// @Produce json
// @Param movie_id path string true "UUID фильма"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.PosterURLResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /movie-svc/movies/{movie_id}/poster [post]
func (h *MovieHandler) PosterUploadURL(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	movieUUID := chi.URLParam(r, "movie_id")

	url, err := h.MovieService.PosterUploadURL(ctx, movieUUID)
	if err != nil {
		log.Println(err)
		if strings.Contains(err.Error(), "не найден") {
			sendErrorResponse(w, 404, "фильм не найден")
		} else {
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	resp := requestresponse.PosterURLResponse{}
	resp.Response.URL = url

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// PosterDownloadURL godoc
// @Summary URL постера
// @Description Возвращает presigned GET URL на постер фильма
// @Tags Movies
// @Produce json
// @Param movie_id path string true "UUID фильма"
// @Success 200 {object} requestresponse.PosterURLResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /movie-svc/movies/{movie_id}/poster [get]
func (h *MovieHandler) PosterDownloadURL(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	movieUUID := chi.URLParam(r, "movie_id")

	url, err := h.MovieService.PosterDownloadURL(ctx, movieUUID)
	if err != nil {
		log.Println(err)
		switch {
		case strings.Contains(err.Error(), "не найден"):
			sendErrorResponse(w, 404, "фильм не найден")
		case strings.Contains(err.Error(), "нет постера"):
			sendErrorResponse(w, 404, "у фильма нет постера")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	resp := requestresponse.PosterURLResponse{}
	resp.Response.URL = url

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}
