package requestresponse

// CreateMovieRequest : тело запроса на создание фильма
type CreateMovieRequest struct {
	Title string `json:"title" example:"Titanic"`
	Year  int    `json:"year" example:"1997"`
}

// UpdateMovieRequest : тело запроса на обновление фильма
type UpdateMovieRequest struct {
	Title string `json:"title" example:"Titanic"`
	Year  int    `json:"year" example:"1997"`
}

// MovieResponse : фильм в ответе API
type MovieResponse struct {
	UUID  string `json:"uuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Title string `json:"title" example:"The Flintstones"`
	Year  int    `json:"year" example:"1994"`
}

// MovieListResponse : список фильмов
type MovieListResponse struct {
	Response []MovieResponse `json:"response"`
}

// PosterURLResponse : presigned URL для загрузки или скачивания постера
type PosterURLResponse struct {
	Response struct {
		URL string `json:"url" example:"https://s3.example.com/posters/b6a1e1c4?X-Amz-Signature=..."`
	} `json:"response"`
}
