package response

import (
	"github.com/Eughami/cinema-dj-be/internal/data/entity"
)

type MovieResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Duration     int     `json:"duration"`
	Genre        *string `json:"genre,omitempty"`
	Actors       *string `json:"actors,omitempty"`
	ReleaseDate  string  `json:"release_date"`
	TransferLink *string `json:"transfer_link,omitempty"`
	Image        string  `json:"image"`
	WideImage    *string `json:"wide_image,omitempty"`
}

type MovieDetailResponse struct {
	MovieResponse
	Sessions []SessionResponse `json:"sessions"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:           movie.ID,
		Title:        movie.Title,
		Description:  movie.Description,
		Duration:     movie.DurationInMinutes,
		Genre:        movie.Genre,
		Actors:       movie.Actors,
		ReleaseDate:  movie.ReleaseDate.Format("2006-01-02"),
		TransferLink: movie.TransferLink,
		Image:        movie.Image,
		WideImage:    movie.WideImage,
	}
}
