package response

import (
	"github.com/Eughami/cinema-dj-be/internal/data/entity"
)

type SessionResponse struct {
	ID       int64   `json:"id"`
	MovieID  int64   `json:"movie_id"`
	Audio    string  `json:"audio"`
	Subtitle *string `json:"subtitle,omitempty"`
	HallNo   int     `json:"hall_no"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
}

// SessionSeatsResponse is the seat-map payload: the claimed seats plus the
// session and movie detail needed to render it.
type SessionSeatsResponse struct {
	Seats          []string        `json:"seats"`
	SessionDetails SessionResponse `json:"sessionDetails"`
	MovieDetails   MovieResponse   `json:"movieDetails"`
}

func SessionToResponse(session *entity.Session) SessionResponse {
	return SessionResponse{
		ID:       session.ID,
		MovieID:  session.MovieID,
		Audio:    session.Audio,
		Subtitle: session.Subtitle,
		HallNo:   session.HallNo,
		Date:     session.ShowDate.Format("2006-01-02"),
		Time:     session.ShowTime,
	}
}
