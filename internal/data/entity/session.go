package entity

import (
	"time"
)

// Session is one screening of a movie. (hall_no, show_date, show_time) is
// unique: a hall cannot host two screenings at once.
type Session struct {
	Base
	MovieID  int64     `db:"movie_id"`
	Audio    string    `db:"audio"`
	Subtitle *string   `db:"subtitle"`
	HallNo   int       `db:"hall_no"`
	ShowDate time.Time `db:"show_date"`
	ShowTime string    `db:"show_time"` // "20:30"
}
