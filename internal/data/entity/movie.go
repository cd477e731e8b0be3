package entity

import (
	"time"
)

type Movie struct {
	Base
	Title             string    `db:"title"`
	Description       string    `db:"description"`
	DurationInMinutes int       `db:"duration_in_minutes"`
	Genre             *string   `db:"genre"`
	Actors            *string   `db:"actors"`
	ReleaseDate       time.Time `db:"release_date"`
	TransferLink      *string   `db:"transfer_link"`
	Image             string    `db:"image"`
	WideImage         *string   `db:"wide_image"`
}
