package model

import "time"

// Tutor репетитор вместе с его слотами
type Tutor struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Subjects   []string `json:"subjects"`
	HourlyRate float64  `json:"hourly_rate"`
	Rating     float64  `json:"rating"`
	Bio        string   `json:"bio"`
	Slots      []Slot   `json:"slots"` // всегда не nil, отсортированы по start
}

type Slot struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TutorFilter необязательные фильтры выборки репетиторов
type TutorFilter struct {
	Subject   *string
	MinRating *float64
}
