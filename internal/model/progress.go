package model

import "math"

// Progress статистика выполнения задач пользователя
type Progress struct {
	Total   int `json:"total"`
	Done    int `json:"done"`
	Percent int `json:"percent"`
}

// ProgressFilter диапазон по сроку задачи, обе границы включительно
type ProgressFilter struct {
	UserID string
	From   *Date
	To     *Date
}

// NewProgress считает процент выполнения с округлением до ближайшего целого
func NewProgress(total, done int) Progress {
	p := Progress{Total: total, Done: done}
	if total > 0 {
		p.Percent = int(math.Round(100 * float64(done) / float64(total)))
	}
	return p
}
