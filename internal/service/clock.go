package service

import "time"

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock реальные часы
var SystemClock Clock = systemClock{}

// FixedClock часы, всегда возвращающие одно время
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
