// internal/quiz/clock.go
package quiz

import "time"

// Timer は停止可能な単発タイマーです
type Timer interface {
	Stop() bool
}

// Clock はセッションが使う時刻ソースです。テストでは偽クロックを注入します。
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

// NewClock は time パッケージに基づく実クロックを返します
func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
