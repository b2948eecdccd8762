package day04

import (
	"cmp"
	"fmt"
)

// Timestamp is a minute-resolution point in time as written in the
// guard records.
type Timestamp struct {
	Year, Month, Day, Hour, Minute int
}

// Compare orders timestamps chronologically. It returns -1, 0 or +1.
func (t Timestamp) Compare(o Timestamp) int {
	if c := cmp.Compare(t.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Month, o.Month); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Day, o.Day); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Hour, o.Hour); c != 0 {
		return c
	}
	return cmp.Compare(t.Minute, o.Minute)
}

// SameHour reports whether both timestamps fall in the same clock hour.
func (t Timestamp) SameHour(o Timestamp) bool {
	return t.Year == o.Year && t.Month == o.Month && t.Day == o.Day && t.Hour == o.Hour
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute)
}

// MinutesBetween returns the minutes elapsed from start to end within one
// hour. It fails when the two are not in the same hour or end precedes start.
func MinutesBetween(start, end Timestamp) (int, error) {
	if !start.SameHour(end) {
		return 0, fmt.Errorf("%s and %s are not in the same hour", start, end)
	}
	if end.Minute < start.Minute {
		return 0, fmt.Errorf("%s is before %s", end, start)
	}
	return end.Minute - start.Minute, nil
}

// Event is what happened at a record's timestamp: BeginShift, FallsAsleep
// or WakesUp.
type Event interface {
	isEvent()
}

// BeginShift marks a guard coming on duty.
type BeginShift struct {
	Guard int
}

// FallsAsleep marks the guard on duty falling asleep.
type FallsAsleep struct{}

// WakesUp marks the guard on duty waking up.
type WakesUp struct{}

func (BeginShift) isEvent()  {}
func (FallsAsleep) isEvent() {}
func (WakesUp) isEvent()     {}

// Record is one line of the guard log.
type Record struct {
	Time  Timestamp
	Event Event
}
