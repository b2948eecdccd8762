// Package day04 analyses guard sleep records to pick the best moment to
// sneak past.
package day04

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"

	"github.com/vk/stepgrid/internal/ctxlog"
	"github.com/vk/stepgrid/internal/textparse"
)

var (
	// ErrNoRecords is returned for an input without records.
	ErrNoRecords = errors.New("no guard records")
	// ErrNoSleep is returned when no guard ever slept.
	ErrNoSleep = errors.New("no guard fell asleep")
)

// Parser reads lines such as "[1518-11-01 00:05] falls asleep".
type Parser struct {
	lineRE  *regexp.Regexp
	shiftRE *regexp.Regexp
}

// NewParser compiles the record patterns.
func NewParser() *Parser {
	return &Parser{
		lineRE:  regexp.MustCompile(`^\[(\d+)-(\d+)-(\d+) (\d+):(\d+)\] (.+)$`),
		shiftRE: regexp.MustCompile(`^Guard #(\d+) begins shift$`),
	}
}

// Parse reads every record and returns them in chronological order.
func (p *Parser) Parse(input string) ([]Record, error) {
	var records []Record
	for i, line := range textparse.Lines(input) {
		rec, err := p.parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	slices.SortStableFunc(records, func(a, b Record) int { return a.Time.Compare(b.Time) })
	return records, nil
}

func (p *Parser) parseLine(line string) (Record, error) {
	m := p.lineRE.FindStringSubmatch(line)
	if m == nil {
		return Record{}, fmt.Errorf("malformed record %q", line)
	}

	var fields [5]int
	for j, name := range []string{"year", "month", "day", "hour", "minute"} {
		n, err := textparse.Atoi(name, m[j+1])
		if err != nil {
			return Record{}, err
		}
		fields[j] = n
	}
	rec := Record{Time: Timestamp{Year: fields[0], Month: fields[1], Day: fields[2], Hour: fields[3], Minute: fields[4]}}

	switch text := m[6]; text {
	case "falls asleep":
		rec.Event = FallsAsleep{}
	case "wakes up":
		rec.Event = WakesUp{}
	default:
		s := p.shiftRE.FindStringSubmatch(text)
		if s == nil {
			return Record{}, fmt.Errorf("unknown event %q", text)
		}
		guard, err := textparse.Atoi("guard", s[1])
		if err != nil {
			return Record{}, err
		}
		rec.Event = BeginShift{Guard: guard}
	}
	return rec, nil
}

// SleepLog counts, per guard, how often each minute of the hour was
// spent asleep.
type SleepLog map[int]*[60]int

// Total returns the number of minutes guard slept.
func (l SleepLog) Total(guard int) int {
	total := 0
	for _, n := range l[guard] {
		total += n
	}
	return total
}

// Guards returns the guards that slept at least once, ascending.
func (l SleepLog) Guards() []int {
	return slices.Sorted(maps.Keys(l))
}

// Sleepiest returns the minute guard was most often asleep and how often.
// Ties go to the earlier minute.
func (l SleepLog) Sleepiest(guard int) (minute, count int) {
	for m, n := range l[guard] {
		if n > count {
			minute, count = m, n
		}
	}
	return minute, count
}

// Analyze replays sorted records into a SleepLog.
func Analyze(records []Record) (SleepLog, error) {
	log := make(SleepLog)
	guard := -1
	var asleepAt *Timestamp

	for _, rec := range records {
		switch ev := rec.Event.(type) {
		case BeginShift:
			if asleepAt != nil {
				return nil, fmt.Errorf("guard #%d fell asleep at %s and never woke up", guard, asleepAt)
			}
			guard = ev.Guard
		case FallsAsleep:
			if guard < 0 {
				return nil, fmt.Errorf("%s: falls asleep before any shift began", rec.Time)
			}
			if asleepAt != nil {
				return nil, fmt.Errorf("%s: guard #%d is already asleep", rec.Time, guard)
			}
			t := rec.Time
			asleepAt = &t
		case WakesUp:
			if asleepAt == nil {
				return nil, fmt.Errorf("%s: guard #%d wakes up without falling asleep", rec.Time, guard)
			}
			n, err := MinutesBetween(*asleepAt, rec.Time)
			if err != nil {
				return nil, fmt.Errorf("guard #%d: %w", guard, err)
			}
			minutes, ok := log[guard]
			if !ok {
				minutes = new([60]int)
				log[guard] = minutes
			}
			for m := asleepAt.Minute; m < asleepAt.Minute+n; m++ {
				minutes[m]++
			}
			asleepAt = nil
		}
	}
	if asleepAt != nil {
		return nil, fmt.Errorf("guard #%d fell asleep at %s and never woke up", guard, asleepAt)
	}
	if len(log) == 0 {
		return nil, ErrNoSleep
	}
	return log, nil
}

func (p *Parser) analyze(input string) (SleepLog, error) {
	records, err := p.Parse(input)
	if err != nil {
		return nil, err
	}
	return Analyze(records)
}

// Part1 picks the guard with the most minutes asleep and multiplies their
// id by their sleepiest minute. Ties go to the lower guard id.
func (p *Parser) Part1(ctx context.Context, input string, _ any) (any, error) {
	log, err := p.analyze(input)
	if err != nil {
		return nil, err
	}
	best, bestTotal := -1, -1
	for _, g := range log.Guards() {
		if total := log.Total(g); total > bestTotal {
			best, bestTotal = g, total
		}
	}
	minute, _ := log.Sleepiest(best)
	ctxlog.FromContext(ctx).Debug("Sleepiest guard found.", "guard", best, "minutes", bestTotal, "minute", minute)
	return best * minute, nil
}

// Part2 picks the guard most frequently asleep on the same minute and
// multiplies their id by that minute. Ties go to the lower guard id, then
// the earlier minute.
func (p *Parser) Part2(ctx context.Context, input string, _ any) (any, error) {
	log, err := p.analyze(input)
	if err != nil {
		return nil, err
	}
	best, bestMinute, bestCount := -1, 0, -1
	for _, g := range log.Guards() {
		if minute, count := log.Sleepiest(g); count > bestCount {
			best, bestMinute, bestCount = g, minute, count
		}
	}
	ctxlog.FromContext(ctx).Debug("Most regular sleeper found.", "guard", best, "minute", bestMinute, "times", bestCount)
	return best * bestMinute, nil
}
