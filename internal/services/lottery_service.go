package services

import (
	"fmt"
	"time"

	"nextdraw/internal/config"
	"nextdraw/internal/models"

	"github.com/google/logger"
)

// Fixed rules of the lottery. These are process-wide and never change.
const (
	LotteryName          = "The Canadian National Lottery"
	ReferenceTimezone    = "America/Toronto"
	UserFallbackTimezone = "Europe/Budapest"

	DrawHour   = 21
	DrawMinute = 30
	DrawSecond = 0

	// lookaheadWeeks always covers at least one draw after any instant.
	lookaheadWeeks = 3
)

// drawDays are the weekdays a draw happens on.
var drawDays = map[time.Weekday]bool{
	time.Sunday:  true,
	time.Tuesday: true,
}

// LotteryService answers next-draw queries.
// It only holds immutable configuration, so one instance can serve
// concurrent queries; every call works on its own local state.
type LotteryService struct {
	defaultTimezone string
	input           *time.Location
	now             func() time.Time
}

// NewLotteryService creates a LotteryService from the runtime configuration.
func NewLotteryService(cfg config.Config) (*LotteryService, error) {
	input := time.Local
	if cfg.InputTimezone != "" {
		loc, err := loadLocation(cfg.InputTimezone)
		if err != nil {
			return nil, fmt.Errorf("input timezone: %w", err)
		}
		input = loc
	}

	return &LotteryService{
		defaultTimezone: cfg.DefaultTimezone,
		input:           input,
		now:             time.Now,
	}, nil
}

// ResolveTimezone picks the caller's timezone: the explicit one if given,
// then the configured default, then the fallback.
func (s *LotteryService) ResolveTimezone(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if s.defaultTimezone != "" {
		return s.defaultTimezone
	}
	return UserFallbackTimezone
}

// ExpandWeeks parses a naive reference timestamp and builds the draw schedule
// for its ISO week and the two following ones in referenceZone.
func (s *LotteryService) ExpandWeeks(reference, referenceZone string) (*models.DrawSchedule, error) {
	ref, err := s.parseReference(reference)
	if err != nil {
		return nil, err
	}
	return expandWeeks(ref, referenceZone)
}

// NextDraw computes the first draw strictly after from (or now, when from is
// empty) and converts it into zone (or the resolved default).
func (s *LotteryService) NextDraw(from, zone string) (*models.NextDraw, error) {
	zone = s.ResolveTimezone(zone)

	callerLoc, err := loadLocation(zone)
	if err != nil {
		return nil, err
	}

	ref, err := s.reference(from)
	if err != nil {
		return nil, err
	}

	sched, err := expandWeeks(ref, ReferenceTimezone)
	if err != nil {
		return nil, err
	}

	_, callerOffset := ref.In(callerLoc).Zone()
	drawTime, err := ConvertOffset(sched.Next.Format(time.DateTime), callerOffset, sched.NextOffset)
	if err != nil {
		return nil, err
	}

	logger.Infof("next draw for %s in %s: %s (offsets caller=%d reference=%d)",
		ref.Format(time.DateTime), zone, drawTime, callerOffset, sched.NextOffset)

	return &models.NextDraw{
		Lottery:   LotteryName,
		Timezone:  zone,
		Reference: ref.Format(time.DateTime),
		DrawTime:  drawTime,
		Line:      fmt.Sprintf("The next draw date: %s-%s", drawTime, zone),
	}, nil
}

// GetNextDrawDay returns the human-readable next draw line.
func (s *LotteryService) GetNextDrawDay(from, zone string) (string, error) {
	next, err := s.NextDraw(from, zone)
	if err != nil {
		return "", err
	}
	return next.Line, nil
}

// Schedule is ExpandWeeks in the reference timezone, defaulting to now.
func (s *LotteryService) Schedule(from string) (*models.DrawSchedule, error) {
	ref, err := s.reference(from)
	if err != nil {
		return nil, err
	}
	return expandWeeks(ref, ReferenceTimezone)
}

func (s *LotteryService) reference(from string) (time.Time, error) {
	if from == "" {
		return s.now().In(s.input).Truncate(time.Second), nil
	}
	return s.parseReference(from)
}

func (s *LotteryService) parseReference(value string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateTime, value, s.input)
	if err != nil {
		return time.Time{}, &DateParseError{Input: value, Err: err}
	}
	return t, nil
}

func expandWeeks(ref time.Time, referenceZone string) (*models.DrawSchedule, error) {
	loc, err := loadLocation(referenceZone)
	if err != nil {
		return nil, err
	}

	year, week := ref.ISOWeek()
	_, offset := ref.In(loc).Zone()

	sched := &models.DrawSchedule{
		Lottery:           LotteryName,
		ReferenceTimezone: referenceZone,
		Year:              year,
		Week:              week,
		Offset:            offset,
		Weeks:             make([]models.DrawWeek, 0, lookaheadWeeks),
	}

	found := false
	for i := 0; i < lookaheadWeeks; i++ {
		monday := isoWeekStart(year, week+i, loc)
		_, isoWeek := monday.ISOWeek()

		// The draw week starts on the Sunday before the ISO Monday.
		anchor := time.Date(monday.Year(), monday.Month(), monday.Day()-1, DrawHour, DrawMinute, DrawSecond, 0, loc)

		days := make(map[string]string, len(drawDays))
		for d := 0; d < 7; d++ {
			day := time.Date(anchor.Year(), anchor.Month(), anchor.Day()+d, DrawHour, DrawMinute, DrawSecond, 0, loc)
			if !drawDays[day.Weekday()] {
				continue
			}
			if !found && day.After(ref) {
				found = true
				sched.Next = day
				_, sched.NextOffset = day.Zone()
			}
			days[day.Weekday().String()] = day.Format(time.DateTime)
		}

		sched.Weeks = append(sched.Weeks, models.DrawWeek{
			Label: fmt.Sprintf("Week %d", isoWeek),
			Week:  isoWeek,
			Days:  days,
		})
	}

	if !found {
		return nil, ErrNoUpcomingDraw
	}
	return sched, nil
}

// isoWeekStart returns Monday 00:00 of the given ISO week in loc.
// Week numbers past the last week of year roll into the next ISO year.
func isoWeekStart(year, week int, loc *time.Location) time.Time {
	// January 4th is always in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	back := (int(jan4.Weekday()) + 6) % 7
	return time.Date(year, time.January, 4-back+7*(week-1), 0, 0, 0, 0, loc)
}

func loadLocation(zone string) (*time.Location, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, &TimezoneError{Zone: zone, Err: err}
	}
	return loc, nil
}
