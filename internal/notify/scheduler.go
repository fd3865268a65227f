// Package notify schedules the daily quote alert. At most one schedule
// is active at a time; scheduling again replaces the previous one.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Defaults used when a stored time string cannot be parsed.
const (
	defaultHour   = 9
	defaultMinute = 0
)

// previewLimit caps the quote text included in an alert body.
const previewLimit = 100

// Alert is the rendered daily notification.
type Alert struct {
	Title string
	Body  string
}

// Sink delivers a rendered alert. Implementations must be safe for
// calls from the scheduler goroutine.
type Sink interface {
	Deliver(ctx context.Context, alert Alert)
}

// LogSink writes alerts to the structured log. It stands in where no
// platform notification channel is wired.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink logging at info level.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogSink{logger: logger.With(slog.String("component", "notify.LogSink"))}
}

// Deliver implements Sink.
func (s *LogSink) Deliver(ctx context.Context, alert Alert) {
	s.logger.InfoContext(ctx, "daily quote alert",
		slog.String("title", alert.Title),
		slog.String("body", alert.Body),
	)
}

// Scheduler fires one alert per day at a fixed local time.
type Scheduler struct {
	sink   Sink
	logger *slog.Logger
	now    func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
}

// SchedulerConfig contains dependencies for the scheduler.
type SchedulerConfig struct {
	Sink   Sink
	Logger *slog.Logger

	// Now overrides the clock, used by tests. Defaults to time.Now.
	Now func() time.Time
}

// NewScheduler creates a scheduler. Panics if Sink is nil.
func NewScheduler(cfg SchedulerConfig) *Scheduler {
	if cfg.Sink == nil {
		panic("Scheduler: Sink is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Scheduler{
		sink:   cfg.Sink,
		logger: logger.With(slog.String("component", "notify.Scheduler")),
		now:    now,
	}
}

// Schedule arranges a daily alert at hour:minute carrying a preview of
// the given quote. Any previous schedule is replaced.
func (s *Scheduler) Schedule(hour, minute int, quoteText, author string) {
	alert := Alert{
		Title: "✨ Quote of the Day",
		Body:  Preview(quoteText, author),
	}

	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.mu.Unlock()

	first := s.nextFiring(hour, minute)
	s.logger.Info("daily alert scheduled",
		slog.String("at", FormatTime(hour, minute)),
		slog.Time("first_firing", first),
	)

	go s.run(ctx, hour, minute, alert)
}

// Cancel stops the active schedule, if any.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		s.logger.Info("daily alert cancelled")
	}
}

func (s *Scheduler) run(ctx context.Context, hour, minute int, alert Alert) {
	for {
		wait := s.nextFiring(hour, minute).Sub(s.now())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()

			return
		case <-timer.C:
			s.sink.Deliver(ctx, alert)
		}
	}
}

// nextFiring is today's hour:minute if still ahead, otherwise
// tomorrow's.
func (s *Scheduler) nextFiring(hour, minute int) time.Time {
	now := s.now()

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

// ParseTime splits an "HH:MM" string into hour and minute. Anything
// unparseable falls back to 09:00.
func ParseTime(value string) (hour, minute int) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return defaultHour, defaultMinute
	}

	hour, errH := strconv.Atoi(parts[0])
	minute, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return defaultHour, defaultMinute
	}

	return hour, minute
}

// FormatTime renders an hour and minute as a 12-hour clock label, for
// example "9:05 AM" or "12:30 PM".
func FormatTime(hour, minute int) string {
	period := "AM"
	display := hour

	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		period = "PM"
	case hour > 12:
		display = hour - 12
		period = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

// Preview renders the alert body: the quote text truncated to 100
// characters, then the attribution.
func Preview(quoteText, author string) string {
	if utf8.RuneCountInString(quoteText) > previewLimit {
		runes := []rune(quoteText)
		quoteText = string(runes[:previewLimit]) + "..."
	}

	return fmt.Sprintf("\"%s\" — %s", quoteText, author)
}
