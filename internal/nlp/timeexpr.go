package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"finbot/internal/core"
)

// Schedule is the outcome of parsing the free text after a reminder
// trigger: an optional absolute instant, an optional recurrence tag and the
// residual description.
type Schedule struct {
	At          *time.Time
	Recurrence  core.Recurrence
	Description string
}

// relativeRule resolves "daqui a N <unit>" offsets. "um"/"uma" count as 1.
type relativeRule struct {
	re  *regexp.Regexp
	add func(now time.Time, n int) time.Time
}

var relativeRules = []relativeRule{
	{
		re:  regexp.MustCompile(`(?i)daqui a (?:(\d+)|um)\s*minutos?`),
		add: func(now time.Time, n int) time.Time { return now.Add(time.Duration(n) * time.Minute) },
	},
	{
		re:  regexp.MustCompile(`(?i)daqui a (?:(\d+)|uma)\s*horas?`),
		add: func(now time.Time, n int) time.Time { return now.Add(time.Duration(n) * time.Hour) },
	},
	{
		re:  regexp.MustCompile(`(?i)daqui a (?:(\d+)|um)\s*dias?`),
		add: func(now time.Time, n int) time.Time { return now.AddDate(0, 0, n) },
	},
	{
		re:  regexp.MustCompile(`(?i)daqui a (?:(\d+)|uma)\s*semanas?`),
		add: func(now time.Time, n int) time.Time { return now.AddDate(0, 0, 7*n) },
	},
	{
		re:  regexp.MustCompile(`(?i)daqui a (?:(\d+)|um)\s*m(?:e|ê)s(?:es)?`),
		add: func(now time.Time, n int) time.Time { return now.AddDate(0, n, 0) },
	},
}

var (
	absoluteDayRe   = regexp.MustCompile(`(?i)dia\s*(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?`)
	weeklyTagRe     = regexp.MustCompile(`(?i)fixo\s+semanal|toda\s+semana`)
	monthlyTagRe    = regexp.MustCompile(`(?i)fixo\s+mensal|tod[oa]\s+m[eê]s`)
	spaceCollapseRe = regexp.MustCompile(`\s+`)
)

// ParseSchedule resolves the date, time-offset and recurrence expressions in
// text against now. Rules run in a fixed order and each match is consumed
// from the remaining text, so the residual description never contains a
// recognized time expression. A recurrence tag may combine with an instant.
// When neither an instant nor a recurrence is found the whole parse fails.
func ParseSchedule(text string, now time.Time) (Schedule, error) {
	rest := strings.TrimSpace(text)
	sched := Schedule{}

	for _, rule := range relativeRules {
		m := rule.re.FindStringSubmatch(rest)
		if m == nil {
			continue
		}
		n := 1
		if m[1] != "" {
			n, _ = strconv.Atoi(m[1])
		}
		at := rule.add(now, n).Truncate(time.Minute)
		sched.At = &at
		rest = consume(rest, rule.re)
	}

	if m := absoluteDayRe.FindStringSubmatch(rest); m != nil {
		at, err := resolveCalendarDay(m[1], m[2], m[3], now)
		if err != nil {
			return Schedule{}, err
		}
		sched.At = &at
		rest = consume(rest, absoluteDayRe)
	}

	if weeklyTagRe.MatchString(rest) {
		sched.Recurrence = core.Weekly
		rest = consume(rest, weeklyTagRe)
	}
	if monthlyTagRe.MatchString(rest) {
		sched.Recurrence = core.Monthly
		rest = consume(rest, monthlyTagRe)
	}

	if sched.At == nil && sched.Recurrence == "" {
		return Schedule{}, fmt.Errorf("no instant or recurrence in %q: %w", text, core.ErrExtraction)
	}

	sched.Description = strings.TrimSpace(spaceCollapseRe.ReplaceAllString(rest, " "))
	return sched, nil
}

// consume removes the first match of re from s, keeping the surroundings.
func consume(s string, re *regexp.Regexp) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return strings.TrimSpace(s[:loc[0]] + " " + s[loc[1]:])
}

// resolveCalendarDay parses "dia D/M[/YYYY]"; a missing year defaults to the
// current one, a two-digit year to 2000+YY. The date is local midnight.
func resolveCalendarDay(dayStr, monthStr, yearStr string, now time.Time) (time.Time, error) {
	day, _ := strconv.Atoi(dayStr)
	month, _ := strconv.Atoi(monthStr)
	year := now.Year()
	if yearStr != "" {
		year, _ = strconv.Atoi(yearStr)
		if year < 100 {
			year += 2000
		}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid calendar day %s/%s/%s: %w", dayStr, monthStr, yearStr, core.ErrExtraction)
	}
	at := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	// time.Date normalizes overflow (31/04 -> 01/05); reject that.
	if at.Day() != day || at.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("nonexistent calendar day %s/%s: %w", dayStr, monthStr, core.ErrExtraction)
	}
	return at, nil
}

// NextOccurrence advances a fired reminder's instant by one recurrence
// period. Unknown tags fall back to one day; that default is deliberate and
// relied upon by the scheduler.
func NextOccurrence(t time.Time, r core.Recurrence) time.Time {
	switch r {
	case core.Weekly:
		return t.AddDate(0, 0, 7)
	case core.Monthly:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}
