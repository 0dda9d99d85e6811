// Package normalize turns the raw, inconsistent date/time and status encodings
// upstream sources emit into a canonical UTC timestamp and lifecycle status.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"unrivaled-games-service/internal/domain"
	"unrivaled-games-service/internal/timeutil"
)

// Kickoff is the normalized result of parsing a source record's raw fields.
type Kickoff struct {
	Time         time.Time
	HasValidTime bool
}

// NormalizeKickoff resolves a canonical UTC kickoff from the raw fields a
// source record may carry, in priority order:
//
//  1. A combined timestamp of at least 19 characters; its first 19 characters
//     parse as date-and-time in UTC.
//  2. The date-only string, combined with an HH:MM prefix of the separate time
//     string when one parses.
//  3. The current instant. This degraded case keeps HasValidTime false so
//     callers render "TBD" instead of treating it as a real tip-off time.
func NormalizeKickoff(dateStr, timeStr, timestampStr string, now func() time.Time) Kickoff {
	if now == nil {
		now = time.Now
	}

	if len(timestampStr) >= 19 {
		if ts, err := time.ParseInLocation(timeutil.TimestampLayout, timestampStr[:19], time.UTC); err == nil {
			return Kickoff{Time: ts, HasValidTime: true}
		}
	}

	if date, err := timeutil.ParseDate(dateStr); err == nil {
		if hour, minute, ok := parseClock(timeStr); ok {
			combined := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC)
			return Kickoff{Time: combined, HasValidTime: true}
		}
		return Kickoff{Time: date, HasValidTime: false}
	}

	return Kickoff{Time: now().UTC(), HasValidTime: false}
}

// parseClock extracts hour and minute from a raw time-of-day string such as
// "19:30:00" or "19:30:00+00:00". Anything past the minute is ignored.
func parseClock(raw string) (hour, minute int, ok bool) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minRaw := parts[1]
	if len(minRaw) > 2 {
		minRaw = minRaw[:2]
	}
	minute, err = strconv.Atoi(minRaw)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// inProgressCodes are the exact status tokens that mean a game is underway
// even though they contain neither "live" nor "progress".
var inProgressCodes = map[string]struct{}{
	"q1":       {},
	"q2":       {},
	"q3":       {},
	"q4":       {},
	"ot":       {},
	"ht":       {},
	"halftime": {},
}

// terminalTokens are the status tokens that mean a game has ended.
var terminalTokens = map[string]struct{}{
	"ft":               {},
	"aet":              {},
	"final":            {},
	"finished":         {},
	"match finished":   {},
	"after extra time": {},
}

// InferStatus maps a raw status token plus score presence onto the canonical
// lifecycle status. Explicit live/terminal tokens win over score inference.
func InferStatus(raw string, homeScore, awayScore *int) domain.GameStatus {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token != "" {
		if strings.Contains(token, "live") || strings.Contains(token, "progress") {
			return domain.StatusLive
		}
		if _, ok := inProgressCodes[token]; ok {
			return domain.StatusLive
		}
		if _, ok := terminalTokens[token]; ok {
			return domain.StatusCompleted
		}
	}
	if homeScore != nil && awayScore != nil {
		return domain.StatusCompleted
	}
	return domain.StatusScheduled
}
