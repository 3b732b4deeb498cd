package domain

import (
	"regexp"
	"strings"
)

// UserRole is the access level of an account.
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser:
		return true
	}
	return false
}

// IsAdmin reports whether the role grants administrative access.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// Store identifies the tenant (restaurant) an account belongs to.
type Store string

var storePattern = regexp.MustCompile(`^[A-Z0-9_]{1,32}$`)

// NormalizeStore trims and upper-cases a raw store code.
func NormalizeStore(raw string) Store {
	return Store(strings.ToUpper(strings.TrimSpace(raw)))
}

func (s Store) String() string { return string(s) }

func (s Store) IsValid() bool { return storePattern.MatchString(string(s)) }

// Period is a named date-range token used to scope aggregation queries.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodDaily     Period = "daily"
	PeriodYesterday Period = "yesterday"
	PeriodWeek      Period = "week"
	PeriodWeekly    Period = "weekly"
	PeriodMonth     Period = "month"
	PeriodMonthly   Period = "monthly"
	PeriodAll       Period = "all"
)

func (p Period) String() string { return string(p) }

func (p Period) IsValid() bool {
	switch p {
	case PeriodToday, PeriodDaily, PeriodYesterday, PeriodWeek, PeriodWeekly,
		PeriodMonth, PeriodMonthly, PeriodAll:
		return true
	}
	return false
}

// Canonical collapses alias tokens: daily→today, weekly→week, monthly→month.
func (p Period) Canonical() Period {
	switch p {
	case PeriodDaily:
		return PeriodToday
	case PeriodWeekly:
		return PeriodWeek
	case PeriodMonthly:
		return PeriodMonth
	}
	return p
}
