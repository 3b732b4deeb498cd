package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

const (
	maxLocations         = 50
	maxChecksPerLocation = 100
	maxQuestionLength    = 500
	maxActionLength      = 1000
	maxDurationLength    = 64
)

// CheckInput is one answered question.
type CheckInput struct {
	Question string
	Result   bool
	Action   *string
}

// LocationInput is one visited location with its answered checks.
type LocationInput struct {
	Name   string
	Checks []CheckInput
}

// CreateReportInput holds a submitted travel path.
type CreateReportInput struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  string
	Locations []LocationInput
}

// normalize trims free-text fields in place.
func (i *CreateReportInput) normalize() {
	i.Duration = strings.TrimSpace(i.Duration)
	for li := range i.Locations {
		loc := &i.Locations[li]
		loc.Name = strings.TrimSpace(loc.Name)
		for ci := range loc.Checks {
			c := &loc.Checks[ci]
			c.Question = strings.TrimSpace(c.Question)
			if c.Action != nil {
				a := strings.TrimSpace(*c.Action)
				c.Action = &a
			}
		}
	}
}

// Validate validates the create report input.
func (i CreateReportInput) Validate() error {
	var errs []domain.FieldError

	if i.StartTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "startTime", Message: "required"})
	}
	if i.EndTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "endTime", Message: "required"})
	}
	if !i.StartTime.IsZero() && !i.EndTime.IsZero() && i.EndTime.Before(i.StartTime) {
		errs = append(errs, domain.FieldError{Field: "endTime", Message: "must not be before startTime"})
	}
	if len(i.Duration) > maxDurationLength {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "too long"})
	}

	switch {
	case len(i.Locations) == 0:
		errs = append(errs, domain.FieldError{Field: "locations", Message: "at least one location required"})
	case len(i.Locations) > maxLocations:
		errs = append(errs, domain.FieldError{Field: "locations", Message: fmt.Sprintf("at most %d locations", maxLocations)})
	}

	for li, loc := range i.Locations {
		prefix := fmt.Sprintf("locations[%d]", li)
		if loc.Name == "" {
			errs = append(errs, domain.FieldError{Field: prefix + ".name", Message: "required"})
		}

		switch {
		case len(loc.Checks) == 0:
			errs = append(errs, domain.FieldError{Field: prefix + ".checks", Message: "at least one check required"})
		case len(loc.Checks) > maxChecksPerLocation:
			errs = append(errs, domain.FieldError{Field: prefix + ".checks", Message: fmt.Sprintf("at most %d checks", maxChecksPerLocation)})
		}

		for ci, c := range loc.Checks {
			field := fmt.Sprintf("%s.checks[%d]", prefix, ci)
			if c.Question == "" {
				errs = append(errs, domain.FieldError{Field: field + ".question", Message: "required"})
			} else if len(c.Question) > maxQuestionLength {
				errs = append(errs, domain.FieldError{Field: field + ".question", Message: "too long"})
			}
			if c.Action != nil && len(*c.Action) > maxActionLength {
				errs = append(errs, domain.FieldError{Field: field + ".action", Message: "too long"})
			}
		}
	}

	return domain.CheckFields(errs)
}

// toDomain builds the report to persist. Actions survive only on failed
// checks, and empty actions are dropped.
func (i CreateReportInput) toDomain(userID uuid.UUID) *domain.Report {
	r := &domain.Report{
		ID:        uuid.New(),
		UserID:    userID,
		StartTime: i.StartTime,
		EndTime:   i.EndTime,
		Duration:  i.Duration,
		Locations: make([]domain.LocationCheck, 0, len(i.Locations)),
	}
	if secs, ok := domain.ParseDuration(i.Duration); ok {
		r.DurationSeconds = &secs
	}

	for _, loc := range i.Locations {
		items := make([]domain.CheckItem, 0, len(loc.Checks))
		for _, c := range loc.Checks {
			item := domain.CheckItem{Question: c.Question, Result: c.Result}
			if !c.Result && c.Action != nil && *c.Action != "" {
				action := *c.Action
				item.Action = &action
			}
			items = append(items, item)
		}
		r.Locations = append(r.Locations, domain.LocationCheck{Name: loc.Name, CheckItems: items})
	}
	return r
}
