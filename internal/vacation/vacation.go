package vacation

import (
	"time"

	"github.com/urlaubsplaner/urlaubsplaner/internal/storage"
)

// Status of a vacation request.
type Status string

const (
	StatusApproved Status = "approved"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusApproved, StatusPending, StatusRejected:
		return true
	}
	return false
}

// DateLayout is the ISO form all stored dates use.
const DateLayout = "2006-01-02"

// Request is a vacation request covering the inclusive date range
// [StartDate, EndDate]. A single-day request has StartDate == EndDate.
// UserID identifies the requester, TeamID the crew the request counts
// against in the team view of the annual overview.
type Request struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	TeamID    string  `json:"team_id"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Status    Status  `json:"status"`
	Note      *string `json:"note"`
	CreatedAt string  `json:"created_at"`
}

// Covers reports whether the request's range contains the given day.
// Requests with unparseable dates cover nothing.
func (r Request) Covers(day time.Time) bool {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return false
	}
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start) && !d.After(end)
}

func (r Request) ToRecord() storage.Record {
	rec := storage.Record{
		"user_id":    r.UserID,
		"team_id":    r.TeamID,
		"start_date": r.StartDate,
		"end_date":   r.EndDate,
		"status":     string(r.Status),
		"note":       nil,
		"created_at": r.CreatedAt,
	}
	if r.ID != "" {
		rec["id"] = r.ID
	}
	if r.Note != nil {
		rec["note"] = *r.Note
	}
	return rec
}

func FromRecord(rec storage.Record) Request {
	return Request{
		ID:        rec.String("id"),
		UserID:    rec.String("user_id"),
		TeamID:    rec.String("team_id"),
		StartDate: rec.String("start_date"),
		EndDate:   rec.String("end_date"),
		Status:    Status(rec.String("status")),
		Note:      rec.StringPtr("note"),
		CreatedAt: rec.String("created_at"),
	}
}
