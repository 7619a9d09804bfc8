package vacation

import (
	"fmt"
	"time"

	"github.com/urlaubsplaner/urlaubsplaner/internal"
	"github.com/urlaubsplaner/urlaubsplaner/internal/storage"
)

// Service exposes the typed vacation-request CRUD surface over the record
// store.
type Service struct {
	store *storage.Store
	now   func() time.Time
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) All() []Request {
	recs := s.store.AllVacationRequests()
	reqs := make([]Request, 0, len(recs))
	for _, rec := range recs {
		reqs = append(reqs, FromRecord(rec))
	}
	return reqs
}

func (s *Service) Get(requestID string) (Request, bool) {
	rec, ok := s.store.GetVacationRequest(requestID)
	if !ok {
		return Request{}, false
	}
	return FromRecord(rec), true
}

// Create validates the date range, defaults the status to pending and
// stores the request. The store mints the id when unset.
func (s *Service) Create(r Request) (Request, error) {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return Request{}, internal.NewValidationError(
			fmt.Sprintf("invalid start date %q, want YYYY-MM-DD", r.StartDate),
			internal.ErrCodeInvalidDate)
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return Request{}, internal.NewValidationError(
			fmt.Sprintf("invalid end date %q, want YYYY-MM-DD", r.EndDate),
			internal.ErrCodeInvalidDate)
	}
	if end.Before(start) {
		return Request{}, internal.NewValidationError(
			"end date must not be before start date",
			internal.ErrCodeInvalidDate)
	}

	if r.Status == "" {
		r.Status = StatusPending
	}
	if !r.Status.Valid() {
		return Request{}, internal.NewValidationError(
			fmt.Sprintf("invalid status %q", r.Status),
			internal.ErrCodeInvalidStatus)
	}
	if r.CreatedAt == "" {
		r.CreatedAt = s.now().Format(DateLayout)
	}

	rec, err := s.store.AddVacationRequest(r.ToRecord())
	if err != nil {
		return Request{}, err
	}
	return FromRecord(rec), nil
}

// SetStatus moves a request to the given status. The bool reports whether
// the request exists.
func (s *Service) SetStatus(requestID string, status Status) (bool, error) {
	if !status.Valid() {
		return false, internal.NewValidationError(
			fmt.Sprintf("invalid status %q", status),
			internal.ErrCodeInvalidStatus)
	}
	return s.store.UpdateVacationRequest(requestID, storage.Record{"status": string(status)})
}

func (s *Service) Approve(requestID string) (bool, error) {
	return s.SetStatus(requestID, StatusApproved)
}

func (s *Service) Reject(requestID string) (bool, error) {
	return s.SetStatus(requestID, StatusRejected)
}

func (s *Service) Delete(requestID string) (bool, error) {
	return s.store.DeleteVacationRequest(requestID)
}
