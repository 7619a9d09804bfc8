package user

import (
	"github.com/urlaubsplaner/urlaubsplaner/internal/storage"
)

// Service exposes the typed user CRUD surface over the record store.
type Service struct {
	store *storage.Store
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) All() []User {
	recs := s.store.AllUsers()
	users := make([]User, 0, len(recs))
	for _, rec := range recs {
		users = append(users, FromRecord(rec))
	}
	return users
}

// ByDepartment returns users in file order, filtered by department.
func (s *Service) ByDepartment(department string) []User {
	var users []User
	for _, u := range s.All() {
		if u.InDepartment(department) {
			users = append(users, u)
		}
	}
	return users
}

// Get looks a user up by any combination of id, email and phone; see
// storage.UserQuery for the match order.
func (s *Service) Get(q storage.UserQuery) (User, bool) {
	rec, ok := s.store.GetUser(q)
	if !ok {
		return User{}, false
	}
	return FromRecord(rec), true
}

func (s *Service) GetByID(userID string) (User, bool) {
	return s.Get(storage.UserQuery{UserID: userID})
}

// Create stores the user, letting the store default the role when unset.
func (s *Service) Create(u User) (User, error) {
	rec, err := s.store.AddUser(u.ToRecord())
	if err != nil {
		return User{}, err
	}
	return FromRecord(rec), nil
}

func (s *Service) Update(userID string, p Update) (bool, error) {
	return s.store.UpdateUser(userID, p.toRecord())
}

func (s *Service) Delete(userID string) (bool, error) {
	return s.store.DeleteUser(userID)
}

// SetPasswordHash stores a password hash on the user record.
func (s *Service) SetPasswordHash(userID, hash string) (bool, error) {
	return s.store.UpdateUser(userID, storage.Record{"password_hash": hash})
}
