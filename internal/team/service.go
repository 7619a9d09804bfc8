package team

import (
	"github.com/urlaubsplaner/urlaubsplaner/internal/storage"
)

// Service exposes the typed team CRUD surface over the record store.
type Service struct {
	store *storage.Store
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) All() []Team {
	recs := s.store.AllTeams()
	teams := make([]Team, 0, len(recs))
	for _, rec := range recs {
		teams = append(teams, FromRecord(rec))
	}
	return teams
}

// ByDepartment returns teams in file order, filtered by department.
func (s *Service) ByDepartment(department string) []Team {
	var teams []Team
	for _, t := range s.All() {
		if t.InDepartment(department) {
			teams = append(teams, t)
		}
	}
	return teams
}

func (s *Service) Get(teamID string) (Team, bool) {
	rec, ok := s.store.GetTeam(teamID)
	if !ok {
		return Team{}, false
	}
	return FromRecord(rec), true
}

// Create stores the team, letting the store mint an id when unset.
func (s *Service) Create(t Team) (Team, error) {
	rec, err := s.store.AddTeam(t.ToRecord())
	if err != nil {
		return Team{}, err
	}
	return FromRecord(rec), nil
}

func (s *Service) Update(teamID string, p Update) (bool, error) {
	return s.store.UpdateTeam(teamID, p.toRecord())
}

func (s *Service) Delete(teamID string) (bool, error) {
	return s.store.DeleteTeam(teamID)
}
