package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// File names of the three collections inside the data directory.
const (
	usersFile    = "users.json"
	teamsFile    = "teams.json"
	requestsFile = "vacation_requests.json"
)

// Store owns the JSON-file-backed collections: users, teams and vacation
// requests. It is opened once and injected into every consumer; nothing else
// touches the files. Every mutation is a whole-file read-modify-write, which
// is fine at the data volumes of a single-organization planner.
type Store struct {
	dataDir string
	log     *slog.Logger
	idgen   *IDGenerator

	// Single-writer lock: mutations across goroutines in one process stay
	// serialized. There is no cross-process locking.
	mu sync.Mutex

	users    *collection
	teams    *collection
	requests *collection
}

// Open prepares the data directory and the collection files. Missing files
// are created as empty arrays.
func Open(dataDir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{
		dataDir: dataDir,
		log:     log,
		idgen:   NewIDGenerator(),
	}
	s.users = &collection{store: s, file: usersFile, idField: "user_id"}
	s.teams = &collection{store: s, file: teamsFile, idField: "id"}
	s.requests = &collection{store: s, file: requestsFile, idField: "id"}

	for _, c := range []*collection{s.users, s.teams, s.requests} {
		if _, err := os.Stat(c.path()); os.IsNotExist(err) {
			if err := c.save([]Record{}); err != nil {
				return nil, fmt.Errorf("initialize %s: %w", c.file, err)
			}
		}
	}

	return s, nil
}

// ----------------- USERS -----------------

// UserQuery carries the lookup keys for a user. Any combination may be set;
// for each record the keys are checked in fixed order: user_id, then email,
// then phone. The scan stays in file order, so with several keys supplied an
// earlier record matching a lower-priority key shadows a later record
// matching a higher-priority one. That is long-standing behavior callers
// rely on for login-by-anything.
type UserQuery struct {
	UserID string
	Email  string
	Phone  string
}

func (s *Store) AllUsers() []Record {
	return s.users.all()
}

func (s *Store) GetUser(q UserQuery) (Record, bool) {
	for _, rec := range s.users.all() {
		if rec.matches("user_id", q.UserID) {
			return rec, true
		}
		if rec.matches("email", q.Email) {
			return rec, true
		}
		if rec.matches("phone", q.Phone) {
			return rec, true
		}
	}
	return nil, false
}

// AddUser appends the record, defaulting the role to "user" when absent.
// There is no uniqueness check on user_id; lookups return the first match.
func (s *Store) AddUser(rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := rec.Clone()
	if _, ok := stored["role"]; !ok {
		stored["role"] = "user"
	}

	recs := s.users.all()
	recs = append(recs, stored)
	if err := s.users.save(recs); err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

func (s *Store) UpdateUser(userID string, partial Record) (bool, error) {
	return s.updateIn(s.users, userID, partial)
}

func (s *Store) DeleteUser(userID string) (bool, error) {
	return s.deleteIn(s.users, userID)
}

// ----------------- TEAMS -----------------

func (s *Store) AllTeams() []Record {
	return s.teams.all()
}

func (s *Store) GetTeam(teamID string) (Record, bool) {
	return s.teams.find(teamID)
}

// AddTeam appends the record, minting an id when the caller did not supply
// one.
func (s *Store) AddTeam(rec Record) (Record, error) {
	return s.addWithID(s.teams, rec)
}

func (s *Store) UpdateTeam(teamID string, partial Record) (bool, error) {
	return s.updateIn(s.teams, teamID, partial)
}

func (s *Store) DeleteTeam(teamID string) (bool, error) {
	return s.deleteIn(s.teams, teamID)
}

// ----------------- VACATION REQUESTS -----------------

func (s *Store) AllVacationRequests() []Record {
	return s.requests.all()
}

func (s *Store) GetVacationRequest(requestID string) (Record, bool) {
	return s.requests.find(requestID)
}

func (s *Store) AddVacationRequest(rec Record) (Record, error) {
	return s.addWithID(s.requests, rec)
}

func (s *Store) UpdateVacationRequest(requestID string, partial Record) (bool, error) {
	return s.updateIn(s.requests, requestID, partial)
}

func (s *Store) DeleteVacationRequest(requestID string) (bool, error) {
	return s.deleteIn(s.requests, requestID)
}

// ----------------- SHARED MUTATIONS -----------------

func (s *Store) addWithID(c *collection, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := rec.Clone()
	if _, ok := stored[c.idField]; !ok {
		stored[c.idField] = s.idgen.Generate()
	}

	recs := c.all()
	recs = append(recs, stored)
	if err := c.save(recs); err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

// updateIn shallow-merges partial into the first record whose id matches.
// The bool reports whether a match was found, even when writing the file
// fails afterwards; the error only covers writing.
func (s *Store) updateIn(c *collection, id string, partial Record) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := c.all()
	for i, rec := range recs {
		if rec.matches(c.idField, id) {
			recs[i].Merge(partial)
			return true, c.save(recs)
		}
	}
	return false, nil
}

func (s *Store) deleteIn(c *collection, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := c.all()
	for i, rec := range recs {
		if rec.matches(c.idField, id) {
			recs = append(recs[:i], recs[i+1:]...)
			return true, c.save(recs)
		}
	}
	return false, nil
}

// ----------------- COLLECTION -----------------

type collection struct {
	store   *Store
	file    string
	idField string
}

func (c *collection) path() string {
	return filepath.Join(c.store.dataDir, c.file)
}

// all loads the collection in file order. A missing, unreadable or corrupt
// file degrades to an empty collection; the condition is logged so data loss
// is at least diagnosable, but it is never surfaced as an error.
func (c *collection) all() []Record {
	data, err := os.ReadFile(c.path())
	if err != nil {
		if !os.IsNotExist(err) {
			c.store.log.Warn("collection unreadable, treating as empty",
				"file", c.file, "error", err)
		}
		return []Record{}
	}

	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		c.store.log.Warn("collection corrupt, treating as empty",
			"file", c.file, "error", err)
		return []Record{}
	}
	if recs == nil {
		return []Record{}
	}
	return recs
}

func (c *collection) find(id string) (Record, bool) {
	for _, rec := range c.all() {
		if rec.matches(c.idField, id) {
			return rec, true
		}
	}
	return nil, false
}

// save rewrites the whole collection file: UTF-8, 4-space indent, non-ASCII
// preserved literally so the files stay human-diffable. The write goes to a
// temp file first and is moved into place.
func (c *collection) save(recs []Record) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("encode %s: %w", c.file, err)
	}

	tmp := c.path() + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.file, err)
	}
	return os.Rename(tmp, c.path())
}
