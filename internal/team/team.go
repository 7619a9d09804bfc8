package team

import (
	"strconv"
	"strings"

	"github.com/urlaubsplaner/urlaubsplaner/internal/storage"
)

// Team is a work crew ("Kolonne") shown as one row of the annual overview.
type Team struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Members    int     `json:"members"`
	Department *string `json:"department"`
}

// InDepartment reports whether the team belongs to the given department.
// An empty or "all" filter matches everyone.
func (t Team) InDepartment(department string) bool {
	if department == "" || strings.EqualFold(department, "all") {
		return true
	}
	return t.Department != nil && *t.Department == department
}

func (t Team) ToRecord() storage.Record {
	rec := storage.Record{
		"name":    t.Name,
		"members": t.Members,
	}
	if t.ID != "" {
		rec["id"] = t.ID
	}
	if t.Department != nil {
		rec["department"] = *t.Department
	}
	return rec
}

func FromRecord(rec storage.Record) Team {
	members, _ := strconv.Atoi(rec.String("members"))
	return Team{
		ID:         rec.String("id"),
		Name:       rec.String("name"),
		Members:    members,
		Department: rec.StringPtr("department"),
	}
}

// Update carries the fields of a merge update; nil fields stay untouched.
type Update struct {
	Name       *string
	Members    *int
	Department *string
}

func (p Update) toRecord() storage.Record {
	rec := storage.Record{}
	if p.Name != nil {
		rec["name"] = *p.Name
	}
	if p.Members != nil {
		rec["members"] = *p.Members
	}
	if p.Department != nil {
		rec["department"] = *p.Department
	}
	return rec
}
