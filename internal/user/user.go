package user

import (
	"strings"

	"github.com/urlaubsplaner/urlaubsplaner/internal/storage"
)

// Roles a user record can carry.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the typed view over a stored user record. Optional fields are
// pointers; nil means the field is unset in the file. Date-valued fields
// (Birthday, EntryDate) are ISO YYYY-MM-DD strings.
type User struct {
	UserID       string  `json:"user_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Department   *string `json:"department"`
	Position     *string `json:"position"`
	Birthday     *string `json:"birthday"`
	EntryDate    *string `json:"entry_date"`
	Role         string  `json:"role"`
	PasswordHash *string `json:"-"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// InDepartment reports whether the user belongs to the given department.
// An empty or "all" filter matches everyone.
func (u User) InDepartment(department string) bool {
	if department == "" || strings.EqualFold(department, "all") {
		return true
	}
	return u.Department != nil && *u.Department == department
}

// ToRecord flattens the user into a stored record. Optional fields are
// written explicitly as null, mirroring what the import path has always
// produced; the password hash is only written when present so a merge
// update cannot wipe it.
func (u User) ToRecord() storage.Record {
	rec := storage.Record{
		"user_id":    u.UserID,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      optional(u.Email),
		"phone":      optional(u.Phone),
		"department": optional(u.Department),
		"position":   optional(u.Position),
		"birthday":   optional(u.Birthday),
		"entry_date": optional(u.EntryDate),
		"role":       u.Role,
	}
	if u.Role == "" {
		delete(rec, "role")
	}
	if u.PasswordHash != nil {
		rec["password_hash"] = *u.PasswordHash
	}
	return rec
}

func FromRecord(rec storage.Record) User {
	return User{
		UserID:       rec.String("user_id"),
		FirstName:    rec.String("first_name"),
		LastName:     rec.String("last_name"),
		Email:        rec.StringPtr("email"),
		Phone:        rec.StringPtr("phone"),
		Department:   rec.StringPtr("department"),
		Position:     rec.StringPtr("position"),
		Birthday:     rec.StringPtr("birthday"),
		EntryDate:    rec.StringPtr("entry_date"),
		Role:         rec.String("role"),
		PasswordHash: rec.StringPtr("password_hash"),
	}
}

func optional(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// Update carries the fields of a merge update; nil fields stay untouched.
type Update struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	Department *string
	Position   *string
	Birthday   *string
	EntryDate  *string
	Role       *string
}

func (p Update) toRecord() storage.Record {
	rec := storage.Record{}
	set := func(key string, v *string) {
		if v != nil {
			rec[key] = *v
		}
	}
	set("first_name", p.FirstName)
	set("last_name", p.LastName)
	set("email", p.Email)
	set("phone", p.Phone)
	set("department", p.Department)
	set("position", p.Position)
	set("birthday", p.Birthday)
	set("entry_date", p.EntryDate)
	set("role", p.Role)
	return rec
}
