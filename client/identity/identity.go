// Package identity defines the contract with the remote identity service
// and ships an HTTP client speaking its JSON envelope.
package identity

import (
	"context"
)

// User is the identity returned by the service. UserType casing follows the
// server; callers normalize it before storing.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Username  string `json:"username"`
	UserType  string `json:"userType"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// RoleRecord is the gamification snapshot returned alongside the user.
// Absent fields unmarshal to zero, which is also the correct default.
type RoleRecord struct {
	Points        int `json:"points"`
	Coins         int `json:"coins"`
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
	StreakShields int `json:"streakShields"`
}

// Credentials carries a login request. Identifier is an email or a phone
// number, the caller's choice. Role is an optional hint.
type Credentials struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	Role       string `json:"role,omitempty"`
}

// RegisterPayload is the merged registration draft in the shape the service
// expects: userType upper-cased, the admin identifier under adminRole.
type RegisterPayload struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Username string `json:"username"`
	Password string `json:"password"`
	UserType string `json:"userType"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	City        string `json:"city"`
	Address     string `json:"address"`

	GuardianName         string `json:"guardianName,omitempty"`
	GuardianRelationship string `json:"guardianRelationship,omitempty"`
	GuardianEmail        string `json:"guardianEmail,omitempty"`
	GuardianPhone        string `json:"guardianPhone,omitempty"`
	GuardianAddress      string `json:"guardianAddress,omitempty"`
	GuardianOccupation   string `json:"guardianOccupation,omitempty"`

	InstituteName string `json:"instituteName"`
	InstituteCity string `json:"instituteCity"`
	InstituteID   string `json:"instituteId"`

	AcademicRollNo string `json:"academicRollNo,omitempty"`
	GradeYear      string `json:"gradeYear,omitempty"`
	SectionCourse  string `json:"sectionCourse,omitempty"`
	FacultyID      string `json:"facultyId,omitempty"`
	AdminRole      string `json:"adminRole,omitempty"`
	RolePassword   string `json:"rolePassword,omitempty"`
}

// AuthResult is returned by login and register.
type AuthResult struct {
	Token      string      `json:"token"`
	User       User        `json:"user"`
	RoleRecord *RoleRecord `json:"roleRecord"`
}

// MeResult is returned by the who-am-I call used for session restore.
type MeResult struct {
	User       User        `json:"user"`
	RoleRecord *RoleRecord `json:"roleRecord"`
}

// PurchaseResult carries the authoritative post-purchase counters.
type PurchaseResult struct {
	Coins         int `json:"coins"`
	StreakShields int `json:"streakShields"`
}

// Service is the remote identity collaborator. Implementations return
// *AuthenticationError for rejected credentials or tokens and
// *TransactionError for failed purchases.
type Service interface {
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	Register(ctx context.Context, payload RegisterPayload) (*AuthResult, error)
	Me(ctx context.Context) (*MeResult, error)
	PurchaseShield(ctx context.Context) (*PurchaseResult, error)
}
