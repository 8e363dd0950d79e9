package models

import (
	"time"

	"gorm.io/gorm"
)

// UserType values are stored upper-case, matching the registration wire
// format.
const (
	TypeStudent = "STUDENT"
	TypeTeacher = "TEACHER"
	TypeAdmin   = "ADMIN"
)

type User struct {
	gorm.Model
	Email        string `gorm:"index"`
	Phone        string `gorm:"index"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	UserType     string `gorm:"not null"`
	FirstName    string
	LastName     string
	DateOfBirth  string
	Gender       string
	City         string
	Address      string
	Active       bool `gorm:"default:true"`
}

// Student is the role record for student accounts. It owns the
// gamification counters; new accounts start everything at zero.
type Student struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex"`

	InstituteName  string
	InstituteCity  string
	InstituteID    string
	AcademicRollNo string
	GradeYear      string
	SectionCourse  string

	GuardianName         string
	GuardianRelationship string
	GuardianEmail        string
	GuardianPhone        string
	GuardianAddress      string
	GuardianOccupation   string

	Points        int `gorm:"default:0"`
	Coins         int `gorm:"default:0"`
	CurrentStreak int `gorm:"default:0"`
	LongestStreak int `gorm:"default:0"`
	StreakShields int `gorm:"default:0"`
	LastActive    time.Time
}

type Teacher struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex"`

	InstituteName string
	InstituteCity string
	InstituteID   string
	FacultyID     string
	RolePassword  string
}

type Admin struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex"`

	InstituteName string
	InstituteCity string
	InstituteID   string
	AdminRole     string
	RolePassword  string
}

type LoginHistory struct {
	gorm.Model
	UserID    uint
	LoginTime time.Time
}
