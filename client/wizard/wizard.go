// Package wizard drives the multi-step registration flow. The step sequence
// is derived once from the selected role: students get a guardian step
// between the personal and institute steps, everyone else goes straight
// from personal to institute.
package wizard

import (
	"ecoally/client/validate"
)

// Role is the account type chosen on the personal step.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Step identifies one page of the wizard.
type Step int

const (
	StepPersonal Step = iota
	StepGuardian
	StepInstitute
)

func (s Step) String() string {
	switch s {
	case StepPersonal:
		return "Personal Information"
	case StepGuardian:
		return "Guardian Information"
	case StepInstitute:
		return "Institute Information"
	}
	return ""
}

// StepsFor returns the ordered step sequence for a role.
func StepsFor(role Role) []Step {
	if role == RoleStudent {
		return []Step{StepPersonal, StepGuardian, StepInstitute}
	}
	return []Step{StepPersonal, StepInstitute}
}

// TotalSteps returns the number of wizard steps for a role.
func TotalSteps(role Role) int {
	if role == RoleStudent {
		return 3
	}
	return 2
}

// Draft accumulates the registration fields across steps. The identity
// fields come from the signup form; everything else is filled in per step.
type Draft struct {
	// Initial identity carried over from signup.
	Identifier string
	Username   string
	Password   string

	// Personal.
	FirstName   string
	LastName    string
	DateOfBirth string
	Gender      string
	Phone       string
	City        string
	Address     string
	Role        Role

	// Guardian (students only).
	GuardianName         string
	GuardianRelationship string
	GuardianEmail        string
	GuardianPhone        string
	GuardianAddress      string
	GuardianOccupation   string

	// Institute.
	InstituteName string
	InstituteCity string
	InstituteID   string

	// Role-specific identifiers.
	AcademicRollNo string
	GradeYear      string
	SectionCourse  string
	FacultyID      string
	AdminID        string
	RolePassword   string
}

// Wizard holds the in-progress draft, the current 1-based step position and
// the standing validation errors for that step.
type Wizard struct {
	draft  Draft
	step   int
	errors validate.Errors
}

// New starts a wizard with the identity fields collected at signup.
func New(identifier, username, password string) *Wizard {
	return &Wizard{
		draft: Draft{
			Identifier: identifier,
			Username:   username,
			Password:   password,
		},
		step:   1,
		errors: validate.Errors{},
	}
}

// Draft returns a copy of the accumulated registration data.
func (w *Wizard) Draft() Draft { return w.draft }

// Step returns the current 1-based step position.
func (w *Wizard) Step() int { return w.step }

// TotalSteps returns the step count for the currently selected role.
func (w *Wizard) TotalSteps() int { return TotalSteps(w.draft.Role) }

// Current returns the tagged step at the current position.
func (w *Wizard) Current() Step {
	steps := StepsFor(w.draft.Role)
	if w.step-1 < len(steps) {
		return steps[w.step-1]
	}
	return StepInstitute
}

// Errors returns the standing validation errors, keyed by field name.
func (w *Wizard) Errors() validate.Errors { return w.errors }

// Set updates a single draft field by its wire name and eagerly clears any
// standing error for that field, mirroring clear-on-input behavior.
func (w *Wizard) Set(field, value string) {
	switch field {
	case "firstName":
		w.draft.FirstName = value
	case "lastName":
		w.draft.LastName = value
	case "dateOfBirth":
		w.draft.DateOfBirth = value
	case "gender":
		w.draft.Gender = value
	case "phone":
		w.draft.Phone = value
	case "city":
		w.draft.City = value
	case "address":
		w.draft.Address = value
	case "userType":
		w.draft.Role = Role(value)
	case "guardianName":
		w.draft.GuardianName = value
	case "guardianRelationship":
		w.draft.GuardianRelationship = value
	case "guardianEmail":
		w.draft.GuardianEmail = value
	case "guardianPhone":
		w.draft.GuardianPhone = value
	case "guardianAddress":
		w.draft.GuardianAddress = value
	case "guardianOccupation":
		w.draft.GuardianOccupation = value
	case "instituteName":
		w.draft.InstituteName = value
	case "instituteCity":
		w.draft.InstituteCity = value
	case "instituteId":
		w.draft.InstituteID = value
	case "academicRollNo":
		w.draft.AcademicRollNo = value
	case "gradeYear":
		w.draft.GradeYear = value
	case "sectionCourse":
		w.draft.SectionCourse = value
	case "facultyId":
		w.draft.FacultyID = value
	case "adminId":
		w.draft.AdminID = value
	case "rolePassword":
		w.draft.RolePassword = value
	default:
		return
	}
	delete(w.errors, field)
}

// ValidateStep checks only the fields belonging to the given 1-based step,
// with step meaning resolved against the selected role. It records and
// returns one error per failing field.
func (w *Wizard) ValidateStep(step int) validate.Errors {
	errs := validate.Errors{}
	d := w.draft

	steps := StepsFor(d.Role)
	var kind Step
	if step-1 < len(steps) {
		kind = steps[step-1]
	} else {
		kind = StepInstitute
	}

	switch kind {
	case StepPersonal:
		if validate.Blank(d.FirstName) {
			errs["firstName"] = "First name is required"
		}
		if validate.Blank(d.LastName) {
			errs["lastName"] = "Last name is required"
		}
		if d.DateOfBirth == "" {
			errs["dateOfBirth"] = "Date of birth is required"
		}
		if d.Gender == "" {
			errs["gender"] = "Gender is required"
		}
		if validate.Blank(d.Phone) {
			errs["phone"] = "Phone number is required"
		}
		if validate.Blank(d.City) {
			errs["city"] = "City is required"
		}
		if validate.Blank(d.Address) {
			errs["address"] = "Address is required"
		}
		if d.Role == "" {
			errs["userType"] = "Please select your role"
		}
	case StepGuardian:
		if validate.Blank(d.GuardianName) {
			errs["guardianName"] = "Guardian name is required"
		}
		if validate.Blank(d.GuardianRelationship) {
			errs["guardianRelationship"] = "Relationship is required"
		}
		if validate.Blank(d.GuardianEmail) {
			errs["guardianEmail"] = "Guardian email is required"
		} else if !validate.Email(d.GuardianEmail) {
			errs["guardianEmail"] = "Please enter a valid email"
		}
		if validate.Blank(d.GuardianPhone) {
			errs["guardianPhone"] = "Guardian phone is required"
		}
		if validate.Blank(d.GuardianAddress) {
			errs["guardianAddress"] = "Guardian address is required"
		}
		if validate.Blank(d.GuardianOccupation) {
			errs["guardianOccupation"] = "Guardian occupation is required"
		}
	case StepInstitute:
		if validate.Blank(d.InstituteName) {
			errs["instituteName"] = "Institute name is required"
		}
		if validate.Blank(d.InstituteCity) {
			errs["instituteCity"] = "Institute city is required"
		}
		if validate.Blank(d.InstituteID) {
			errs["instituteId"] = "Institute ID is required"
		}

		switch d.Role {
		case RoleStudent:
			if validate.Blank(d.AcademicRollNo) {
				errs["academicRollNo"] = "Academic roll number is required"
			}
			if validate.Blank(d.GradeYear) {
				errs["gradeYear"] = "Grade/Year is required"
			}
			if validate.Blank(d.SectionCourse) {
				errs["sectionCourse"] = "Section/Course is required"
			}
		case RoleTeacher:
			if validate.Blank(d.FacultyID) {
				errs["facultyId"] = "Faculty ID is required"
			}
			if validate.Blank(d.RolePassword) {
				errs["rolePassword"] = "Password is required"
			}
		case RoleAdmin:
			if validate.Blank(d.AdminID) {
				errs["adminId"] = "Admin ID is required"
			}
			if validate.Blank(d.RolePassword) {
				errs["rolePassword"] = "Password is required"
			}
		}
	}

	w.errors = errs
	return errs
}

// Next validates the current step. A failing step blocks advancement and
// reports its errors. A passing step advances, except on the final step
// where done is true and the merged draft is ready for submission.
func (w *Wizard) Next() (done bool, errs validate.Errors) {
	errs = w.ValidateStep(w.step)
	if !errs.OK() {
		return false, errs
	}
	if w.step < w.TotalSteps() {
		w.step++
		return false, nil
	}
	return true, nil
}

// Back retreats one step, never below the first.
func (w *Wizard) Back() {
	if w.step > 1 {
		w.step--
	}
}
