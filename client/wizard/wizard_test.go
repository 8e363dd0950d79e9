package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalStepsPerRole(t *testing.T) {
	assert.Equal(t, 3, TotalSteps(RoleStudent))
	assert.Equal(t, 2, TotalSteps(RoleTeacher))
	assert.Equal(t, 2, TotalSteps(RoleAdmin))
}

func TestStepsForRole(t *testing.T) {
	assert.Equal(t, []Step{StepPersonal, StepGuardian, StepInstitute}, StepsFor(RoleStudent))
	assert.Equal(t, []Step{StepPersonal, StepInstitute}, StepsFor(RoleAdmin))
}

func fillPersonal(w *Wizard, role string) {
	w.Set("firstName", "Emma")
	w.Set("lastName", "Wilson")
	w.Set("dateOfBirth", "2010-03-15")
	w.Set("gender", "female")
	w.Set("phone", "+1 (555) 234-5678")
	w.Set("city", "San Francisco")
	w.Set("address", "1234 Green Valley Road, Apt 5B")
	w.Set("userType", role)
}

func TestStudentCompletesThreeSteps(t *testing.T) {
	w := New("emma.wilson@email.com", "EcoExplorer2024", "GreenFuture123!")
	fillPersonal(w, "student")

	done, errs := w.Next()
	require.Nil(t, errs)
	require.False(t, done)
	assert.Equal(t, StepGuardian, w.Current())

	w.Set("guardianName", "Jennifer Wilson")
	w.Set("guardianRelationship", "mother")
	w.Set("guardianEmail", "jennifer.wilson@gmail.com")
	w.Set("guardianPhone", "+1 (555) 234-5679")
	w.Set("guardianAddress", "1234 Green Valley Road, Apt 5B")
	w.Set("guardianOccupation", "Environmental Engineer")

	done, errs = w.Next()
	require.Nil(t, errs)
	require.False(t, done)
	assert.Equal(t, StepInstitute, w.Current())

	w.Set("instituteName", "Greenwood Elementary Institute")
	w.Set("instituteCity", "San Francisco")
	w.Set("instituteId", "SCH001")
	w.Set("academicRollNo", "2024-STU-001")
	w.Set("gradeYear", "Grade 8")
	w.Set("sectionCourse", "Section A")

	done, errs = w.Next()
	require.Nil(t, errs)
	assert.True(t, done)

	draft := w.Draft()
	assert.Equal(t, "emma.wilson@email.com", draft.Identifier)
	assert.Equal(t, "Jennifer Wilson", draft.GuardianName)
	assert.Equal(t, "jennifer.wilson@gmail.com", draft.GuardianEmail)
	assert.Equal(t, "SCH001", draft.InstituteID)
	assert.Equal(t, RoleStudent, draft.Role)
}

func TestTeacherMissingFacultyIDBlocks(t *testing.T) {
	w := New("david.green@email.com", "TeacherGreen42", "EcoTeach@456")
	fillPersonal(w, "teacher")

	done, errs := w.Next()
	require.Nil(t, errs)
	require.False(t, done)
	assert.Equal(t, StepInstitute, w.Current())

	w.Set("instituteName", "Environmental Science College")
	w.Set("instituteCity", "Portland")
	w.Set("instituteId", "COL001")
	w.Set("rolePassword", "EcoTeach@456")

	done, errs = w.Next()
	assert.False(t, done)
	assert.Equal(t, "Faculty ID is required", errs["facultyId"])
	assert.Equal(t, 2, w.Step())
}

func TestPersonalStepRequiresEverything(t *testing.T) {
	w := New("emma.wilson@email.com", "EcoExplorer2024", "GreenFuture123!")

	done, errs := w.Next()
	assert.False(t, done)
	assert.Len(t, errs, 8)
	assert.Equal(t, "First name is required", errs["firstName"])
	assert.Equal(t, "Please select your role", errs["userType"])
	assert.Equal(t, 1, w.Step())
}

func TestSetClearsFieldErrorEagerly(t *testing.T) {
	w := New("emma.wilson@email.com", "EcoExplorer2024", "GreenFuture123!")

	w.Next()
	assert.NotEmpty(t, w.Errors()["firstName"])

	w.Set("firstName", "E")
	_, ok := w.Errors()["firstName"]
	assert.False(t, ok)
	assert.NotEmpty(t, w.Errors()["lastName"])
}

func TestGuardianEmailShape(t *testing.T) {
	w := New("emma.wilson@email.com", "EcoExplorer2024", "GreenFuture123!")
	fillPersonal(w, "student")
	w.Next()

	w.Set("guardianName", "Jennifer Wilson")
	w.Set("guardianRelationship", "mother")
	w.Set("guardianEmail", "not-an-email")
	w.Set("guardianPhone", "+1 (555) 234-5679")
	w.Set("guardianAddress", "1234 Green Valley Road, Apt 5B")
	w.Set("guardianOccupation", "Environmental Engineer")

	done, errs := w.Next()
	assert.False(t, done)
	assert.Equal(t, "Please enter a valid email", errs["guardianEmail"])
}

func TestBackNeverGoesBelowFirstStep(t *testing.T) {
	w := New("emma.wilson@email.com", "EcoExplorer2024", "GreenFuture123!")
	fillPersonal(w, "teacher")

	w.Back()
	assert.Equal(t, 1, w.Step())

	w.Next()
	assert.Equal(t, 2, w.Step())
	w.Back()
	assert.Equal(t, 1, w.Step())
}

func TestInstituteClassification(t *testing.T) {
	assert.Equal(t, "school", InstituteType("SCH001"))
	assert.Equal(t, "college", InstituteType("COL001"))
	assert.Equal(t, "school", InstituteType("XYZ999"))

	assert.Equal(t, "Grade", GradeYearLabel("SCH002"))
	assert.Equal(t, "Year", GradeYearLabel("COL002"))
	assert.Equal(t, "Section", SectionCourseLabel("SCH003"))
	assert.Equal(t, "Course", SectionCourseLabel("COL003"))
}
