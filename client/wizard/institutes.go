package wizard

// Institute is one entry in the known-institute registry. The ID prefix
// decides whether school or college labels are shown; classification never
// gates submission.
type Institute struct {
	ID   string
	Name string
	Type string // school or college
	City string
}

var knownInstitutes = []Institute{
	{ID: "SCH001", Name: "Greenwood Elementary Institute", Type: "school", City: "San Francisco"},
	{ID: "SCH002", Name: "Hollywood High Institute", Type: "school", City: "Los Angeles"},
	{ID: "SCH003", Name: "Seattle Academy of Arts & Sciences", Type: "school", City: "Seattle"},
	{ID: "COL001", Name: "Environmental Science College", Type: "college", City: "Portland"},
	{ID: "COL002", Name: "Austin Environmental University", Type: "college", City: "Austin"},
	{ID: "COL003", Name: "Denver Environmental Academy", Type: "college", City: "Denver"},
}

// LookupInstitute resolves an institute ID against the registry.
func LookupInstitute(id string) (Institute, bool) {
	for _, inst := range knownInstitutes {
		if inst.ID == id {
			return inst, true
		}
	}
	return Institute{}, false
}

// InstituteType classifies an institute ID. Unknown IDs default to school.
func InstituteType(id string) string {
	if inst, ok := LookupInstitute(id); ok {
		return inst.Type
	}
	return "school"
}

// GradeYearLabel returns the label for the grade/year field, which depends
// on the institute classification.
func GradeYearLabel(id string) string {
	if InstituteType(id) == "college" {
		return "Year"
	}
	return "Grade"
}

// SectionCourseLabel returns the label for the section/course field.
func SectionCourseLabel(id string) string {
	if InstituteType(id) == "college" {
		return "Course"
	}
	return "Section"
}
