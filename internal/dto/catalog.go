package dto

// CampusesResponse lists the campuses for the top-level selector.
type CampusesResponse struct {
	Campuses []CampusRef `json:"campuses"`
}

// CampusRef is a single campus entry.
type CampusRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SemestersResponse lists the semester codes of one campus, newest first.
type SemestersResponse struct {
	Campus    string   `json:"campus"`
	Semesters []string `json:"semesters"`
}

// SubjectRef is a subject entry for the cascading selectors.
type SubjectRef struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// SubjectsResponse lists the subjects of one campus/semester scope.
type SubjectsResponse struct {
	Subjects []SubjectRef `json:"subjects"`
}

// SectionRef is a section entry for the cascading selectors.
type SectionRef struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// SectionsResponse lists the sections of one subject.
type SectionsResponse struct {
	Sections []SectionRef `json:"sections"`
}
