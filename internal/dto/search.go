package dto

// SubjectSearchParams are the validated inputs of a subject search. No
// component reads request state directly; handlers fill this explicitly.
type SubjectSearchParams struct {
	Campus    string
	Semester  string
	Query     string
	HideEmpty bool // suppress fully empty grid rows
}

// QueryInfo reports how the raw search text was classified.
type QueryInfo struct {
	Kind          string   `json:"kind"` // exact | fuzzy
	SubjectCode   string   `json:"subject_code,omitempty"`
	SectionPrefix string   `json:"section_prefix,omitempty"`
	Tokens        []string `json:"tokens,omitempty"`
}

// SubjectSearchResponse is the subject-centric search result. Subjects is
// empty, never nil, when nothing matched.
type SubjectSearchResponse struct {
	Query    QueryInfo       `json:"query"`
	Subjects []SubjectResult `json:"subjects"`
}

// SubjectResult groups the sections of one matched subject.
type SubjectResult struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Sections   []SectionResult `json:"sections"`
}

// SectionResult is one section with its weekly grid. Grid is omitted for
// sections without published time blocks; that is a data gap, not an error.
type SectionResult struct {
	Label       string    `json:"label"`
	Capacity    int       `json:"capacity"`
	Instructors []string  `json:"instructors"`
	Grid        []GridRow `json:"grid,omitempty"`
}
