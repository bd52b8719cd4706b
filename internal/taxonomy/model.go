// Package taxonomy owns the skill taxonomy: category and role lookup
// over an immutable, shared index built once at startup.
package taxonomy

// Requirements lists a role's skills in taxonomy order. Taxonomy authors
// encode priority through list order, so it is never re-sorted.
type Requirements struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// Taxonomy is the raw loaded form before indexing.
type Taxonomy struct {
	// Categories maps a category name to its skill terms.
	Categories map[string][]string
	// Roles maps a job-role name to its required/preferred skill lists.
	Roles map[string]Requirements
	// Industries maps an industry name to keywords used for the
	// related-industry bonus.
	Industries map[string][]string
}

// Empty reports whether the taxonomy carries no usable data.
func (t Taxonomy) Empty() bool {
	return len(t.Categories) == 0 && len(t.Roles) == 0
}

// OtherCategory is returned for skills absent from the taxonomy.
const OtherCategory = "Other"
