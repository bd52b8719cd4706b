// Package resources serves the learning-resource table consulted for
// missing skills. The table is an optional collaborator: when absent
// the lookup is empty and every query returns no resources.
package resources

// Resource is one learning reference attached to a skill gap.
type Resource struct {
	Skill    string `json:"skill"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Provider string `json:"provider"`
}
