package taxonomy

// Skill is one entry of the static catalog. RelatedSkills holds names, not
// IDs, and may reference skills that are not defined in the catalog.
type Skill struct {
	ID            int
	Name          string
	Category      string
	RelatedSkills []string
}
