package freelancer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"talentmatch/internal/domain/matching"
)

// Freelancer is one marketplace profile. Skills is stored as a comma
// separated string in Postgres and normalized into a SkillList at the
// repository boundary.
type Freelancer struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Skills       SkillList `json:"skills"`
	HourlyRate   float64   `json:"hourly_rate"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"review_count"`
	Availability string    `json:"availability"`
	AvatarURL    string    `json:"avatar_url"`
	ProfileURL   string    `json:"profile_url"`
	Source       string    `json:"source"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SkillList tolerates both wire shapes seen in imported profile data:
// a JSON array of strings or a single comma-separated string. Non-string
// array elements are dropped silently.
type SkillList []string

func (s *SkillList) UnmarshalJSON(b []byte) error {
	var asString string
	if err := json.Unmarshal(b, &asString); err == nil {
		*s = SkillList(matching.SplitSkills(asString))
		return nil
	}

	var asAny []any
	if err := json.Unmarshal(b, &asAny); err != nil {
		return err
	}

	out := make([]string, 0, len(asAny))
	for _, v := range asAny {
		if str, ok := v.(string); ok {
			out = append(out, str)
		}
	}
	*s = SkillList(matching.NormalizeSkills(out))
	return nil
}

// Normalized returns the skills trimmed with blanks removed.
func (s SkillList) Normalized() []string {
	return matching.NormalizeSkills(s)
}
