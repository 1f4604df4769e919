package dto

type SkillResponse struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	RelatedSkills []string `json:"related_skills"`
}

type SkillSearchResponse struct {
	SkillResponse
	Score float64 `json:"score"`
}

type SkillListResponse struct {
	Categories []string        `json:"categories"`
	Skills     []SkillResponse `json:"skills"`
}

type SkillExpandResponse struct {
	Skills []string `json:"skills"`
}
