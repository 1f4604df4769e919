package dto

import "github.com/google/uuid"

type FreelancerResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	Skills        []string  `json:"skills"`
	HourlyRate    float64   `json:"hourly_rate"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"review_count"`
	Availability  string    `json:"availability"`
	AvatarURL     string    `json:"avatar_url"`
	MatchScore    int       `json:"match_score"`
	MatchedSkills []string  `json:"matched_skills"`
	MatchType     string    `json:"match_type"`
	IsMatch       bool      `json:"is_match"`
}

type PaginationResponse struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

type FreelancerListResponse struct {
	Freelancers []FreelancerResponse `json:"freelancers"`
	Pagination  PaginationResponse   `json:"pagination"`
}
