package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type freelancerSearchCacheKeyInput struct {
	Skills   []string `json:"skills"`
	MinMatch int      `json:"min_match"`
	Page     int      `json:"page"`
	Limit    int      `json:"limit"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// FreelancersSearchCacheKey hashes the normalized search parameters.
// Skill order is preserved; two queries differing only in order are
// distinct cache entries.
func FreelancersSearchCacheKey(params FreelancerListParams) string {
	skills := make([]string, 0, len(params.Skills))
	for _, s := range params.Skills {
		s = normalizeSearchValue(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	in := freelancerSearchCacheKeyInput{
		Skills:   skills,
		MinMatch: params.MinMatch,
		Page:     params.Page,
		Limit:    params.Limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "freelancers:search:" + hex.EncodeToString(sum[:])
}

func FreelancersSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, "freelancers:search:") {
		return "freelancers:lock:" + strings.TrimPrefix(searchKey, "freelancers:search:")
	}
	return "freelancers:lock:" + searchKey
}
