package seeder

import (
	"context"
	"fmt"

	"talentmatch/internal/database"
)

type FreelancersSeeder struct{}

func (FreelancersSeeder) Name() string { return "freelancers" }

// Run inserts a small demo directory. Each row carries a synthetic
// seed:// profile URL so re-running the seeder upserts instead of
// duplicating.
func (FreelancersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "freelancers",
		"id", "name", "title", "location", "skills", "hourly_rate",
		"rating", "review_count", "availability", "profile_url", "source", "is_active",
	); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name         string
		Title        string
		Location     string
		Skills       string
		HourlyRate   float64
		Rating       float64
		Reviews      int
		Availability string
		Slug         string
	}{
		{"Alice Chen", "Frontend Engineer", "Singapore", "React Development, CSS, JavaScript, TypeScript", 65, 4.9, 132, "full-time", "alice-chen"},
		{"Budi Santoso", "Mobile Developer", "Jakarta", "Kotlin, Android Development, Java", 40, 4.7, 87, "full-time", "budi-santoso"},
		{"Carla Mendes", "iOS Developer", "Lisbon", "Swift, SwiftUI, Objective-C", 55, 4.8, 64, "part-time", "carla-mendes"},
		{"Dmitri Ivanov", "Data Scientist", "Berlin", "Python, Machine Learning, SQL, Data Visualization", 70, 4.6, 45, "full-time", "dmitri-ivanov"},
		{"Esha Patel", "DevOps Engineer", "Bangalore", "Docker, Kubernetes, AWS, Terraform", 60, 4.9, 110, "full-time", "esha-patel"},
		{"Farid Rahman", "UI/UX Designer", "Kuala Lumpur", "Figma, UI Design, Prototyping", 35, 4.5, 52, "part-time", "farid-rahman"},
		{"Grace Okafor", "Content Writer", "Lagos", "Copywriting, SEO Writing, Blog Writing", 25, 4.8, 98, "full-time", "grace-okafor"},
		{"Hiro Tanaka", "Video Editor", "Tokyo", "Video Editing, Motion Graphics, Adobe Premiere", 45, 4.7, 73, "part-time", "hiro-tanaka"},
		{"Ingrid Larsen", "Voice Artist", "Oslo", "Voice Over, Narration, Audio Editing", 50, 4.9, 41, "part-time", "ingrid-larsen"},
		{"Jorge Alvarez", "Digital Marketer", "Mexico City", "Social Media Marketing, Google Ads, SEO", 30, 4.4, 66, "full-time", "jorge-alvarez"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO freelancers (
				id, name, title, location, skills, hourly_rate, rating, review_count,
				availability, profile_url, source, is_active
			) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, 'seed', TRUE)
			ON CONFLICT (source, profile_url) DO UPDATE SET
				name = EXCLUDED.name,
				title = EXCLUDED.title,
				location = EXCLUDED.location,
				skills = EXCLUDED.skills,
				hourly_rate = EXCLUDED.hourly_rate,
				rating = EXCLUDED.rating,
				review_count = EXCLUDED.review_count,
				availability = EXCLUDED.availability,
				is_active = TRUE,
				updated_at = now()`,
			it.Name, it.Title, it.Location, it.Skills, it.HourlyRate, it.Rating, it.Reviews,
			it.Availability, "seed://"+it.Slug,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
