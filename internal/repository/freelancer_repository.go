package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"talentmatch/internal/database"
	"talentmatch/internal/domain/freelancer"
	"talentmatch/internal/domain/matching"
)

// FreelancerUpsert is one imported or seeded profile row. Rows are keyed
// by (source, profile_url).
type FreelancerUpsert struct {
	Name         string
	Title        string
	Location     string
	Skills       []string
	HourlyRate   float64
	Rating       float64
	ReviewCount  int
	Availability string
	AvatarURL    string
	ProfileURL   string
	Source       string
}

type FreelancerRepository interface {
	ListActive(ctx context.Context) ([]freelancer.Freelancer, error)
	GetByID(ctx context.Context, id uuid.UUID) (freelancer.Freelancer, error)
	Upsert(ctx context.Context, rows []FreelancerUpsert) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

type PostgresFreelancerRepository struct {
	db database.DB
}

func NewPostgresFreelancerRepository(db database.DB) *PostgresFreelancerRepository {
	return &PostgresFreelancerRepository{db: db}
}

const freelancerColumns = `id, name, COALESCE(title,''), COALESCE(location,''), skills,
	hourly_rate, rating, review_count, COALESCE(availability,''), COALESCE(avatar_url,''),
	COALESCE(profile_url,''), source, is_active, created_at, updated_at`

func (r *PostgresFreelancerRepository) ListActive(ctx context.Context) ([]freelancer.Freelancer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+freelancerColumns+` FROM freelancers WHERE is_active ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]freelancer.Freelancer, 0)
	for rows.Next() {
		f, err := scanFreelancer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresFreelancerRepository) GetByID(ctx context.Context, id uuid.UUID) (freelancer.Freelancer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+freelancerColumns+` FROM freelancers WHERE id = $1`, id)
	return scanFreelancer(row)
}

func (r *PostgresFreelancerRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM freelancers WHERE is_active`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresFreelancerRepository) Upsert(ctx context.Context, items []FreelancerUpsert) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var total int64
	for _, it := range items {
		skills := joinSkills(it.Skills)
		affected, err := tx.Exec(ctx,
			`INSERT INTO freelancers (
				id, name, title, location, skills, hourly_rate, rating, review_count,
				availability, avatar_url, profile_url, source, is_active
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,TRUE)
			ON CONFLICT (source, profile_url) DO UPDATE SET
				name = EXCLUDED.name,
				title = EXCLUDED.title,
				location = EXCLUDED.location,
				skills = EXCLUDED.skills,
				hourly_rate = EXCLUDED.hourly_rate,
				rating = EXCLUDED.rating,
				review_count = EXCLUDED.review_count,
				availability = EXCLUDED.availability,
				avatar_url = EXCLUDED.avatar_url,
				is_active = TRUE,
				updated_at = now()`,
			uuid.New(), it.Name, it.Title, it.Location, skills, it.HourlyRate, it.Rating,
			it.ReviewCount, it.Availability, it.AvatarURL, it.ProfileURL, it.Source,
		)
		if err != nil {
			return 0, err
		}
		total += affected
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return total, nil
}

type freelancerRow interface {
	Scan(dest ...any) error
}

func scanFreelancer(row freelancerRow) (freelancer.Freelancer, error) {
	var f freelancer.Freelancer
	var skillsCSV string
	var createdAt, updatedAt time.Time
	err := row.Scan(
		&f.ID, &f.Name, &f.Title, &f.Location, &skillsCSV,
		&f.HourlyRate, &f.Rating, &f.ReviewCount, &f.Availability, &f.AvatarURL,
		&f.ProfileURL, &f.Source, &f.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return freelancer.Freelancer{}, err
	}
	f.Skills = freelancer.SkillList(matching.SplitSkills(skillsCSV))
	f.CreatedAt = createdAt
	f.UpdatedAt = updatedAt
	return f, nil
}

func joinSkills(skills []string) string {
	return strings.Join(matching.NormalizeSkills(skills), ", ")
}
