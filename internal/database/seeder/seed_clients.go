package seeder

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"talentmatch/internal/database"
)

type ClientsSeeder struct{}

func (ClientsSeeder) Name() string { return "clients" }

// Run inserts a demo client account for local development. The email is
// the conflict key, so re-running is a no-op.
func (ClientsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "clients",
		"id", "email", "company_name", "password_hash",
	); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO clients (id, email, company_name, password_hash)
		VALUES (gen_random_uuid(), $1, $2, $3)
		ON CONFLICT (email) DO NOTHING`,
		"demo@talentmatch.local", "TalentMatch Demo", string(hash),
	)
	return err
}
