package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"talentmatch/internal/database"
	"talentmatch/internal/domain/client"
)

// ClientRepository serves the auth hot path with prepared statements on
// the database/sql view of the shared pgx pool.
type ClientRepository struct {
	stmtCreate      *sql.Stmt
	stmtGetByID     *sql.Stmt
	stmtGetByEmail  *sql.Stmt
	stmtExistsEmail *sql.Stmt
}

func NewClientRepository(db database.DB) (*ClientRepository, error) {
	sqldb := db.SQLDB()
	if sqldb == nil {
		return nil, errors.New("nil db")
	}

	r := &ClientRepository{}
	ctx := context.Background()

	var err error
	r.stmtCreate, err = sqldb.PrepareContext(ctx,
		`INSERT INTO clients (id, email, company_name, password_hash) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	r.stmtGetByID, err = sqldb.PrepareContext(ctx,
		`SELECT id, email, COALESCE(company_name,''), password_hash, created_at, updated_at FROM clients WHERE id = $1`)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	r.stmtGetByEmail, err = sqldb.PrepareContext(ctx,
		`SELECT id, email, COALESCE(company_name,''), password_hash, created_at, updated_at FROM clients WHERE email = $1`)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	r.stmtExistsEmail, err = sqldb.PrepareContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM clients WHERE email = $1)`)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	return r, nil
}

func (r *ClientRepository) Close() error {
	var firstErr error
	closeStmt := func(s *sql.Stmt) {
		if s == nil {
			return
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	closeStmt(r.stmtCreate)
	closeStmt(r.stmtGetByID)
	closeStmt(r.stmtGetByEmail)
	closeStmt(r.stmtExistsEmail)

	return firstErr
}

func (r *ClientRepository) Create(ctx context.Context, c client.Client) error {
	_, err := r.stmtCreate.ExecContext(ctx, c.ID, c.Email, nullableText(c.CompanyName), c.PasswordHash)
	return err
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (client.Client, error) {
	return scanClient(r.stmtGetByID.QueryRowContext(ctx, id))
}

func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (client.Client, error) {
	return scanClient(r.stmtGetByEmail.QueryRowContext(ctx, email))
}

func (r *ClientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.stmtExistsEmail.QueryRowContext(ctx, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

type clientRow interface {
	Scan(dest ...any) error
}

func scanClient(row clientRow) (client.Client, error) {
	var c client.Client
	if err := row.Scan(&c.ID, &c.Email, &c.CompanyName, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return client.Client{}, client.ErrNotFound
		}
		return client.Client{}, err
	}
	return c, nil
}

func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}
