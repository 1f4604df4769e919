package importer

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"talentmatch/internal/config"
	"talentmatch/internal/database"
	"talentmatch/internal/domain/freelancer"
	"talentmatch/internal/repository"
)

type fakeDB struct {
	mu   sync.Mutex
	runs map[uuid.UUID]string
	logs []string
}

func newFakeDB() *fakeDB {
	return &fakeDB{runs: map[uuid.UUID]string{}}
}

func (db *fakeDB) Ping(ctx context.Context) error { return nil }
func (db *fakeDB) Close() error                   { return nil }
func (db *fakeDB) SQLDB() *sql.DB                 { return nil }

func (db *fakeDB) Begin(ctx context.Context) (database.Tx, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db *fakeDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	switch {
	case strings.HasPrefix(q, "insert into import_runs"):
		db.runs[args[0].(uuid.UUID)] = "running"
		return 1, nil
	case strings.HasPrefix(q, "update import_runs"):
		db.runs[args[0].(uuid.UUID)] = args[2].(string)
		return 1, nil
	case strings.HasPrefix(q, "insert into import_logs"):
		db.logs = append(db.logs, args[3].(string))
		return 1, nil
	default:
		return 0, nil
	}
}

func (db *fakeDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db *fakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return nil
}

type memFreelancerRepo struct {
	mu   sync.Mutex
	rows map[string]repository.FreelancerUpsert
}

func newMemFreelancerRepo() *memFreelancerRepo {
	return &memFreelancerRepo{rows: map[string]repository.FreelancerUpsert{}}
}

func (r *memFreelancerRepo) ListActive(ctx context.Context) ([]freelancer.Freelancer, error) {
	return nil, nil
}

func (r *memFreelancerRepo) GetByID(ctx context.Context, id uuid.UUID) (freelancer.Freelancer, error) {
	return freelancer.Freelancer{}, fmt.Errorf("not implemented")
}

func (r *memFreelancerRepo) CountActive(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *memFreelancerRepo) Upsert(ctx context.Context, items []repository.FreelancerUpsert) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range items {
		r.rows[it.Source+"|"+it.ProfileURL] = it
	}
	return int64(len(items)), nil
}

const profileAliceHTML = `<html><body>
	<h1>Alice Wong</h1>
	<h2>Frontend Engineer</h2>
	<div class="location">Singapore</div>
	<ul class="skills"><li>React Development</li><li>TypeScript</li><li>CSS</li></ul>
	<span class="rate">$45/hr</span>
	<span class="rating">4.8</span>
	<span class="reviews">37 reviews</span>
	<span class="availability">full-time</span>
	<img class="avatar" src="/img/alice.png">
</body></html>`

const profileBobHTML = `<html><body>
	<h1>Bob Tan</h1>
	<h2>Backend Engineer</h2>
	<div class="location">Jakarta</div>
	<ul class="skills"><li>Go</li><li>PostgreSQL</li></ul>
	<span class="rate">$60/hr</span>
	<span class="rating">4.5</span>
	<span class="reviews">12 reviews</span>
</body></html>`

func newDirectoryServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/freelancers", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<a href="/freelancers/alice">Alice</a>
			<a href="/freelancers/bob">Bob</a>
			<a href="/freelancers/alice?ref=sidebar">Alice again</a>
			<a href="/about">About</a>
		</body></html>`))
	})
	mux.HandleFunc("/freelancers/alice", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(profileAliceHTML))
	})
	mux.HandleFunc("/freelancers/bob", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(profileBobHTML))
	})
	return httptest.NewServer(mux)
}

func TestDirectoryImporter_SuccessAndIdempotent(t *testing.T) {
	server := newDirectoryServer(t)
	defer server.Close()

	db := newFakeDB()
	repo := newMemFreelancerRepo()
	imp := NewDirectoryImporter(db, repo, nil, config.ImporterConfig{
		BaseURL: server.URL,
		Pages:   1,
		Workers: 3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sum, err := imp.Run(ctx)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if sum.Imported != 2 {
		t.Fatalf("expected 2 imported, got %d", sum.Imported)
	}
	if sum.RunID == uuid.Nil {
		t.Fatalf("expected a run id")
	}
	if sum.Source != "directory" {
		t.Fatalf("unexpected source %q", sum.Source)
	}

	sum, err = imp.Run(ctx)
	if err != nil {
		t.Fatalf("run error (2nd): %v", err)
	}
	if sum.Imported != 2 {
		t.Fatalf("expected 2 imported on rerun, got %d", sum.Imported)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if got := len(repo.rows); got != 2 {
		t.Fatalf("expected 2 unique profiles, got %d", got)
	}

	alice, ok := repo.rows["directory|"+server.URL+"/freelancers/alice"]
	if !ok {
		t.Fatalf("alice not upserted, keys=%v", keys(repo.rows))
	}
	if alice.Name != "Alice Wong" {
		t.Fatalf("unexpected name %q", alice.Name)
	}
	if alice.Title != "Frontend Engineer" {
		t.Fatalf("unexpected title %q", alice.Title)
	}
	if len(alice.Skills) != 3 || alice.Skills[0] != "React Development" {
		t.Fatalf("unexpected skills %v", alice.Skills)
	}
	if alice.HourlyRate != 45 {
		t.Fatalf("unexpected rate %v", alice.HourlyRate)
	}
	if alice.Rating != 4.8 {
		t.Fatalf("unexpected rating %v", alice.Rating)
	}
	if alice.ReviewCount != 37 {
		t.Fatalf("unexpected review count %d", alice.ReviewCount)
	}
	if !strings.HasSuffix(alice.AvatarURL, "/img/alice.png") {
		t.Fatalf("unexpected avatar %q", alice.AvatarURL)
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	for id, status := range db.runs {
		if status != "finished" {
			t.Fatalf("run %s not finished: %s", id, status)
		}
	}
}

func TestDirectoryImporter_ListingErrorIsLoggedNotFatal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/freelancers", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	db := newFakeDB()
	repo := newMemFreelancerRepo()
	imp := NewDirectoryImporter(db, repo, nil, config.ImporterConfig{BaseURL: server.URL, Pages: 1, Workers: 2})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sum, err := imp.Run(ctx)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if sum.Imported != 0 {
		t.Fatalf("expected 0 imported, got %d", sum.Imported)
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	if len(db.logs) == 0 {
		t.Fatalf("expected listing error to be logged")
	}
}

func TestWorkerPool_RunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(4, 8)
	results := pool.Run(context.Background())

	var done int64
	var mu sync.Mutex

	for i := 0; i < 20; i++ {
		pool.Submit(func(ctx context.Context) error {
			mu.Lock()
			done++
			mu.Unlock()
			return nil
		})
	}
	pool.Close()

	var errs int
	for res := range results {
		if res.Err != nil {
			errs++
		}
	}
	mu.Lock()
	defer mu.Unlock()
	if done != 20 {
		t.Fatalf("expected 20 tasks run, got %d", done)
	}
	if errs != 0 {
		t.Fatalf("expected no errors, got %d", errs)
	}
}

func keys(m map[string]repository.FreelancerUpsert) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
