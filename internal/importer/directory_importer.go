package importer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/google/uuid"

	"talentmatch/internal/config"
	"talentmatch/internal/database"
	"talentmatch/internal/repository"
)

// DirectoryImporter walks a freelancer directory site, scrapes every
// profile it can reach and upserts the rows keyed by (source,
// profile_url). Runs and per-item failures are recorded in import_runs
// and import_logs.
type DirectoryImporter struct {
	db          database.DB
	repo        repository.FreelancerRepository
	logger      *log.Logger
	baseURL     string
	allowedHost string
	source      string
	pages       int
	workers     int
	rps         float64
	headless    bool
}

func NewDirectoryImporter(db database.DB, repo repository.FreelancerRepository, logger *log.Logger, cfg config.ImporterConfig) *DirectoryImporter {
	base := strings.TrimSpace(cfg.BaseURL)
	return &DirectoryImporter{
		db:          db,
		repo:        repo,
		logger:      logger,
		baseURL:     strings.TrimRight(base, "/"),
		allowedHost: hostFromBaseURL(base),
		source:      "directory",
		pages:       cfg.Pages,
		workers:     cfg.Workers,
		rps:         cfg.RPS,
		headless:    cfg.Headless,
	}
}

func (s *DirectoryImporter) Source() string {
	return s.source
}

// Summary describes one finished import run.
type Summary struct {
	RunID    uuid.UUID
	Source   string
	Imported int
}

// Run imports up to pages listing pages and returns the number of
// profiles upserted.
func (s *DirectoryImporter) Run(ctx context.Context) (Summary, error) {
	if s == nil || s.db == nil || s.repo == nil {
		return Summary{}, fmt.Errorf("nil importer/db")
	}
	if s.baseURL == "" {
		return Summary{}, fmt.Errorf("empty base url")
	}
	pages := s.pages
	if pages <= 0 {
		pages = 1
	}

	runID, err := createImportRun(ctx, s.db, s.source)
	if err != nil {
		return Summary{}, err
	}
	status := "finished"
	defer func() {
		_ = finishImportRun(context.Background(), s.db, runID, status)
	}()

	pool := NewWorkerPool(s.workers, s.workers*2)
	pool.SetRateLimit(s.rps)
	results := pool.Run(ctx)

	var imported atomic.Int64
	for page := 1; page <= pages; page++ {
		listURL := fmt.Sprintf("%s/freelancers?page=%d", s.baseURL, page)
		links, err := s.listProfileLinks(ctx, listURL)
		if (err != nil || len(links) == 0) && s.headless {
			links, err = s.headlessProfileLinks(ctx, listURL)
		}
		if err != nil {
			_ = logImport(ctx, s.db, runID, "error", fmt.Sprintf("listing page %d: %v", page, err))
			continue
		}
		for _, link := range links {
			link := link
			pool.Submit(func(ctx context.Context) error {
				profile, err := s.scrapeProfile(ctx, link)
				if err != nil {
					return fmt.Errorf("profile %s: %w", link, err)
				}
				if _, err := s.repo.Upsert(ctx, []repository.FreelancerUpsert{profile}); err != nil {
					return fmt.Errorf("upsert %s: %w", link, err)
				}
				imported.Add(1)
				_ = logImport(ctx, s.db, runID, "info", fmt.Sprintf("profile upserted url=%s name=%s", profile.ProfileURL, profile.Name))
				return nil
			})
		}
	}

	pool.Close()
	for res := range results {
		if res.Err != nil {
			_ = logImport(ctx, s.db, runID, "error", res.Err.Error())
			if s.logger != nil {
				s.logger.Printf("importer | item error=%v", res.Err)
			}
		}
	}

	summary := Summary{RunID: runID, Source: s.source, Imported: int(imported.Load())}
	if ctx.Err() != nil {
		status = "cancelled"
		return summary, ctx.Err()
	}
	return summary, nil
}

func (s *DirectoryImporter) listProfileLinks(ctx context.Context, listURL string) ([]string, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 300 * time.Millisecond})

	links := make([]string, 0)
	c.OnHTML("a", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" || !strings.Contains(href, "/freelancers/") {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		links = append(links, abs)
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})
	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	dedup := map[string]struct{}{}
	out := make([]string, 0, len(links))
	for _, l := range links {
		u := normalizeURL(l)
		if u == "" {
			continue
		}
		if _, ok := dedup[u]; ok {
			continue
		}
		dedup[u] = struct{}{}
		out = append(out, u)
	}
	return out, nil
}

func (s *DirectoryImporter) scrapeProfile(ctx context.Context, profileURL string) (repository.FreelancerUpsert, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 300 * time.Millisecond})

	out := repository.FreelancerUpsert{
		ProfileURL: normalizeURL(profileURL),
		Source:     s.source,
	}
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})
	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if out.Name == "" {
			out.Name = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("h2", func(e *colly.HTMLElement) {
		if out.Title == "" {
			out.Title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML(".location", func(e *colly.HTMLElement) {
		out.Location = pickNonEmpty(out.Location, e.Text)
	})
	c.OnHTML(".skills li", func(e *colly.HTMLElement) {
		skill := strings.TrimSpace(e.Text)
		if skill != "" {
			out.Skills = append(out.Skills, skill)
		}
	})
	c.OnHTML(".rate", func(e *colly.HTMLElement) {
		if out.HourlyRate == 0 {
			out.HourlyRate = firstNumber(e.Text)
		}
	})
	c.OnHTML(".rating", func(e *colly.HTMLElement) {
		if out.Rating == 0 {
			out.Rating = firstNumber(e.Text)
		}
	})
	c.OnHTML(".reviews", func(e *colly.HTMLElement) {
		if out.ReviewCount == 0 {
			out.ReviewCount = firstInt(e.Text)
		}
	})
	c.OnHTML(".availability", func(e *colly.HTMLElement) {
		out.Availability = pickNonEmpty(out.Availability, e.Text)
	})
	c.OnHTML("img.avatar", func(e *colly.HTMLElement) {
		src := strings.TrimSpace(e.Attr("src"))
		if src != "" && out.AvatarURL == "" {
			out.AvatarURL = e.Request.AbsoluteURL(src)
		}
	})
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return repository.FreelancerUpsert{}, ctx.Err()
	}
	if err := c.Visit(profileURL); err != nil {
		return repository.FreelancerUpsert{}, err
	}
	c.Wait()
	if reqErr != nil {
		return repository.FreelancerUpsert{}, reqErr
	}
	if strings.TrimSpace(out.Name) == "" {
		return repository.FreelancerUpsert{}, fmt.Errorf("no name found")
	}
	return out, nil
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "TalentMatchImporter/0.1",
		"Accept-Language": "en-US,en;q=0.9",
	}
}
