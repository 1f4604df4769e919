package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"talentmatch/internal/app"
	"talentmatch/internal/config"
	"talentmatch/internal/database/migration"
	"talentmatch/internal/importer"
	"talentmatch/internal/infrastructure/webhook"
	"talentmatch/internal/repository"
)

func main() {
	baseURL := flag.String("base_url", "", "directory base URL (overrides IMPORTER_BASE_URL)")
	pages := flag.Int("pages", 0, "listing pages to walk (overrides IMPORTER_PAGES)")
	workers := flag.Int("workers", 0, "concurrent profile fetches (overrides IMPORTER_WORKERS)")
	rps := flag.Float64("rps", 0, "request rate limit (overrides IMPORTER_RPS)")
	headless := flag.Bool("headless", false, "use headless browser fallback for listings")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if v := strings.TrimSpace(*baseURL); v != "" {
		cfg.Importer.BaseURL = v
	}
	if *pages > 0 {
		cfg.Importer.Pages = *pages
	}
	if *workers > 0 {
		cfg.Importer.Workers = *workers
	}
	if *rps > 0 {
		cfg.Importer.RPS = *rps
	}
	if *headless {
		cfg.Importer.Headless = true
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: "migrations"}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	repo := repository.NewPostgresFreelancerRepository(c.DB)
	imp := importer.NewDirectoryImporter(c.DB, repo, log.Default(), cfg.Importer)

	sum, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Printf("import finished | run=%s source=%s imported=%d", sum.RunID, sum.Source, sum.Imported)

	notifier := webhook.NewNotifier(cfg.Importer.ServerWebhookURL, cfg.App.InternalToken, log.Default())
	if notifier == nil {
		return
	}
	notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer notifyCancel()
	if err := notifier.ImportCompleted(notifyCtx, sum); err != nil {
		log.Printf("webhook notify failed: %v", err)
	}
}
