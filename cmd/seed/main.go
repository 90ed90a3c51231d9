package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"la-blog/config"
	"la-blog/db"
	"la-blog/internal/logger"
	"la-blog/repositories"
	"la-blog/services"
)

// Seeds the blogs collection with sample posts through the service layer,
// so validation and slug derivation run exactly as they do for the API.
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.Ping(pingCtx); err != nil {
		logger.Log.Errorf("MongoDB unreachable, cannot seed: %v", err)
		os.Exit(1)
	}

	repo := repositories.NewBlogRepository(db.Database())
	svc := services.NewBlogService(repo, cfg.Blog.DefaultAuthor)

	created := 0
	for _, in := range sampleBlogs {
		blog, err := svc.Create(ctx, in)
		if err != nil {
			var vErr *services.ValidationError
			if errors.As(err, &vErr) {
				logger.Log.Errorf("sample post %q rejected: %s", in.Title, strings.Join(vErr.Errors, "; "))
			} else {
				logger.Log.Errorf("failed to create sample post %q: %v", in.Title, err)
			}
			continue
		}
		created++
		logger.Log.Infof("created post %q (slug=%s)", blog.Title, blog.Slug)
	}
	logger.Log.Infof("seeding done: %d/%d posts created", created, len(sampleBlogs))
}
