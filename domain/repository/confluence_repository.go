package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pyama86/incidentseed/domain/model"
	"github.com/pyama86/incidentseed/presentation/report"
	goconfluence "github.com/virtomize/confluence-go-api"
)

type contentCreator interface {
	CreateContent(c *goconfluence.Content) (*goconfluence.Content, error)
}

// ConfluenceRepository publishes a run report page per generation.
type ConfluenceRepository struct {
	ancestorID string
	spaceKey   string
	client     contentCreator
	now        func() time.Time
}

func NewConfluenceRepository(domain, user, password, spaceKey, ancestorID string) (*ConfluenceRepository, error) {
	api, err := goconfluence.NewAPI(
		fmt.Sprintf("https://%s.atlassian.net/wiki/rest/api", domain),
		user,
		password)
	if err != nil {
		return nil, fmt.Errorf("failed to create confluence api: %w", err)
	}

	return &ConfluenceRepository{
		ancestorID: ancestorID,
		spaceKey:   spaceKey,
		client:     api,
		now:        time.Now,
	}, nil
}

func (c *ConfluenceRepository) NotifySummary(ctx context.Context, summary model.Summary) error {
	title := fmt.Sprintf("Incident fixtures %s (seed %d)", summary.RunID, summary.Seed)
	body := report.HTML(report.Render(summary, c.now()))
	if err := c.ExportPage(ctx, title, body); err != nil {
		return err
	}
	slog.Info("Run report published", slog.String("run_id", summary.RunID), slog.String("title", title))
	return nil
}

func (c *ConfluenceRepository) ExportPage(_ context.Context, title, body string) error {
	data := &goconfluence.Content{
		Type:  "page",
		Title: title,
		Body: goconfluence.Body{
			Storage: goconfluence.Storage{
				Value:          body,
				Representation: "storage",
			},
		},
		Version: &goconfluence.Version{ // mandatory
			Number: 1,
		},
	}
	if c.ancestorID != "" {
		data.Ancestors = append(data.Ancestors, goconfluence.Ancestor{
			ID: c.ancestorID,
		})
	}

	if c.spaceKey != "" {
		data.Space = &goconfluence.Space{
			Key: c.spaceKey,
		}
	}

	if _, err := c.client.CreateContent(data); err != nil {
		return fmt.Errorf("failed to create confluence page: %w", err)
	}
	return nil
}
