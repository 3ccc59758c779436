package generator

import (
	"context"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

func articleType(inc entity.Incident) entity.ArticleType {
	switch {
	case inc.Status == entity.IncidentResolved:
		return entity.ArticleResolutionSteps
	case inc.Severity.Critical():
		return entity.ArticleTroubleshooting
	case inc.IsRecurring || inc.SLABreach || inc.RTOBreach:
		return entity.ArticlePreventionGuide
	}
	return entity.ArticleFAQ
}

// kbCategory prefers the component's category over the incident's.
func kbCategory(inc entity.Incident, components map[string]entity.ComponentType) string {
	if ct, ok := components[inc.ComponentID]; ok {
		if c, ok := ct.KBCategory(); ok {
			return c
		}
	}
	return inc.Category.KBCategory()
}

func (g *Generator) generateKnowledgeBaseArticles(_ context.Context, ds *model.Dataset) (int, error) {
	creators, err := staff(ds, entity.TableKnowledgeBaseArticles, "article authors",
		entity.RoleIncidentManager, entity.RoleTechnicalSupport)
	if err != nil {
		return 0, err
	}
	reviewers := ds.ActiveUsers(entity.RoleIncidentManager, entity.RoleTechnicalSupport, entity.RoleExecutive)

	componentTypes := make(map[string]entity.ComponentType, len(ds.Components))
	for _, c := range ds.Components {
		componentTypes[c.ComponentID] = c.ComponentType
	}

	var articles []entity.KnowledgeBaseArticle
	add := func(a entity.KnowledgeBaseArticle) {
		a.ArticleID = id(len(articles) + 1)
		a.CreatedByID = choice(g.rng, creators).UserID
		if coin(g.rng) && len(reviewers) > 0 {
			a.ReviewedByID = ptr(choice(g.rng, reviewers).UserID)
		}
		a.Status = choice(g.rng, entity.ArticleStatuses)
		a.CreatedAt, a.UpdatedAt = g.timestamps()
		articles = append(articles, a)
	}

	linked := ds.Incidents[:min(len(ds.Incidents), g.opts.Population.KBIncidentLimit)]
	for _, inc := range linked {
		if !coin(g.rng) {
			continue
		}
		add(entity.KnowledgeBaseArticle{
			IncidentID:  ptr(inc.IncidentID),
			Title:       "How to Handle " + inc.Title,
			ArticleType: articleType(inc),
			Category:    kbCategory(inc, componentTypes),
			ViewCount:   intBetween(g.rng, 1, 500),
		})
	}
	for len(articles) < g.opts.Population.MinRows {
		add(entity.KnowledgeBaseArticle{
			Title:       "General Guide: " + g.fake.Phrase(),
			ArticleType: choice(g.rng, entity.ArticleTypes),
			Category:    choice(g.rng, entity.KBCategories),
			ViewCount:   intBetween(g.rng, 0, 500),
		})
	}
	ds.KnowledgeBaseArticles = articles
	return len(articles), nil
}
