package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goconfluence "github.com/virtomize/confluence-go-api"
)

type mockContentCreator struct {
	created []*goconfluence.Content
	err     error
}

func (m *mockContentCreator) CreateContent(c *goconfluence.Content) (*goconfluence.Content, error) {
	m.created = append(m.created, c)
	return c, m.err
}

func TestConfluenceRepositoryNotifySummary(t *testing.T) {
	client := &mockContentCreator{}
	repo := &ConfluenceRepository{
		ancestorID: "12345",
		spaceKey:   "QA",
		client:     client,
		now:        func() time.Time { return time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC) },
	}
	require.NoError(t, repo.NotifySummary(context.Background(), testSummary()))

	require.Len(t, client.created, 1)
	page := client.created[0]
	assert.Equal(t, "Incident fixtures run-1 (seed 42)", page.Title)
	assert.Equal(t, "QA", page.Space.Key)
	assert.Equal(t, "12345", page.Ancestors[0].ID)
	assert.Equal(t, "storage", page.Body.Storage.Representation)
	assert.Contains(t, page.Body.Storage.Value, "<td>clients</td>")
}

func TestConfluenceRepositoryWithoutSpace(t *testing.T) {
	client := &mockContentCreator{err: errors.New("401")}
	repo := &ConfluenceRepository{client: client, now: time.Now}

	err := repo.NotifySummary(context.Background(), testSummary())
	assert.ErrorContains(t, err, "failed to create confluence page")
	assert.Nil(t, client.created[0].Space)
	assert.Empty(t, client.created[0].Ancestors)
}
