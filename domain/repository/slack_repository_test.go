package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

func testSummary() model.Summary {
	return model.Summary{
		RunID: "run-1",
		Seed:  42,
		Tables: []model.TableCount{
			{Name: entity.TableClients, Rows: 120},
			{Name: entity.TableVendors, Rows: 100},
		},
		Destinations: []string{"json:out"},
	}
}

func TestSlackRepositoryNotifySummary(t *testing.T) {
	var (
		calls atomic.Int32
		body  map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 最初の1回は失敗させてリトライを確認する
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	repo := &SlackRepository{webhookURL: srv.URL, attempts: 3}
	require.NoError(t, repo.NotifySummary(context.Background(), testSummary()))

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "incident fixtures generated: 2 tables, 220 rows", body["text"])
	assert.NotEmpty(t, body["blocks"])
}

func TestSlackRepositoryNotifySummaryGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	repo := &SlackRepository{webhookURL: srv.URL, attempts: 2}
	assert.Error(t, repo.NotifySummary(context.Background(), testSummary()))
	assert.Equal(t, int32(2), calls.Load())
}

type failingNotifier struct {
	err   error
	calls int
}

func (f *failingNotifier) NotifySummary(context.Context, model.Summary) error {
	f.calls++
	return f.err
}

func TestNotifiersReachEveryone(t *testing.T) {
	first := &failingNotifier{err: assert.AnError}
	second := &failingNotifier{}

	err := Notifiers{first, second}.NotifySummary(context.Background(), testSummary())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}
