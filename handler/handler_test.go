package handler_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyama86/incidentseed/domain/model"
	"github.com/pyama86/incidentseed/domain/repository"
	"github.com/pyama86/incidentseed/handler"
)

// ------------------------
// Mock repositories
// ------------------------
type mockExporter struct {
	name  string
	err   error
	runID string
	ds    *model.Dataset
}

func (m *mockExporter) Name() string { return m.name }

func (m *mockExporter) Export(_ context.Context, runID string, ds *model.Dataset) error {
	m.runID, m.ds = runID, ds
	return m.err
}

type mockNotifier struct {
	err     error
	summary *model.Summary
}

func (m *mockNotifier) NotifySummary(_ context.Context, s model.Summary) error {
	m.summary = &s
	return m.err
}

func testConfig(t *testing.T) *repository.Config {
	t.Helper()
	cfg, err := repository.NewConfigRepository("", nil)
	require.NoError(t, err)
	cfg.OutputDir = t.TempDir()
	cfg.Population.Clients = 30
	cfg.Population.Vendors = 30
	cfg.Population.InternalUsers = 40
	return cfg
}

func TestGenerationHandler_Run(t *testing.T) {
	exporter := &mockExporter{name: "mock"}
	notifier := &mockNotifier{err: errors.New("webhook down")}

	summary, err := handler.NewGenerationHandler(testConfig(t), repository.Exporters{exporter}, notifier).Run(context.Background())
	require.NoError(t, err, "notification failures do not fail the run")

	_, err = uuid.Parse(summary.RunID)
	assert.NoError(t, err)
	assert.Equal(t, summary.RunID, exporter.runID)
	assert.Len(t, summary.Tables, 19)
	assert.Equal(t, []string{"mock"}, summary.Destinations)
	assert.Equal(t, uint64(42), summary.Seed)

	require.NotNil(t, notifier.summary)
	assert.Equal(t, summary.RunID, notifier.summary.RunID)
	assert.Len(t, exporter.ds.Clients, 30)
}

func TestGenerationHandler_ExportError(t *testing.T) {
	failing := &mockExporter{name: "failing", err: errors.New("disk full")}
	after := &mockExporter{name: "after"}
	notifier := &mockNotifier{}

	_, err := handler.NewGenerationHandler(testConfig(t), repository.Exporters{failing, after}, notifier).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export dataset: disk full")
	assert.Nil(t, after.ds, "later exporters are skipped")
	assert.Nil(t, notifier.summary)
}

func TestGenerationHandler_GenerationError(t *testing.T) {
	cfg := testConfig(t)
	cfg.Population.Clients = 0
	exporter := &mockExporter{name: "mock"}

	_, err := handler.NewGenerationHandler(cfg, repository.Exporters{exporter}, nil).Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, exporter.ds, "nothing is exported after a failed generation")
}

func TestHandleWritesJSON(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, handler.Handle(context.Background(), cfg))

	files, err := filepath.Glob(filepath.Join(cfg.OutputDir, "*.json"))
	require.NoError(t, err)
	assert.Len(t, files, 19)

	b, err := os.ReadFile(filepath.Join(cfg.OutputDir, "clients.json"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"30": {`)
}
