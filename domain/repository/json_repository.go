package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// JSONRepository writes one <table>.json file per table into a directory.
type JSONRepository struct {
	dir string
}

func NewJSONRepository(dir string) *JSONRepository {
	return &JSONRepository{dir: dir}
}

func (r *JSONRepository) Name() string {
	return "json:" + r.dir
}

func (r *JSONRepository) Export(ctx context.Context, _ string, ds *model.Dataset) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, t := range ds.Tables() {
		if err := ctx.Err(); err != nil {
			return err
		}
		b, err := EncodeTable(t)
		if err != nil {
			return fmt.Errorf("encode %s: %w", t.Name, err)
		}
		path := filepath.Join(r.dir, string(t.Name)+".json")
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

// EncodeTable renders a table as a JSON object keyed by record id, keys in row
// order.
func EncodeTable(t model.Table) ([]byte, error) {
	rows := orderedmap.New[string, entity.Record](
		orderedmap.WithCapacity[string, entity.Record](t.Len()),
		orderedmap.WithDisableHTMLEscape[string, entity.Record](),
	)
	for _, row := range t.Rows {
		rows.Set(row.Key(), row)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// marshal keeps non-ASCII and HTML characters literal.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
