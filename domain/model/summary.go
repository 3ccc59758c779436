package model

import (
	"time"

	"github.com/pyama86/incidentseed/domain/entity"
)

type TableCount struct {
	Name entity.TableName `json:"name"`
	Rows int              `json:"rows"`
}

// Summary describes one finished generation run.
type Summary struct {
	RunID        string        `json:"run_id"`
	Seed         uint64        `json:"seed"`
	Tables       []TableCount  `json:"tables"`
	Destinations []string      `json:"destinations"`
	Elapsed      time.Duration `json:"elapsed"`
}

func NewSummary(runID string, seed uint64, ds *Dataset) Summary {
	s := Summary{RunID: runID, Seed: seed}
	for _, t := range ds.Tables() {
		s.Tables = append(s.Tables, TableCount{Name: t.Name, Rows: t.Len()})
	}
	return s
}

func (s Summary) TotalRows() int {
	n := 0
	for _, t := range s.Tables {
		n += t.Rows
	}
	return n
}
