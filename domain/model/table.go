package model

import "github.com/pyama86/incidentseed/domain/entity"

type Table struct {
	Name entity.TableName
	Rows []entity.Record
}

func (t Table) Len() int {
	return len(t.Rows)
}
