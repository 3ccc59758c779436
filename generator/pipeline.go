package generator

import (
	"context"
	"fmt"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

// Stage produces one table from the tables it depends on and reports how many
// rows it wrote.
type Stage struct {
	Table     entity.TableName
	DependsOn []entity.TableName
	Run       func(ctx context.Context, ds *model.Dataset) (int, error)
}

// Resolve orders stages so every stage follows its dependencies. Among stages
// that are ready at the same time, declaration order wins, which keeps the
// random stream consumption stable.
func Resolve(stages []Stage) ([]Stage, error) {
	byTable := make(map[entity.TableName]int, len(stages))
	for i, s := range stages {
		if _, dup := byTable[s.Table]; dup {
			return nil, fmt.Errorf("stage %s declared twice", s.Table)
		}
		byTable[s.Table] = i
	}

	pending := make([]int, len(stages))
	dependents := make([][]int, len(stages))
	for i, s := range stages {
		for _, dep := range s.DependsOn {
			j, ok := byTable[dep]
			if !ok {
				return nil, fmt.Errorf("dependency %s not found for stage %s", dep, s.Table)
			}
			pending[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	done := make([]bool, len(stages))
	ordered := make([]Stage, 0, len(stages))
	for len(ordered) < len(stages) {
		next := -1
		for i := range stages {
			if !done[i] && pending[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			var stuck []entity.TableName
			for i, s := range stages {
				if !done[i] {
					stuck = append(stuck, s.Table)
				}
			}
			return nil, fmt.Errorf("stage dependency cycle among %v", stuck)
		}
		done[next] = true
		ordered = append(ordered, stages[next])
		for _, d := range dependents[next] {
			pending[d]--
		}
	}
	return ordered, nil
}

// closure keeps only the stages needed to produce targets, preserving order.
func closure(ordered []Stage, targets []entity.TableName) []Stage {
	if len(targets) == 0 {
		return ordered
	}
	need := make(map[entity.TableName]bool)
	for _, t := range targets {
		need[t] = true
	}
	for i := len(ordered) - 1; i >= 0; i-- {
		if !need[ordered[i].Table] {
			continue
		}
		for _, dep := range ordered[i].DependsOn {
			need[dep] = true
		}
	}
	var out []Stage
	for _, s := range ordered {
		if need[s.Table] {
			out = append(out, s)
		}
	}
	return out
}

func (g *Generator) stages() []Stage {
	return []Stage{
		{Table: entity.TableClients, Run: g.generateClients},
		{Table: entity.TableVendors, Run: g.generateVendors},
		{Table: entity.TableUsers, DependsOn: []entity.TableName{entity.TableClients, entity.TableVendors}, Run: g.generateUsers},
		{Table: entity.TableProducts, DependsOn: []entity.TableName{entity.TableVendors}, Run: g.generateProducts},
		{Table: entity.TableComponents, DependsOn: []entity.TableName{entity.TableProducts}, Run: g.generateComponents},
		{Table: entity.TableSubscriptions, DependsOn: []entity.TableName{entity.TableClients, entity.TableProducts}, Run: g.generateSubscriptions},
		{Table: entity.TableSLAAgreements, DependsOn: []entity.TableName{entity.TableSubscriptions}, Run: g.generateSLAAgreements},
		{
			Table: entity.TableIncidents,
			DependsOn: []entity.TableName{
				entity.TableUsers, entity.TableClients, entity.TableComponents,
				entity.TableProducts, entity.TableSubscriptions, entity.TableSLAAgreements,
			},
			Run: g.generateIncidents,
		},
		{Table: entity.TableWorkarounds, DependsOn: []entity.TableName{entity.TableIncidents, entity.TableUsers}, Run: g.generateWorkarounds},
		{Table: entity.TableRootCauseAnalyses, DependsOn: []entity.TableName{entity.TableIncidents, entity.TableUsers}, Run: g.generateRootCauseAnalyses},
		{Table: entity.TableCommunications, DependsOn: []entity.TableName{entity.TableIncidents, entity.TableUsers}, Run: g.generateCommunications},
		{
			Table:     entity.TableIncidentUpdates,
			DependsOn: []entity.TableName{entity.TableIncidents, entity.TableUsers, entity.TableWorkarounds, entity.TableCommunications},
			Run:       g.generateIncidentUpdates,
		},
		{Table: entity.TableEscalations, DependsOn: []entity.TableName{entity.TableIncidents, entity.TableUsers, entity.TableWorkarounds}, Run: g.generateEscalations},
		{Table: entity.TableChangeRequests, DependsOn: []entity.TableName{entity.TableIncidents, entity.TableUsers}, Run: g.generateChangeRequests},
		{Table: entity.TableRollbackRequests, DependsOn: []entity.TableName{entity.TableChangeRequests, entity.TableUsers}, Run: g.generateRollbackRequests},
		{Table: entity.TableMetrics, DependsOn: []entity.TableName{entity.TableIncidents}, Run: g.generateMetrics},
		{Table: entity.TableIncidentReports, DependsOn: []entity.TableName{entity.TableIncidents, entity.TableUsers}, Run: g.generateIncidentReports},
		{
			Table:     entity.TableKnowledgeBaseArticles,
			DependsOn: []entity.TableName{entity.TableIncidents, entity.TableUsers, entity.TableComponents},
			Run:       g.generateKnowledgeBaseArticles,
		},
		{Table: entity.TablePostIncidentReviews, DependsOn: []entity.TableName{entity.TableIncidents, entity.TableUsers}, Run: g.generatePostIncidentReviews},
	}
}
