package generator

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
	"golang.org/x/sync/errgroup"
)

// ComponentProfile is everything the incident engine needs to know about one
// component.
type ComponentProfile struct {
	Component     entity.InfrastructureComponent
	ProductStatus entity.ProductStatus
	Tier          entity.SLATier
	// Targets maps severity to the resolution target in hours of the
	// component's subscription. Nil when no subscription covers the product.
	Targets map[entity.Severity]int
}

type IncidentPools struct {
	Reporters []entity.User
	Managers  []entity.User
	Active    []entity.Client
	Inactive  []entity.Client
	Suspended []entity.Client
	All       []entity.Client
}

// IncidentWindows are the historical and recent detection windows around the
// reference time.
type IncidentWindows struct {
	Reference       time.Time
	HistoricalStart time.Time
	HistoricalEnd   time.Time
	RecentStart     time.Time
	RecentEnd       time.Time
}

func NewIncidentWindows(ref time.Time) IncidentWindows {
	return IncidentWindows{
		Reference:       ref,
		HistoricalStart: ref.AddDate(0, 0, -540),
		HistoricalEnd:   ref.AddDate(0, 0, -30),
		RecentStart:     ref.AddDate(0, 0, -7),
		RecentEnd:       ref.AddDate(0, 0, 1),
	}
}

var (
	historicalSeverity = []weighted[entity.Severity]{
		w(entity.SeverityP1, 10), w(entity.SeverityP2, 20), w(entity.SeverityP3, 40), w(entity.SeverityP4, 30),
	}
	recentSeverity = map[entity.SLATier][]weighted[entity.Severity]{
		entity.TierPremium: {
			w(entity.SeverityP1, 20), w(entity.SeverityP2, 30), w(entity.SeverityP3, 35), w(entity.SeverityP4, 15),
		},
		entity.TierStandard: {
			w(entity.SeverityP1, 10), w(entity.SeverityP2, 25), w(entity.SeverityP3, 45), w(entity.SeverityP4, 20),
		},
		entity.TierBasic: {
			w(entity.SeverityP1, 5), w(entity.SeverityP2, 15), w(entity.SeverityP3, 40), w(entity.SeverityP4, 40),
		},
	}
)

const (
	recurrenceRate   = 0.25
	maxDowntime      = 480
	recentCompliance = 0.8
	normalCompliance = 0.7
)

// cohortSizes returns how many historical and recent incidents a component gets.
// Healthy components on active products scale with the tier.
func cohortSizes(r *rand.Rand, p ComponentProfile) (historical, recent int) {
	if p.Component.Status != entity.ComponentOnline || p.ProductStatus != entity.ProductStatusActive {
		return intBetween(r, 1, 2), intBetween(r, 0, 1)
	}
	switch p.Tier {
	case entity.TierPremium:
		return intBetween(r, 3, 5), intBetween(r, 3, 6)
	case entity.TierBasic:
		return intBetween(r, 1, 3), intBetween(r, 1, 3)
	}
	return intBetween(r, 2, 4), intBetween(r, 2, 4)
}

func detectionTimes(r *rand.Rand, n int, lo, hi time.Time) []time.Time {
	ts := make([]time.Time, n)
	for i := range ts {
		ts[i] = timeBetween(r, lo, hi)
	}
	slices.SortFunc(ts, func(a, b time.Time) int { return a.Compare(b) })
	return ts
}

func incidentStatuses(r *rand.Rand, p ComponentProfile, historical, total int) []entity.IncidentStatus {
	comp, prod := p.Component.Status, p.ProductStatus
	statuses := make([]entity.IncidentStatus, total)
	for i := range statuses {
		switch {
		case i == total-1:
			statuses[i] = latestIncidentStatus(r, comp, prod)
		case i >= historical:
			statuses[i] = recentIncidentStatus(r)
		default:
			statuses[i] = historicalIncidentStatus(r, comp, prod)
		}
	}
	if retired(comp, prod) {
		for i := range statuses {
			statuses[i] = entity.IncidentClosed
		}
	}
	if comp == entity.ComponentDegraded {
		for i, s := range statuses {
			if !s.Settled() {
				statuses[i] = settledStatus(r)
			}
		}
	}
	return statuses
}

// complianceProbability favours SLA compliance for incidents detected within a
// week of the reference date.
func complianceProbability(detected, ref time.Time) float64 {
	d := entity.OnDate(detected).Sub(entity.OnDate(ref).Time).Hours() / 24
	if math.Abs(d) <= 7 {
		return recentCompliance
	}
	return normalCompliance
}

// SLAResolution places a resolution inside the target window when compliant and
// strictly past it otherwise.
func SLAResolution(detected time.Time, targetHours int, compliant bool, r *rand.Rand) time.Time {
	factor := uniform(r, 1.05, 2.0)
	if compliant {
		factor = uniform(r, 0.1, 0.95)
	}
	d := time.Duration(float64(targetHours) * factor * float64(time.Hour))
	return detected.Add(d.Truncate(time.Second))
}

type titleChoice struct {
	category entity.IncidentCategory
	title    string
}

func pickTitle(r *rand.Rand, ct entity.ComponentType) titleChoice {
	sets := ct.IncidentTitles()
	if len(sets) == 0 {
		sets = entity.FallbackIncidentTitles
	}
	set := choice(r, sets)
	return titleChoice{category: set.Category, title: choice(r, set.Titles)}
}

func (p IncidentPools) client(r *rand.Rand, status entity.IncidentStatus) (entity.Client, error) {
	if status == entity.IncidentClosed {
		var pool []entity.Client
		switch pickWeighted(r, w(entity.OrgStatusActive, 70), w(entity.OrgStatusInactive, 15), w(entity.OrgStatusSuspended, 15)) {
		case entity.OrgStatusActive:
			pool = p.Active
		case entity.OrgStatusInactive:
			pool = p.Inactive
		case entity.OrgStatusSuspended:
			pool = p.Suspended
		}
		if len(pool) > 0 {
			return choice(r, pool), nil
		}
	}
	if len(p.Active) > 0 {
		return choice(r, p.Active), nil
	}
	return pick(r, entity.TableIncidents, "clients", p.All)
}

// PlanIncidents produces the time-ordered incidents of one component. It draws
// only from r, so components can be planned concurrently. Ids are left empty.
func PlanIncidents(p ComponentProfile, pools IncidentPools, win IncidentWindows, r *rand.Rand) ([]entity.Incident, error) {
	nHist, nRecent := cohortSizes(r, p)
	detections := append(
		detectionTimes(r, nHist, win.HistoricalStart, win.HistoricalEnd),
		detectionTimes(r, nRecent, win.RecentStart, win.RecentEnd)...,
	)
	statuses := incidentStatuses(r, p, nHist, len(detections))

	var seen []titleChoice
	incidents := make([]entity.Incident, 0, len(detections))
	for i, detected := range detections {
		status := statuses[i]
		created := detected.Add(minutes(intBetween(r, 1, 30)))

		var tc titleChoice
		recurring := len(seen) > 0 && r.Float64() < recurrenceRate
		if recurring {
			tc = choice(r, seen)
		} else {
			tc = pickTitle(r, p.Component.ComponentType)
		}

		severity := pickWeighted(r, historicalSeverity...)
		if i >= nHist {
			severity = pickWeighted(r, recentSeverity[p.Tier]...)
		}

		var (
			resolved, closed *time.Time
			slaBreach        bool
		)
		if status.Settled() {
			var at time.Time
			if target, ok := p.Targets[severity]; ok {
				compliant := r.Float64() < complianceProbability(detected, win.Reference)
				at = SLAResolution(detected, target, compliant, r)
				slaBreach = !compliant
			} else {
				at = detected.Add(hours(intBetween(r, 1, 48)))
			}
			resolved = &at
			if status == entity.IncidentClosed {
				c := at.Add(hours(intBetween(r, 1, 24)))
				closed = &c
			}
		}

		var manager *string
		if status != entity.IncidentOpen {
			m, err := pick(r, entity.TableIncidents, "active incident managers", pools.Managers)
			if err != nil {
				return nil, err
			}
			manager = ptr(m.UserID)
		}
		client, err := pools.client(r, status)
		if err != nil {
			return nil, err
		}
		reporter, err := pick(r, entity.TableIncidents, "active reporters", pools.Reporters)
		if err != nil {
			return nil, err
		}

		downtime := 0
		if severity.Critical() && resolved != nil {
			downtime = min(int(resolved.Sub(detected).Minutes()), maxDowntime)
		}

		if !slices.ContainsFunc(seen, func(s titleChoice) bool { return s.title == tc.title }) {
			seen = append(seen, tc)
		}

		var updated time.Time
		switch {
		case closed != nil:
			updated = *closed
		case resolved != nil:
			updated = *resolved
		default:
			updated = created.Add(hours(intBetween(r, 1, 24)))
		}
		if updated.Before(created) {
			updated = created
		}

		incidents = append(incidents, entity.Incident{
			Title:             tc.title,
			ReporterID:        reporter.UserID,
			AssignedManagerID: manager,
			ClientID:          client.ClientID,
			ComponentID:       p.Component.ComponentID,
			Severity:          severity,
			Status:            status,
			Impact:            severity.Level(),
			Urgency:           severity.Level(),
			Category:          tc.category,
			DetectedAt:        entity.At(detected),
			ResolvedAt:        entity.OptionalAt(resolved),
			ClosedAt:          entity.OptionalAt(closed),
			RTOBreach:         slaBreach && severity.Critical(),
			SLABreach:         slaBreach,
			IsRecurring:       recurring,
			DowntimeMinutes:   downtime,
			CreatedAt:         entity.At(created),
			UpdatedAt:         entity.At(updated),
		})
	}
	return incidents, nil
}

// componentProfiles resolves each component's product status and the tier and
// SLA targets of the last subscription to its product.
func componentProfiles(ds *model.Dataset) []ComponentProfile {
	subByProduct := make(map[string]entity.ClientSubscription)
	for _, s := range ds.Subscriptions {
		subByProduct[s.ProductID] = s
	}
	targets := make(map[string]map[entity.Severity]int)
	for _, a := range ds.SLAAgreements {
		if a.ResolutionTimeHours == nil {
			continue
		}
		if targets[a.SubscriptionID] == nil {
			targets[a.SubscriptionID] = make(map[entity.Severity]int)
		}
		targets[a.SubscriptionID][a.SeverityLevel] = *a.ResolutionTimeHours
	}
	products := model.IndexOf(ds.Products)

	profiles := make([]ComponentProfile, len(ds.Components))
	for i, c := range ds.Components {
		p := ComponentProfile{Component: c, ProductStatus: entity.ProductStatusActive, Tier: entity.TierStandard}
		if j, ok := products[c.ProductID]; ok {
			p.ProductStatus = ds.Products[j].Status
		}
		if s, ok := subByProduct[c.ProductID]; ok {
			p.Tier = s.SLATier
			p.Targets = targets[s.SubscriptionID]
			if p.Targets == nil {
				p.Targets = map[entity.Severity]int{}
			}
		}
		profiles[i] = p
	}
	return profiles
}

func incidentPools(ds *model.Dataset) IncidentPools {
	pools := IncidentPools{
		Reporters: ds.ActiveUsers(),
		Managers:  ds.ActiveUsers(entity.RoleIncidentManager),
		All:       ds.Clients,
	}
	for _, c := range ds.Clients {
		switch c.Status {
		case entity.OrgStatusActive:
			pools.Active = append(pools.Active, c)
		case entity.OrgStatusInactive:
			pools.Inactive = append(pools.Inactive, c)
		case entity.OrgStatusSuspended:
			pools.Suspended = append(pools.Suspended, c)
		}
	}
	return pools
}

// generateIncidents plans every component on its own stream across a bounded
// worker pool, then numbers the incidents in component order.
func (g *Generator) generateIncidents(ctx context.Context, ds *model.Dataset) (int, error) {
	profiles := componentProfiles(ds)
	pools := incidentPools(ds)
	win := NewIncidentWindows(g.opts.ReferenceTime)

	planned := make([][]entity.Incident, len(profiles))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Workers)
	for i, p := range profiles {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			incidents, err := PlanIncidents(p, pools, win, g.componentStream(i))
			if err != nil {
				return err
			}
			planned[i] = incidents
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	var incidents []entity.Incident
	for _, batch := range planned {
		for _, inc := range batch {
			inc.IncidentID = id(len(incidents) + 1)
			incidents = append(incidents, inc)
		}
	}
	ds.Incidents = incidents
	return len(incidents), nil
}
