package generator_test

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
	"github.com/pyama86/incidentseed/generator"
)

func generate(t *testing.T, opts generator.Options) *model.Dataset {
	t.Helper()
	ds, err := generator.New(opts, nil).Run(context.Background())
	require.NoError(t, err)
	return ds
}

// 生成は重いのでパッケージ内で一度だけ行う
var defaultDataset *model.Dataset

func dataset(t *testing.T) *model.Dataset {
	t.Helper()
	if defaultDataset == nil {
		defaultDataset = generate(t, generator.DefaultOptions())
	}
	return defaultDataset
}

func TestRunFillsEveryTable(t *testing.T) {
	ds := dataset(t)
	require.Len(t, ds.Filled(), 19)
	assert.Equal(t, entity.TableClients, ds.Filled()[0])
	for _, table := range ds.Tables() {
		assert.NotEmpty(t, table.Rows, table.Name)
	}

	assert.Len(t, ds.Clients, 120)
	assert.Len(t, ds.Vendors, 100)
	assert.GreaterOrEqual(t, len(ds.Subscriptions), 100)
	assert.GreaterOrEqual(t, len(ds.Products), 100)
	assert.Len(t, ds.SLAAgreements, 4*len(ds.Subscriptions))
}

func TestIdsAreSequential(t *testing.T) {
	for _, table := range dataset(t).Tables() {
		for i, row := range table.Rows {
			require.Equal(t, strconv.Itoa(i+1), row.Key(), "table %s", table.Name)
		}
	}
}

func TestClientStatusDistribution(t *testing.T) {
	ds := dataset(t)
	counts := map[entity.OrgStatus]int{}
	for _, c := range ds.Clients {
		counts[c.Status]++
	}
	assert.InDelta(t, 102, counts[entity.OrgStatusActive], 12)
	assert.InDelta(t, 12, counts[entity.OrgStatusInactive], 12)
	assert.InDelta(t, 6, counts[entity.OrgStatusSuspended], 12)
}

func TestUniqueOrganizationFields(t *testing.T) {
	ds := dataset(t)
	seen := map[string]bool{}
	for _, c := range ds.Clients {
		for _, v := range []string{"name:" + c.ClientName, "email:" + c.ContactEmail, "phone:" + c.ContactPhone, "reg:" + c.RegistrationNumber} {
			assert.False(t, seen[v], "duplicate client %s", v)
			seen[v] = true
		}
		assert.Regexp(t, `^REG\d{6}$`, c.RegistrationNumber)
	}
	seen = map[string]bool{}
	for _, v := range ds.Vendors {
		for _, f := range []string{"name:" + v.VendorName, "email:" + v.ContactEmail, "phone:" + v.ContactPhone} {
			assert.False(t, seen[f], "duplicate vendor %s", f)
			seen[f] = true
		}
	}
	emails := map[string]bool{}
	for _, u := range ds.Users {
		assert.False(t, emails[u.Email], "duplicate user email %s", u.Email)
		emails[u.Email] = true
	}
}

func TestStatusCascade(t *testing.T) {
	ds := dataset(t)
	clients := model.IndexOf(ds.Clients)
	vendors := model.IndexOf(ds.Vendors)
	products := model.IndexOf(ds.Products)

	for _, s := range ds.Subscriptions {
		if ds.Clients[clients[s.ClientID]].Status == entity.OrgStatusSuspended {
			assert.Equal(t, entity.SubscriptionSuspended, s.Status, "subscription %s", s.SubscriptionID)
		}
		assert.False(t, s.EndDate.Before(s.StartDate.Time), "subscription %s", s.SubscriptionID)
	}
	for _, u := range ds.Users {
		switch {
		case u.ClientID != nil && ds.Clients[clients[*u.ClientID]].Status.Dormant():
			assert.Equal(t, entity.UserStatusInactive, u.Status)
		case u.VendorID != nil && ds.Vendors[vendors[*u.VendorID]].Status.Dormant():
			assert.Equal(t, entity.UserStatusInactive, u.Status)
		}
	}
	for _, c := range ds.Components {
		switch ds.Products[products[c.ProductID]].Status {
		case entity.ProductStatusDeprecated:
			assert.Equal(t, entity.ComponentOffline, c.Status)
		case entity.ProductStatusMaintenance:
			assert.Equal(t, entity.ComponentMaintenance, c.Status)
		}
	}
}

func TestReferentialIntegrity(t *testing.T) {
	ds := dataset(t)
	clients := model.IndexOf(ds.Clients)
	vendors := model.IndexOf(ds.Vendors)
	users := model.IndexOf(ds.Users)
	products := model.IndexOf(ds.Products)
	components := model.IndexOf(ds.Components)
	subs := model.IndexOf(ds.Subscriptions)
	incidents := model.IndexOf(ds.Incidents)
	changes := model.IndexOf(ds.ChangeRequests)

	has := func(idx model.Index, key string) bool {
		_, ok := idx[key]
		return ok
	}

	for _, u := range ds.Users {
		if u.ClientID != nil {
			assert.True(t, has(clients, *u.ClientID))
		}
		if u.VendorID != nil {
			assert.True(t, has(vendors, *u.VendorID))
		}
	}
	for _, p := range ds.Products {
		assert.True(t, has(vendors, p.VendorSupportID))
	}
	for _, c := range ds.Components {
		assert.True(t, has(products, c.ProductID))
	}
	for _, s := range ds.Subscriptions {
		assert.True(t, has(clients, s.ClientID))
		assert.True(t, has(products, s.ProductID))
	}
	for _, a := range ds.SLAAgreements {
		assert.True(t, has(subs, a.SubscriptionID))
	}
	for _, i := range ds.Incidents {
		assert.True(t, has(users, i.ReporterID))
		assert.True(t, has(clients, i.ClientID))
		assert.True(t, has(components, i.ComponentID))
		if i.AssignedManagerID != nil {
			assert.True(t, has(users, *i.AssignedManagerID))
		}
	}
	for _, w := range ds.Workarounds {
		assert.True(t, has(incidents, w.IncidentID))
		assert.True(t, has(users, w.ImplementedByID))
	}
	for _, r := range ds.RootCauseAnalyses {
		assert.True(t, has(incidents, r.IncidentID))
		assert.True(t, has(users, r.ConductedByID))
	}
	for _, c := range ds.Communications {
		assert.True(t, has(incidents, c.IncidentID))
		assert.True(t, has(users, c.SenderID))
		assert.True(t, has(users, c.RecipientID))
	}
	for _, u := range ds.IncidentUpdates {
		assert.True(t, has(incidents, u.IncidentID))
		assert.True(t, has(users, u.UpdatedByID))
	}
	for _, e := range ds.Escalations {
		assert.True(t, has(incidents, e.IncidentID))
		assert.True(t, has(users, e.EscalatedByID))
		assert.True(t, has(users, e.EscalatedToID))
		assert.NotEqual(t, e.EscalatedByID, e.EscalatedToID)
	}
	for _, c := range ds.ChangeRequests {
		assert.True(t, has(incidents, c.IncidentID))
		assert.True(t, has(users, c.RequestedByID))
		if c.ApprovedByID != nil {
			assert.True(t, has(users, *c.ApprovedByID))
			assert.NotEqual(t, c.RequestedByID, *c.ApprovedByID)
		}
	}
	for _, r := range ds.RollbackRequests {
		require.True(t, has(changes, r.ChangeID))
		assert.Equal(t, ds.ChangeRequests[changes[r.ChangeID]].IncidentID, r.IncidentID)
		assert.True(t, has(users, r.RequestedByID))
	}
	for _, m := range ds.Metrics {
		assert.True(t, has(incidents, m.IncidentID))
	}
	for _, r := range ds.IncidentReports {
		assert.True(t, has(incidents, r.IncidentID))
		assert.True(t, has(users, r.GeneratedByID))
	}
	for _, a := range ds.KnowledgeBaseArticles {
		if a.IncidentID != nil {
			assert.True(t, has(incidents, *a.IncidentID))
		}
		assert.True(t, has(users, a.CreatedByID))
	}
	for _, p := range ds.PostIncidentReviews {
		assert.True(t, has(incidents, p.IncidentID))
		assert.True(t, has(users, p.FacilitatorID))
	}
}

func TestTemporalOrdering(t *testing.T) {
	ds := dataset(t)
	now := generator.DefaultOptions().SnapshotTime
	for _, i := range ds.Incidents {
		assert.False(t, i.UpdatedAt.Before(i.CreatedAt.Time), "incident %s", i.IncidentID)
		if i.ResolvedAt != nil {
			assert.False(t, i.ResolvedAt.Before(i.DetectedAt.Time), "incident %s", i.IncidentID)
		}
		if i.ClosedAt != nil {
			require.NotNil(t, i.ResolvedAt)
			assert.False(t, i.ClosedAt.Before(i.ResolvedAt.Time), "incident %s", i.IncidentID)
		}
	}
	for _, c := range ds.ChangeRequests {
		if c.ScheduledStart != nil && c.ScheduledEnd != nil {
			assert.False(t, c.ScheduledEnd.Before(c.ScheduledStart.Time), "change %s", c.ChangeID)
		}
		if c.ActualStart != nil && c.ActualEnd != nil {
			assert.False(t, c.ActualEnd.Before(c.ActualStart.Time), "change %s", c.ChangeID)
		}
		assert.False(t, c.UpdatedAt.Before(c.CreatedAt.Time), "change %s", c.ChangeID)
		for _, ts := range []*entity.Timestamp{c.ActualStart, c.ActualEnd} {
			if ts != nil {
				assert.False(t, ts.After(now), "change %s executed after the snapshot", c.ChangeID)
			}
		}
	}
	for _, e := range ds.Escalations {
		if e.AcknowledgedAt != nil {
			assert.False(t, e.AcknowledgedAt.Before(e.EscalatedAt.Time))
		}
		if e.ResolvedAt != nil {
			require.NotNil(t, e.AcknowledgedAt)
			assert.False(t, e.ResolvedAt.Before(e.AcknowledgedAt.Time))
		}
	}
}

// Settled incidents covered by a resolution target land inside (0.1T, 0.95T]
// when compliant and within [1.05T, 2T] when breached.
func TestSLAResolutionFactor(t *testing.T) {
	ds := dataset(t)
	lastSub := map[string]string{}
	for _, s := range ds.Subscriptions {
		lastSub[s.ProductID] = s.SubscriptionID
	}
	targets := map[string]int{}
	for _, a := range ds.SLAAgreements {
		if a.ResolutionTimeHours != nil {
			targets[a.SubscriptionID+"/"+string(a.SeverityLevel)] = *a.ResolutionTimeHours
		}
	}
	components := model.IndexOf(ds.Components)

	checked := 0
	for _, i := range ds.Incidents {
		if i.ResolvedAt == nil {
			continue
		}
		product := ds.Components[components[i.ComponentID]].ProductID
		sub, ok := lastSub[product]
		if !ok {
			continue
		}
		target, ok := targets[sub+"/"+string(i.Severity)]
		if !ok {
			assert.False(t, i.SLABreach, "incident %s has no target", i.IncidentID)
			continue
		}
		checked++
		d := i.ResolvedAt.Sub(i.DetectedAt.Time)
		limit := time.Duration(target) * time.Hour
		if i.SLABreach {
			assert.GreaterOrEqual(t, d, limit*105/100-time.Second, "incident %s", i.IncidentID)
			assert.LessOrEqual(t, d, 2*limit, "incident %s", i.IncidentID)
		} else {
			assert.LessOrEqual(t, d, limit*95/100, "incident %s", i.IncidentID)
		}
	}
	assert.Positive(t, checked)
}

func TestDeterministicAcrossWorkers(t *testing.T) {
	opts := generator.DefaultOptions()
	opts.Seed = 7
	sequential := generate(t, opts)

	opts.Workers = 4
	parallel := generate(t, opts)

	a, err := json.Marshal(sequential.Tables())
	require.NoError(t, err)
	b, err := json.Marshal(parallel.Tables())
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestSeedChangesOutput(t *testing.T) {
	opts := generator.DefaultOptions()
	opts.Seed = 43
	other := generate(t, opts)
	assert.NotEqual(t, dataset(t).Clients[0].ClientName+dataset(t).Clients[1].ClientName,
		other.Clients[0].ClientName+other.Clients[1].ClientName)
}

func TestRunFailsWhenPoolIsEmpty(t *testing.T) {
	opts := generator.DefaultOptions()
	opts.Population.Clients = 0

	_, err := generator.New(opts, nil).Run(context.Background(), entity.TableSubscriptions)
	require.Error(t, err)
	assert.True(t, errors.Is(err, generator.ErrExhausted))

	var exhausted *generator.ExhaustionError
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(t, entity.TableSubscriptions, exhausted.Table)
}

func TestUserAffiliationMatchesRole(t *testing.T) {
	for _, u := range dataset(t).Users {
		switch u.Role {
		case entity.RoleClientContact:
			assert.NotNil(t, u.ClientID, "user %s", u.UserID)
			assert.Nil(t, u.VendorID, "user %s", u.UserID)
		case entity.RoleVendorContact:
			assert.Nil(t, u.ClientID, "user %s", u.UserID)
			assert.NotNil(t, u.VendorID, "user %s", u.UserID)
		default:
			assert.Contains(t, entity.InternalRoles, u.Role)
			assert.Nil(t, u.ClientID, "user %s", u.UserID)
			assert.Nil(t, u.VendorID, "user %s", u.UserID)
		}
	}
}

func TestDormantVendorProductsAreDeprecated(t *testing.T) {
	ds := dataset(t)
	vendors := model.IndexOf(ds.Vendors)
	dormant := 0
	for _, p := range ds.Products {
		if ds.Vendors[vendors[p.VendorSupportID]].Status.Dormant() {
			dormant++
			assert.Equal(t, entity.ProductStatusDeprecated, p.Status, "product %s", p.ProductID)
		}
	}
	assert.Positive(t, dormant)
}

func TestSubRecordEligibility(t *testing.T) {
	ds := dataset(t)
	incidents := model.IndexOf(ds.Incidents)
	incident := func(id string) entity.Incident {
		return ds.Incidents[incidents[id]]
	}
	changes := model.IndexOf(ds.ChangeRequests)

	t.Run("workarounds", func(t *testing.T) {
		for _, w := range ds.Workarounds {
			inc := incident(w.IncidentID)
			assert.True(t, inc.Severity.Critical(), "workaround %s on %s", w.WorkaroundID, inc.Severity)
			assert.NotEqual(t, entity.IncidentOpen, inc.Status, "workaround %s", w.WorkaroundID)
		}
	})
	t.Run("root cause analyses", func(t *testing.T) {
		for _, r := range ds.RootCauseAnalyses {
			assert.True(t, incident(r.IncidentID).Status.UnderWork(), "rca %s", r.RCAID)
		}
	})
	t.Run("escalations", func(t *testing.T) {
		for _, e := range ds.Escalations {
			assert.True(t, incident(e.IncidentID).Status.UnderWork(), "escalation %s", e.EscalationID)
		}
	})
	t.Run("change requests", func(t *testing.T) {
		for _, c := range ds.ChangeRequests {
			assert.True(t, incident(c.IncidentID).Status.UnderWork(), "change %s", c.ChangeID)
		}
	})
	t.Run("rollback requests", func(t *testing.T) {
		require.NotEmpty(t, ds.RollbackRequests)
		for _, r := range ds.RollbackRequests {
			status := ds.ChangeRequests[changes[r.ChangeID]].Status
			assert.Contains(t, []entity.ChangeStatus{entity.ChangeFailed, entity.ChangeRolledBack}, status, "rollback %s", r.RollbackID)
		}
	})
}

func TestIncidentUpdatesReplayHistory(t *testing.T) {
	ds := dataset(t)
	byIncident := map[string][]entity.IncidentUpdate{}
	for _, u := range ds.IncidentUpdates {
		byIncident[u.IncidentID] = append(byIncident[u.IncidentID], u)
	}

	for _, inc := range ds.Incidents {
		var last *string
		for _, u := range byIncident[inc.IncidentID] {
			if u.FieldName == "status" {
				last = u.NewValue
			}
		}
		if inc.Status == entity.IncidentOpen {
			assert.Nil(t, last, "open incident %s has status history", inc.IncidentID)
			continue
		}
		require.NotNil(t, last, "incident %s has no status history", inc.IncidentID)
		assert.Equal(t, string(inc.Status), *last, "incident %s", inc.IncidentID)
	}

	entries := func(kind entity.UpdateType) map[string]int {
		seen := map[string]int{}
		for _, u := range ds.IncidentUpdates {
			if u.UpdateType == kind {
				require.NotNil(t, u.NewValue)
				seen[u.IncidentID+"/"+*u.NewValue]++
			}
		}
		return seen
	}
	workarounds := entries(entity.UpdateWorkaround)
	assert.Len(t, workarounds, len(ds.Workarounds))
	for _, w := range ds.Workarounds {
		assert.Equal(t, 1, workarounds[w.IncidentID+"/"+w.WorkaroundID], "workaround %s", w.WorkaroundID)
	}
	comms := entries(entity.UpdateCommunication)
	assert.Len(t, comms, len(ds.Communications))
	for _, c := range ds.Communications {
		assert.Equal(t, 1, comms[c.IncidentID+"/"+c.CommunicationID], "communication %s", c.CommunicationID)
	}
}
