// Package generator builds a referentially consistent incident-management dataset
// from a single seed.
package generator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
	"github.com/pyama86/incidentseed/fakedata"
)

type Population struct {
	Clients                int
	Vendors                int
	InternalUsers          int
	MinRows                int
	InactiveVendorProducts int
	ChangeRequestLimit     int
	KBIncidentLimit        int
}

type Options struct {
	Seed    uint64
	Workers int
	// ReferenceTime anchors the recent incident cohort.
	ReferenceTime time.Time
	// SnapshotTime is "now" for the fixture; open-ended timestamps stop here.
	SnapshotTime time.Time
	Population   Population
}

func DefaultOptions() Options {
	ref := time.Date(2025, 8, 31, 23, 59, 59, 0, time.UTC)
	return Options{
		Seed:          42,
		Workers:       1,
		ReferenceTime: ref,
		SnapshotTime:  time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
		Population: Population{
			Clients:                120,
			Vendors:                100,
			InternalUsers:          120,
			MinRows:                100,
			InactiveVendorProducts: 10,
			ChangeRequestLimit:     120,
			KBIncidentLimit:        150,
		},
	}
}

// Progress observes stage execution. It never influences generated values.
type Progress interface {
	StageStarted(table entity.TableName)
	TableCompleted(table entity.TableName, rows int)
}

type nopProgress struct{}

func (nopProgress) StageStarted(entity.TableName)        {}
func (nopProgress) TableCompleted(entity.TableName, int) {}

type Generator struct {
	opts     Options
	rng      *rand.Rand
	fake     fakedata.Provider
	progress Progress
}

// New seeds one PCG source shared by the sampler and the fake-data provider, so
// a run consumes a single stream in stage order.
func New(opts Options, progress Progress) *Generator {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if progress == nil {
		progress = nopProgress{}
	}
	src := rand.NewPCG(opts.Seed, opts.Seed)
	return &Generator{
		opts:     opts,
		rng:      rand.New(src),
		fake:     fakedata.New(src),
		progress: progress,
	}
}

// Run executes the stage graph. With targets, only the stages those tables
// depend on are executed.
func (g *Generator) Run(ctx context.Context, targets ...entity.TableName) (*model.Dataset, error) {
	ordered, err := Resolve(g.stages())
	if err != nil {
		return nil, err
	}
	ds := model.NewDataset()
	for _, stage := range closure(ordered, targets) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.progress.StageStarted(stage.Table)
		rows, err := stage.Run(ctx, ds)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", stage.Table, err)
		}
		ds.MarkFilled(stage.Table)
		g.progress.TableCompleted(stage.Table, rows)
	}
	return ds, nil
}

// timestamps mirrors a record's lifetime: created within the last two years,
// updated between creation and the snapshot.
func (g *Generator) timestamps() (entity.Timestamp, entity.Timestamp) {
	now := g.opts.SnapshotTime
	created := timeBetween(g.rng, now.AddDate(-2, 0, 0), now)
	updated := timeBetween(g.rng, created, now)
	return entity.At(created), entity.At(updated)
}

func (g *Generator) now() time.Time {
	return g.opts.SnapshotTime
}

func id(n int) string {
	return fmt.Sprintf("%d", n)
}

// componentStream derives an independent stream for the i-th component so the
// incident engine yields the same rows for any worker count.
func (g *Generator) componentStream(i int) *rand.Rand {
	return rand.New(rand.NewPCG(g.opts.Seed, splitmix(g.opts.Seed^splitmix(uint64(i)+1))))
}

func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
