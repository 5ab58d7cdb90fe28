// Package cache holds the process-wide registry snapshot used for extraction
// enrichment. The snapshot is a pure function of the three source collections:
// it is safe to discard and rebuild at any time, and it is never invalidated
// automatically on upstream writes — staleness persists until an explicit
// Clear or Load.
package cache

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	"courtcal/internal/registry"
	dErrors "courtcal/pkg/domain-errors"
)

var (
	loadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "courtcal_registry_cache_loads_total",
		Help: "Total registry cache loads by result",
	}, []string{"result"}) // result: "ok", "partial", "error"

	loadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "courtcal_registry_cache_load_duration_seconds",
		Help:    "Duration of registry cache loads",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	})
)

// partPattern matches a part label embedded in a courtroom designation,
// e.g. "Part 22" or "PART  7".
var partPattern = regexp.MustCompile(`(?i)part\s*(\d+)`)

// Snapshot is one immutable build of the registry lookup maps. Resolvers hold
// a snapshot for the duration of a request so a concurrent reload cannot split
// their view across two builds.
type Snapshot struct {
	// Rooms maps public room number to the room record.
	Rooms map[string]registry.Room
	// PartToRoom maps a normalized part label ("22") to a room number.
	PartToRoom map[string]string
	// JudgeToRoom maps a lower-cased justice name to a room number.
	JudgeToRoom map[string]string

	Personnel   []registry.PersonnelProfile
	Assignments []registry.Assignment
}

// Cache owns the current snapshot. It is built once per process (or per
// explicit reload) and injected where needed; there is no package-level
// instance.
type Cache struct {
	source registry.Source
	logger *slog.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

func New(source registry.Source, logger *slog.Logger) *Cache {
	return &Cache{source: source, logger: logger}
}

// Load fetches rooms, personnel, and assignments concurrently, builds a fresh
// snapshot, and replaces any previously cached one.
//
// Rooms are a hard dependency: a failed room query aborts the load with
// registry_unavailable. Personnel and assignment failures are tolerated and
// logged — judge/clerk enrichment is best-effort and degrades to "no match".
func (c *Cache) Load(ctx context.Context, building string) (*Snapshot, error) {
	start := time.Now()

	var (
		rooms       []registry.Room
		personnel   []registry.PersonnelProfile
		assignments []registry.Assignment

		personnelErr   error
		assignmentsErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rooms, err = c.source.Rooms(gctx, building)
		return err
	})
	g.Go(func() error {
		personnel, personnelErr = c.source.Personnel(gctx)
		return nil
	})
	g.Go(func() error {
		assignments, assignmentsErr = c.source.Assignments(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		loadsTotal.WithLabelValues("error").Inc()
		return nil, dErrors.Wrap(dErrors.CodeRegistryUnavailable, "failed to load rooms", err)
	}

	result := "ok"
	if personnelErr != nil {
		c.logger.Warn("registry personnel load failed, continuing without",
			"error", personnelErr,
		)
		personnel = nil
		result = "partial"
	}
	if assignmentsErr != nil {
		c.logger.Warn("registry assignments load failed, continuing without",
			"error", assignmentsErr,
		)
		assignments = nil
		result = "partial"
	}

	snap := build(rooms, personnel, assignments)

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	loadsTotal.WithLabelValues(result).Inc()
	loadDuration.Observe(time.Since(start).Seconds())

	c.logger.Info("registry cache loaded",
		"building", building,
		"rooms", len(snap.Rooms),
		"parts", len(snap.PartToRoom),
		"judges", len(snap.JudgeToRoom),
		"personnel", len(snap.Personnel),
		"assignments", len(snap.Assignments),
	)
	return snap, nil
}

// Get returns the current snapshot, loading one if none is cached.
func (c *Cache) Get(ctx context.Context, building string) (*Snapshot, error) {
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}
	return c.Load(ctx, building)
}

// Clear discards the cached snapshot; the next Get reloads from the source.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

// build derives the lookup maps deterministically from the source collections.
func build(rooms []registry.Room, personnel []registry.PersonnelProfile, assignments []registry.Assignment) *Snapshot {
	snap := &Snapshot{
		Rooms:       make(map[string]registry.Room, len(rooms)),
		PartToRoom:  make(map[string]string),
		JudgeToRoom: make(map[string]string),
		Personnel:   personnel,
		Assignments: assignments,
	}

	roomNumberByRoomID := make(map[string]string, len(rooms))
	for _, room := range rooms {
		snap.Rooms[room.RoomNumber] = room
		roomNumberByRoomID[room.RoomID] = room.RoomNumber

		// Rooms whose designation carries no part label are simply omitted
		// from PartToRoom; that is not an error.
		if m := partPattern.FindStringSubmatch(room.CourtroomNumber); m != nil {
			snap.PartToRoom[m[1]] = room.RoomNumber
		}
	}

	// Last write wins on duplicate justice names; the source collaborator
	// guarantees no ordering.
	for _, a := range assignments {
		if a.JusticeName == "" {
			continue
		}
		roomNumber, ok := roomNumberByRoomID[a.RoomID]
		if !ok {
			continue
		}
		snap.JudgeToRoom[strings.ToLower(a.JusticeName)] = roomNumber
	}

	return snap
}
