package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtcal/internal/registry"
	dErrors "courtcal/pkg/domain-errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSource() *registry.MemorySource {
	return &registry.MemorySource{
		RoomList: []registry.Room{
			{ID: "1", RoomID: "R1", RoomNumber: "204", CourtroomNumber: "Part 22", IsActive: true},
			{ID: "2", RoomID: "R2", RoomNumber: "310", CourtroomNumber: "Jury Room", IsActive: true},
			{ID: "3", RoomID: "R3", RoomNumber: "412", CourtroomNumber: "PART  7", IsActive: true},
		},
		PersonnelList: []registry.PersonnelProfile{
			{ID: "p1", DisplayName: "Hon. Jane Smith", Title: "Justice"},
		},
		AssignmentList: []registry.Assignment{
			{ID: "a1", RoomID: "R1", JusticeName: "Smith"},
			{ID: "a2", RoomID: "R3", JusticeName: "Brown"},
			{ID: "a3", RoomID: "R9", JusticeName: "Orphan"},
			{ID: "a4", RoomID: "R2", JusticeName: ""},
		},
	}
}

func TestLoadBuildsLookupMaps(t *testing.T) {
	cache := New(testSource(), testLogger())

	snap, err := cache.Load(context.Background(), "main")
	require.NoError(t, err)

	assert.Len(t, snap.Rooms, 3)
	assert.Equal(t, "204", snap.Rooms["204"].RoomNumber)

	// Part labels are matched case-insensitively with flexible spacing; rooms
	// without one are omitted, not errors.
	assert.Equal(t, map[string]string{"22": "204", "7": "412"}, snap.PartToRoom)

	// Justice names are lower-cased; assignments pointing at unknown rooms or
	// carrying no justice are skipped.
	assert.Equal(t, map[string]string{"smith": "204", "brown": "412"}, snap.JudgeToRoom)

	assert.Len(t, snap.Personnel, 1)
	assert.Len(t, snap.Assignments, 4)
}

func TestLoadRoomsFailureIsFatal(t *testing.T) {
	source := testSource()
	source.RoomsErr = errors.New("connection refused")
	cache := New(source, testLogger())

	snap, err := cache.Load(context.Background(), "main")
	assert.Nil(t, snap)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeRegistryUnavailable))
}

func TestLoadSoftDependencyFailures(t *testing.T) {
	source := testSource()
	source.PersonnelErr = errors.New("personnel table locked")
	source.AssignmentsErr = errors.New("assignments table locked")
	cache := New(source, testLogger())

	snap, err := cache.Load(context.Background(), "main")
	require.NoError(t, err)

	// Rooms still build the part map; judge and personnel lookups degrade.
	assert.Len(t, snap.PartToRoom, 2)
	assert.Empty(t, snap.JudgeToRoom)
	assert.Empty(t, snap.Personnel)
	assert.Empty(t, snap.Assignments)
}

func TestGetLoadsOnceAndClearDiscards(t *testing.T) {
	source := testSource()
	cache := New(source, testLogger())

	first, err := cache.Get(context.Background(), "main")
	require.NoError(t, err)

	// Source changes are invisible until the snapshot is discarded.
	source.RoomList = nil
	second, err := cache.Get(context.Background(), "main")
	require.NoError(t, err)
	assert.Same(t, first, second)

	cache.Clear()
	third, err := cache.Get(context.Background(), "main")
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Empty(t, third.Rooms)
}

func TestLoadReplacesSnapshot(t *testing.T) {
	source := testSource()
	cache := New(source, testLogger())

	_, err := cache.Load(context.Background(), "main")
	require.NoError(t, err)

	source.RoomList = source.RoomList[:1]
	snap, err := cache.Load(context.Background(), "main")
	require.NoError(t, err)
	assert.Len(t, snap.Rooms, 1)

	got, err := cache.Get(context.Background(), "main")
	require.NoError(t, err)
	assert.Same(t, snap, got)
}

func TestDuplicateJusticeNamesLastWriteWins(t *testing.T) {
	source := testSource()
	source.AssignmentList = []registry.Assignment{
		{ID: "a1", RoomID: "R1", JusticeName: "Smith"},
		{ID: "a2", RoomID: "R2", JusticeName: "SMITH"},
	}
	cache := New(source, testLogger())

	snap, err := cache.Load(context.Background(), "main")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"smith": "310"}, snap.JudgeToRoom)
}
