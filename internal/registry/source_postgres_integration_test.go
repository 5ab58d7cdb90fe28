//go:build integration

package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtcal/internal/registry"
	"courtcal/pkg/testutil/containers"
)

func setupRegistrySchema(t *testing.T, pg *containers.PostgresContainer) {
	t.Helper()
	pg.Exec(t, `
		CREATE TABLE rooms (
			id               TEXT PRIMARY KEY,
			room_id          TEXT NOT NULL,
			room_number      TEXT NOT NULL,
			courtroom_number TEXT NOT NULL,
			building         TEXT NOT NULL,
			is_active        BOOLEAN NOT NULL DEFAULT TRUE
		)`)
	pg.Exec(t, `
		CREATE TABLE personnel (
			id           TEXT PRIMARY KEY,
			display_name TEXT NOT NULL,
			full_name    TEXT NOT NULL,
			title        TEXT NOT NULL,
			department   TEXT NOT NULL DEFAULT ''
		)`)
	pg.Exec(t, `
		CREATE TABLE room_assignments (
			id            TEXT PRIMARY KEY,
			room_id       TEXT NOT NULL,
			justice_name  TEXT NOT NULL DEFAULT '',
			clerk_names   TEXT[] NOT NULL DEFAULT '{}',
			sergeant_name TEXT NOT NULL DEFAULT '',
			is_current    BOOLEAN NOT NULL DEFAULT TRUE
		)`)
}

func TestPostgresSource(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	setupRegistrySchema(t, pg)
	ctx := context.Background()

	pg.Exec(t, `INSERT INTO rooms (id, room_id, room_number, courtroom_number, building, is_active) VALUES
		('1', 'R1', '204', 'Part 22', 'main', TRUE),
		('2', 'R2', '310', 'Jury Room', 'main', TRUE),
		('3', 'R3', '500', 'Part 9', 'main', FALSE),
		('4', 'R4', '101', 'Part 1', 'annex', TRUE)`)
	pg.Exec(t, `INSERT INTO personnel (id, display_name, full_name, title, department) VALUES
		('p1', 'Hon. Jane Smith', 'Jane Elizabeth Smith', 'Justice', 'Criminal Term'),
		('p2', 'R. Jones', 'Robert Jones', 'Senior Court Clerk', 'Criminal Term')`)
	pg.Exec(t, `INSERT INTO room_assignments (id, room_id, justice_name, clerk_names, is_current) VALUES
		('a1', 'R1', 'Smith', '{"Jones","Lee"}', TRUE),
		('a2', 'R2', 'Old Judge', '{}', FALSE)`)

	source := registry.NewPostgresSource(pg.Pool)

	t.Run("rooms filtered by building and activity", func(t *testing.T) {
		rooms, err := source.Rooms(ctx, "main")
		require.NoError(t, err)
		require.Len(t, rooms, 2)

		byNumber := map[string]registry.Room{}
		for _, r := range rooms {
			byNumber[r.RoomNumber] = r
		}
		assert.Equal(t, "Part 22", byNumber["204"].CourtroomNumber)
		assert.Equal(t, "R2", byNumber["310"].RoomID)
	})

	t.Run("personnel ordered by display name", func(t *testing.T) {
		profiles, err := source.Personnel(ctx)
		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.Equal(t, "Hon. Jane Smith", profiles[0].DisplayName)
		assert.Equal(t, "R. Jones", profiles[1].DisplayName)
	})

	t.Run("only current assignments with clerk array", func(t *testing.T) {
		assignments, err := source.Assignments(ctx)
		require.NoError(t, err)
		require.Len(t, assignments, 1)
		assert.Equal(t, "Smith", assignments[0].JusticeName)
		assert.Equal(t, []string{"Jones", "Lee"}, assignments[0].ClerkNames)
	})
}
