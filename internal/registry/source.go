package registry

import "context"

// Source fetches the three registry collections. Swap with concrete storage
// without touching the cache or resolver.
type Source interface {
	// Rooms returns active rooms for the given building.
	Rooms(ctx context.Context, building string) ([]Room, error)
	// Personnel returns the personnel directory.
	Personnel(ctx context.Context) ([]PersonnelProfile, error)
	// Assignments returns current room assignments.
	Assignments(ctx context.Context) ([]Assignment, error)
}
