// Package registry exposes the canonical court entities — rooms, personnel,
// and current assignments — that extraction enrichment resolves against. The
// registry is read-only from this service's point of view.
package registry

// Room is a physical courtroom. RoomNumber is the public-facing number (e.g.
// "204"); CourtroomNumber is the free-text designation that may embed a part
// label (e.g. "Part 22").
type Room struct {
	ID              string
	RoomID          string
	RoomNumber      string
	CourtroomNumber string
	IsActive        bool
}

// PersonnelProfile is a minimal directory entry used for name canonicalization.
type PersonnelProfile struct {
	ID          string
	DisplayName string
	FullName    string
	Title       string
	Department  string
}

// Assignment records who currently sits in a room.
type Assignment struct {
	ID           string
	RoomID       string
	JusticeName  string
	ClerkNames   []string
	SergeantName string
}
