package registry

import "context"

// MemorySource is an in-memory Source for tests and local development. Error
// fields, when set, are returned instead of the corresponding collection so
// failure paths can be exercised.
type MemorySource struct {
	RoomList       []Room
	PersonnelList  []PersonnelProfile
	AssignmentList []Assignment

	RoomsErr       error
	PersonnelErr   error
	AssignmentsErr error
}

func (m *MemorySource) Rooms(_ context.Context, _ string) ([]Room, error) {
	if m.RoomsErr != nil {
		return nil, m.RoomsErr
	}
	return m.RoomList, nil
}

func (m *MemorySource) Personnel(_ context.Context) ([]PersonnelProfile, error) {
	if m.PersonnelErr != nil {
		return nil, m.PersonnelErr
	}
	return m.PersonnelList, nil
}

func (m *MemorySource) Assignments(_ context.Context) ([]Assignment, error) {
	if m.AssignmentsErr != nil {
		return nil, m.AssignmentsErr
	}
	return m.AssignmentList, nil
}
