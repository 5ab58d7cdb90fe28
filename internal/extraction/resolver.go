package extraction

import (
	"log/slog"
	"regexp"
	"strings"

	"courtcal/internal/registry"
	regcache "courtcal/internal/registry/cache"
)

// NameMatcher decides whether an extracted name and a registry name refer to
// the same person. Kept narrow so substring matching can be swapped for
// edit-distance or tokenized matching without touching callers.
type NameMatcher interface {
	Match(extracted, candidate string) bool
}

// SubstringMatcher matches when either lower-cased name contains the other.
// This tolerates partial and nickname variants at the cost of possible false
// positives on short names; the resolver logs matches that hit more than one
// candidate so they can be reviewed.
type SubstringMatcher struct{}

func (SubstringMatcher) Match(extracted, candidate string) bool {
	a := strings.ToLower(strings.TrimSpace(extracted))
	b := strings.ToLower(strings.TrimSpace(candidate))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Resolver enriches extracted records against a registry snapshot. Every
// method is total: given any input and any (possibly empty) snapshot it
// returns a string, possibly empty, and never fails.
type Resolver struct {
	matcher NameMatcher
	logger  *slog.Logger
}

func NewResolver(matcher NameMatcher, logger *slog.Logger) *Resolver {
	if matcher == nil {
		matcher = SubstringMatcher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{matcher: matcher, logger: logger}
}

var partWordPattern = regexp.MustCompile(`(?i)part`)

// RoomFromPart resolves a part label like "Part 22" to a room number, or ""
// when the cleaned label is not in the registry.
func (r *Resolver) RoomFromPart(partLabel string, snap *regcache.Snapshot) string {
	if snap == nil {
		return ""
	}
	cleaned := strings.TrimSpace(partWordPattern.ReplaceAllString(partLabel, ""))
	return snap.PartToRoom[cleaned]
}

// RoomFromJudge resolves a judge name to a room number, trying an exact
// lower-cased lookup before falling back to fuzzy matching across all known
// justice names.
func (r *Resolver) RoomFromJudge(judgeName string, snap *regcache.Snapshot) string {
	if snap == nil {
		return ""
	}
	name := strings.ToLower(strings.TrimSpace(judgeName))
	if name == "" {
		return ""
	}
	if room, ok := snap.JudgeToRoom[name]; ok {
		return room
	}

	var hits []string
	var room string
	for key, candidate := range snap.JudgeToRoom {
		if r.matcher.Match(name, key) {
			if room == "" {
				room = candidate
			}
			hits = append(hits, key)
		}
	}
	if len(hits) > 1 {
		r.logger.Warn("ambiguous judge match",
			"extracted", judgeName,
			"candidates", hits,
		)
	}
	return room
}

// CanonicalJudgeName maps an extracted judge name onto the registry's
// preferred spelling, or returns the input unchanged when no judge or justice
// profile matches.
func (r *Resolver) CanonicalJudgeName(extracted string, snap *regcache.Snapshot) string {
	return r.canonicalName(extracted, snap, func(title string) bool {
		return strings.Contains(title, "judge") || strings.Contains(title, "justice")
	})
}

// CanonicalClerkName is CanonicalJudgeName restricted to clerk roles.
func (r *Resolver) CanonicalClerkName(extracted string, snap *regcache.Snapshot) string {
	return r.canonicalName(extracted, snap, func(title string) bool {
		return strings.Contains(title, "clerk")
	})
}

func (r *Resolver) canonicalName(extracted string, snap *regcache.Snapshot, roleMatches func(string) bool) string {
	name := strings.TrimSpace(extracted)
	if name == "" || snap == nil {
		return extracted
	}
	lower := strings.ToLower(name)

	var candidates []registry.PersonnelProfile
	for _, p := range snap.Personnel {
		if roleMatches(strings.ToLower(p.Title)) {
			candidates = append(candidates, p)
		}
	}

	for _, p := range candidates {
		if strings.EqualFold(name, p.DisplayName) || strings.EqualFold(name, p.FullName) {
			return preferredName(p)
		}
	}
	for _, p := range candidates {
		if r.matcher.Match(lower, p.DisplayName) || r.matcher.Match(lower, p.FullName) {
			return preferredName(p)
		}
	}
	return extracted
}

func preferredName(p registry.PersonnelProfile) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.FullName
}

// JudgeForRoom returns the justice assigned to a room, or "".
func (r *Resolver) JudgeForRoom(roomNumber string, snap *regcache.Snapshot) string {
	if a := assignmentForRoom(roomNumber, snap); a != nil {
		return a.JusticeName
	}
	return ""
}

// ClerkForRoom returns the first clerk assigned to a room, or "".
func (r *Resolver) ClerkForRoom(roomNumber string, snap *regcache.Snapshot) string {
	if a := assignmentForRoom(roomNumber, snap); a != nil && len(a.ClerkNames) > 0 {
		return a.ClerkNames[0]
	}
	return ""
}

func assignmentForRoom(roomNumber string, snap *regcache.Snapshot) *registry.Assignment {
	if snap == nil {
		return nil
	}
	room, ok := snap.Rooms[roomNumber]
	if !ok {
		return nil
	}
	for i := range snap.Assignments {
		if snap.Assignments[i].RoomID == room.RoomID {
			return &snap.Assignments[i]
		}
	}
	return nil
}

// confidenceCap bounds how certain enrichment alone can make a session.
const confidenceCap = 0.95

// ApplyConfidence raises a session's confidence once all lookups are done.
// A resolved room plus judge is the strongest positive signal (+0.15); a room
// alone is weaker (+0.10). Confidence is never lowered.
func ApplyConfidence(s *ExtractedSession) {
	var boost float64
	switch {
	case s.RoomNumber != "" && s.JudgeName != "":
		boost = 0.15
	case s.RoomNumber != "":
		boost = 0.10
	default:
		return
	}
	raised := s.Confidence + boost
	if raised > confidenceCap {
		raised = confidenceCap
	}
	if raised > s.Confidence {
		s.Confidence = raised
	}
}
