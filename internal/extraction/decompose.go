package extraction

import (
	"regexp"
	"strings"
)

// PartCell is the decomposition of one multi-line "Part/Judge" column cell.
type PartCell struct {
	PartNumber    string
	CalendarWeek  string
	CalendarDay   string
	AbsenceStatus string
	AbsenceDates  []string
}

var (
	calendarWeekPattern = regexp.MustCompile(`(?i)cal\s*wk\s*(\d+)`)
	dateTokenPattern    = regexp.MustCompile(`\d+[-/]\d+`)
	statusTokenPattern  = regexp.MustCompile(`^[A-Z\s]+$`)
)

// ParsePartCell splits a composite part-column cell into typed sub-fields.
//
// The first non-empty line is always the part identifier — judge identity never
// appears in this cell in the source documents, even when the line visually
// resembles a name; judges must come from the registry. Later lines are
// classified first-match-wins: calendar-week marker, then date token, then
// short status code. Lines matching no rule are dropped; the column format is
// known to contain no other content types.
func ParsePartCell(cellText string) PartCell {
	var lines []string
	for _, line := range strings.Split(cellText, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	var cell PartCell
	if len(lines) == 0 {
		return cell
	}
	cell.PartNumber = lines[0]

	var statuses []string
	var dates []string
	for _, line := range lines[1:] {
		if m := calendarWeekPattern.FindStringSubmatch(line); m != nil {
			cell.CalendarWeek = m[1]
			cell.CalendarDay = line
			continue
		}
		if dateTokenPattern.MatchString(line) {
			dates = append(dates, line)
			continue
		}
		upper := strings.ToUpper(line)
		if len(upper) <= 10 && statusTokenPattern.MatchString(upper) {
			statuses = append(statuses, upper)
		}
	}

	if len(statuses) > 0 {
		cell.AbsenceStatus = strings.Join(statuses, " / ")
	}
	cell.AbsenceDates = dates
	return cell
}
