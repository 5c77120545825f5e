package entities

// DefaultDepartment is used when a MOM record does not name a department
const DefaultDepartment = "Department of Computer Science & Engineering"

// MOMRecord holds the validated input for a Minutes of Meeting document.
//
// ClosingStatement is accepted for interface compatibility but the
// renderers currently always emit the fixed institutional closing line
// instead. See DESIGN.md.
type MOMRecord struct {
	Department       string     `json:"department"`
	Date             string     `json:"date"`
	Time             string     `json:"time"`
	Venue            string     `json:"venue"`
	AgendaItems      []string   `json:"agenda_items"`
	Discussion       string     `json:"discussion"`
	ClosingStatement string     `json:"closing_statement"`
	IncludeDay       bool       `json:"include_day"`
	Font             FontFamily `json:"font"`
	Size             FontSize   `json:"size"`
}

// DepartmentOrDefault returns the department name, falling back to the
// institutional default when empty.
func (m MOMRecord) DepartmentOrDefault() string {
	if m.Department == "" {
		return DefaultDepartment
	}
	return m.Department
}
