package document

import (
	"strings"

	"github.com/johnquangdev/meeting-docgen/internal/domain/entities"
)

// ValidationResult aggregates every failing rule, not just the first;
// callers display the complete list.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ValidateNotice checks the four required notice fields independently
func ValidateNotice(rec entities.NoticeRecord) ValidationResult {
	var errs []string

	if !required(rec.Date) {
		errs = append(errs, "Date is required")
	}
	if !required(rec.Time) {
		errs = append(errs, "Time is required")
	}
	if !required(rec.Venue) {
		errs = append(errs, "Venue is required")
	}
	if !required(rec.Agenda) {
		errs = append(errs, "Agenda/Subject is required")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateMOM checks the five required MOM fields independently
func ValidateMOM(rec entities.MOMRecord) ValidationResult {
	var errs []string

	if !required(rec.Date) {
		errs = append(errs, "Date is required")
	}
	if !required(rec.Time) {
		errs = append(errs, "Time is required")
	}
	if !required(rec.Venue) {
		errs = append(errs, "Venue is required")
	}
	if len(rec.AgendaItems) == 0 {
		errs = append(errs, "At least one agenda item is required")
	}
	if !required(rec.Discussion) {
		errs = append(errs, "Key Discussion Points are required")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
