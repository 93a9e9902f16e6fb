package employee

import "github.com/stafftrack/activity-backend-go/internal/domain/user"

// UpdateProfileRequest carries a partial edit keyed by dotted field path,
// e.g. {"edits": {"contact.phone": "+15551234567"}}.
type UpdateProfileRequest struct {
	Edits Edits `json:"edits"`
}

type ProfileResponse struct {
	ID                 int64              `json:"id"`
	Identity           Identity           `json:"identity"`
	Contact            Contact            `json:"contact"`
	Employment         Employment         `json:"employment"`
	Compensation       *Compensation      `json:"compensation,omitempty"`
	CompensationHidden bool               `json:"compensation_hidden,omitempty"`
	EmergencyContact   EmergencyContact   `json:"emergency_contact"`
	LeaveBalances      LeaveBalances      `json:"leave_balances"`
	Documents          Documents          `json:"documents,omitempty"`
	PerformanceReviews PerformanceReviews `json:"performance_reviews,omitempty"`
	EditablePaths      []string           `json:"editable_paths"`
}

// ToProfileResponse applies the read policy for the role and reveal toggle
// and tells the client which paths it may edit.
func ToProfileResponse(r Record, role user.Role, revealCompensation bool) ProfileResponse {
	redacted := Redact(r, role, revealCompensation)

	resp := ProfileResponse{
		ID:                 redacted.ID,
		Identity:           redacted.Identity,
		Contact:            redacted.Contact,
		Employment:         redacted.Employment,
		EmergencyContact:   redacted.EmergencyContact,
		LeaveBalances:      redacted.LeaveBalances,
		Documents:          redacted.Documents,
		PerformanceReviews: redacted.PerformanceReviews,
	}

	if CanRead(role, "compensation.baseSalary") ||
		(NeedsReveal(role, "compensation.baseSalary") && revealCompensation) {
		comp := redacted.Compensation
		resp.Compensation = &comp
	} else if NeedsReveal(role, "compensation.baseSalary") {
		resp.CompensationHidden = true
	}

	for _, path := range knownPaths {
		if CanWrite(role, path) {
			resp.EditablePaths = append(resp.EditablePaths, path)
		}
	}
	return resp
}
