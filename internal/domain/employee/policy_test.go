package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/activity-backend-go/internal/domain/user"
)

func sampleRecord() Record {
	return Record{
		ID: 1,
		Identity: Identity{
			FirstName:  "Jane",
			LastName:   "Doe",
			Position:   "Engineer",
			Department: "Platform",
		},
		Contact: Contact{Email: "jane@example.com", Phone: "+15550100100"},
		Employment: Employment{
			HireDate:       "2020-03-01",
			EmploymentType: "full-time",
			Status:         "active",
		},
		Compensation: Compensation{
			BaseSalary: decimal.NewFromInt(90000),
			Currency:   "USD",
			BankName:   "First Bank",
		},
		EmergencyContact: EmergencyContact{Name: "John Doe", Relationship: "spouse", Phone: "+15550100101"},
		LeaveBalances:    LeaveBalances{Vacation: 12, Sick: 5, Personal: 2},
		PerformanceReviews: PerformanceReviews{
			{Period: "2023-H1", Rating: 4, Summary: "solid", Reviewer: "mgr"},
		},
	}
}

func TestAccessFor_HRReadsAndWritesEverything(t *testing.T) {
	for _, path := range knownPaths {
		acc := AccessFor(user.RoleHR, path)
		assert.Equal(t, ReadOpen, acc.Read, "path %s", path)
		assert.True(t, acc.Write, "path %s", path)
	}
}

func TestAccessFor_EmployeeWriteAllowList(t *testing.T) {
	writable := []string{
		"contact.email",
		"contact.phone",
		"emergencyContact.name",
		"emergencyContact.relationship",
		"emergencyContact.phone",
		"identity.bio",
	}
	for _, path := range writable {
		assert.True(t, CanWrite(user.RoleEmployee, path), "path %s", path)
	}

	for _, path := range []string{
		"identity.firstName",
		"employment.status",
		"compensation.baseSalary",
		"leaveBalances.vacation",
		"performanceReviews",
	} {
		assert.False(t, CanWrite(user.RoleEmployee, path), "path %s", path)
	}
}

func TestAccessFor_EmployeeCompensationBehindReveal(t *testing.T) {
	assert.False(t, CanRead(user.RoleEmployee, "compensation.baseSalary"))
	assert.True(t, NeedsReveal(user.RoleEmployee, "compensation.baseSalary"))
	assert.False(t, NeedsReveal(user.RoleHR, "compensation.baseSalary"))
}

func TestAccessFor_PerformanceReviewsHiddenFromEmployee(t *testing.T) {
	acc := AccessFor(user.RoleEmployee, "performanceReviews")
	assert.Equal(t, ReadNone, acc.Read)
	assert.False(t, acc.Write)
}

func TestAccessFor_UnknownPathIsClosed(t *testing.T) {
	for _, role := range []user.Role{user.RoleHR, user.RoleEmployee} {
		acc := AccessFor(role, "secret.path")
		assert.Equal(t, ReadNone, acc.Read)
		assert.False(t, acc.Write)
	}
}

func TestAccessFor_UnknownRoleGetsEmployeeMatrix(t *testing.T) {
	role := user.ParseRole("superadmin")
	assert.Equal(t, user.RoleEmployee, role)
	assert.False(t, CanWrite(role, "compensation.baseSalary"))
	assert.True(t, NeedsReveal(role, "compensation.baseSalary"))
}

func TestMergeEdit_EmployeeUpdatesOwnFields(t *testing.T) {
	original := sampleRecord()

	merged, err := MergeEdit(original, Edits{
		"contact.phone":          "+15550109999",
		"emergencyContact.phone": "+15550108888",
	}, user.RoleEmployee)
	require.NoError(t, err)

	assert.Equal(t, "+15550109999", merged.Contact.Phone)
	assert.Equal(t, "+15550108888", merged.EmergencyContact.Phone)
	assert.Equal(t, "John Doe", merged.EmergencyContact.Name, "untouched sibling field")
	assert.Equal(t, "+15550100100", original.Contact.Phone, "original is not mutated")
}

func TestMergeEdit_ForbiddenPathRejectsWholeEdit(t *testing.T) {
	original := sampleRecord()

	_, err := MergeEdit(original, Edits{
		"contact.phone":      "+15550109999",
		"performanceReviews": []map[string]any{},
	}, user.RoleEmployee)

	var forbidden *ForbiddenFieldError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "performanceReviews", forbidden.Path)
	assert.ErrorIs(t, err, ErrFieldForbidden)
	assert.Equal(t, "+15550100100", original.Contact.Phone, "nothing partially applied")
}

func TestMergeEdit_UnknownPathRejected(t *testing.T) {
	_, err := MergeEdit(sampleRecord(), Edits{"identity.salaryGrade": "A"}, user.RoleHR)

	var forbidden *ForbiddenFieldError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "identity.salaryGrade", forbidden.Path)
}

func TestMergeEdit_HRUpdatesRestrictedFields(t *testing.T) {
	merged, err := MergeEdit(sampleRecord(), Edits{
		"compensation.baseSalary": 95000.0,
		"employment.status":       "on-leave",
		"leaveBalances.vacation":  15.0,
	}, user.RoleHR)
	require.NoError(t, err)

	assert.True(t, merged.Compensation.BaseSalary.Equal(decimal.NewFromInt(95000)))
	assert.Equal(t, "on-leave", merged.Employment.Status)
	assert.Equal(t, 15.0, merged.LeaveBalances.Vacation)
}

func TestMergeEdit_SalaryAcceptsStringAmount(t *testing.T) {
	merged, err := MergeEdit(sampleRecord(), Edits{
		"compensation.baseSalary": "123456.78",
	}, user.RoleHR)
	require.NoError(t, err)
	assert.Equal(t, "123456.78", merged.Compensation.BaseSalary.String())
}

func TestMergeEdit_InvalidValuesRejected(t *testing.T) {
	cases := []Edits{
		{"contact.email": "not-an-email"},
		{"contact.phone": "abc"},
		{"employment.hireDate": "01/03/2020"},
		{"compensation.baseSalary": "not-a-number"},
		{"leaveBalances.vacation": "ten"},
	}
	for _, edits := range cases {
		_, err := MergeEdit(sampleRecord(), edits, user.RoleHR)
		assert.ErrorIs(t, err, ErrInvalidFieldValue, "edits %v", edits)
	}
}

func TestRedact_EmployeeWithoutReveal(t *testing.T) {
	out := Redact(sampleRecord(), user.RoleEmployee, false)
	assert.True(t, out.Compensation.BaseSalary.IsZero())
	assert.Empty(t, out.Compensation.BankName)
	assert.Nil(t, out.PerformanceReviews)
	assert.Equal(t, "Jane", out.Identity.FirstName, "open fields stay")
}

func TestRedact_EmployeeWithReveal(t *testing.T) {
	out := Redact(sampleRecord(), user.RoleEmployee, true)
	assert.True(t, out.Compensation.BaseSalary.Equal(decimal.NewFromInt(90000)))
	assert.Nil(t, out.PerformanceReviews, "reveal never exposes reviews")
}

func TestRedact_HRSeesEverything(t *testing.T) {
	out := Redact(sampleRecord(), user.RoleHR, false)
	assert.True(t, out.Compensation.BaseSalary.Equal(decimal.NewFromInt(90000)))
	assert.Len(t, out.PerformanceReviews, 1)
}
