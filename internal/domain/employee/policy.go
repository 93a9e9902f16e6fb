package employee

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/stafftrack/activity-backend-go/internal/domain/user"
	"github.com/stafftrack/activity-backend-go/internal/pkg/validator"
)

// ReadLevel gates how a field may be shown to a role.
type ReadLevel int

const (
	// ReadNone: never included in responses for this role.
	ReadNone ReadLevel = iota
	// ReadReveal: included only when the caller explicitly asks to reveal it.
	ReadReveal
	// ReadOpen: always included.
	ReadOpen
)

// Access is one cell of the role x field-path matrix.
type Access struct {
	Read  ReadLevel
	Write bool
}

// Every addressable field path. Leaf fields use dotted paths; documents and
// performanceReviews are addressed as whole sections.
var knownPaths = []string{
	"identity.firstName",
	"identity.lastName",
	"identity.position",
	"identity.department",
	"identity.manager",
	"identity.avatarURL",
	"identity.bio",
	"contact.email",
	"contact.phone",
	"employment.hireDate",
	"employment.employmentType",
	"employment.status",
	"compensation.baseSalary",
	"compensation.currency",
	"compensation.bankName",
	"compensation.bankAccountNumber",
	"emergencyContact.name",
	"emergencyContact.relationship",
	"emergencyContact.phone",
	"leaveBalances.vacation",
	"leaveBalances.sick",
	"leaveBalances.personal",
	"documents",
	"performanceReviews",
}

// employeeWritable is the fixed allow-list of self-service fields.
var employeeWritable = map[string]bool{
	"contact.email":                 true,
	"contact.phone":                 true,
	"emergencyContact.name":         true,
	"emergencyContact.relationship": true,
	"emergencyContact.phone":        true,
	"identity.bio":                  true,
}

var hrMatrix, employeeMatrix map[string]Access

func init() {
	hrMatrix = make(map[string]Access, len(knownPaths))
	employeeMatrix = make(map[string]Access, len(knownPaths))
	for _, path := range knownPaths {
		hrMatrix[path] = Access{Read: ReadOpen, Write: true}

		acc := Access{Read: ReadOpen, Write: employeeWritable[path]}
		switch path {
		case "compensation.baseSalary", "compensation.currency",
			"compensation.bankName", "compensation.bankAccountNumber":
			acc.Read = ReadReveal
		case "performanceReviews":
			acc.Read = ReadNone
		}
		employeeMatrix[path] = acc
	}
}

// AccessFor resolves one matrix cell. Unknown roles get the employee matrix
// and unknown paths get the zero Access: not readable, not writable.
func AccessFor(role user.Role, path string) Access {
	matrix := employeeMatrix
	if role == user.RoleHR {
		matrix = hrMatrix
	}
	return matrix[path]
}

func CanRead(role user.Role, path string) bool {
	return AccessFor(role, path).Read == ReadOpen
}

// NeedsReveal reports whether the field is readable only behind the explicit
// reveal toggle.
func NeedsReveal(role user.Role, path string) bool {
	return AccessFor(role, path).Read == ReadReveal
}

func CanWrite(role user.Role, path string) bool {
	return AccessFor(role, path).Write
}

// Edits is a partial employee record keyed by dotted field path.
type Edits map[string]any

// MergeEdit applies edits to a copy of original after checking write access
// on every touched path. Any forbidden or unknown path rejects the whole
// edit; nothing is partially applied. Editing a sub-field never requires
// access to sibling fields of the same section.
func MergeEdit(original Record, edits Edits, role user.Role) (Record, error) {
	paths := make([]string, 0, len(edits))
	for path := range edits {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if _, known := fieldSetters[path]; !known || !CanWrite(role, path) {
			return Record{}, &ForbiddenFieldError{Path: path}
		}
	}

	merged := original
	for _, path := range paths {
		if err := fieldSetters[path](&merged, edits[path]); err != nil {
			return Record{}, fmt.Errorf("%w: %s", err, path)
		}
	}
	return merged, nil
}

// Redact returns a copy of the record with every field the role may not
// currently read zeroed out. revealCompensation is the user-toggled reveal
// for ReadReveal fields.
func Redact(r Record, role user.Role, revealCompensation bool) Record {
	out := r
	if acc := AccessFor(role, "compensation.baseSalary"); acc.Read == ReadNone ||
		(acc.Read == ReadReveal && !revealCompensation) {
		out.Compensation = Compensation{}
	}
	if acc := AccessFor(role, "performanceReviews"); acc.Read == ReadNone {
		out.PerformanceReviews = nil
	}
	if acc := AccessFor(role, "documents"); acc.Read == ReadNone {
		out.Documents = nil
	}
	return out
}

// fieldSetters maps every writable path to its typed assignment. An edit on
// a path absent here is rejected by MergeEdit regardless of role.
var fieldSetters = map[string]func(*Record, any) error{
	"identity.firstName":  func(r *Record, v any) error { return setString(&r.Identity.FirstName, v) },
	"identity.lastName":   func(r *Record, v any) error { return setString(&r.Identity.LastName, v) },
	"identity.position":   func(r *Record, v any) error { return setString(&r.Identity.Position, v) },
	"identity.department": func(r *Record, v any) error { return setString(&r.Identity.Department, v) },
	"identity.manager":    func(r *Record, v any) error { return setString(&r.Identity.Manager, v) },
	"identity.avatarURL":  func(r *Record, v any) error { return setString(&r.Identity.AvatarURL, v) },
	"identity.bio":        func(r *Record, v any) error { return setString(&r.Identity.Bio, v) },
	"contact.email": func(r *Record, v any) error {
		s, err := asString(v)
		if err != nil {
			return err
		}
		if !validator.IsValidEmail(s) {
			return ErrInvalidFieldValue
		}
		r.Contact.Email = s
		return nil
	},
	"contact.phone": func(r *Record, v any) error {
		s, err := asString(v)
		if err != nil {
			return err
		}
		if !validator.IsValidPhoneNumber(s) {
			return ErrInvalidFieldValue
		}
		r.Contact.Phone = s
		return nil
	},
	"employment.hireDate": func(r *Record, v any) error {
		s, err := asString(v)
		if err != nil {
			return err
		}
		if _, ok := validator.IsValidISODate(s); !ok {
			return ErrInvalidFieldValue
		}
		r.Employment.HireDate = s
		return nil
	},
	"employment.employmentType": func(r *Record, v any) error { return setString(&r.Employment.EmploymentType, v) },
	"employment.status":         func(r *Record, v any) error { return setString(&r.Employment.Status, v) },
	"compensation.baseSalary": func(r *Record, v any) error {
		d, err := asDecimal(v)
		if err != nil {
			return err
		}
		r.Compensation.BaseSalary = d
		return nil
	},
	"compensation.currency":          func(r *Record, v any) error { return setString(&r.Compensation.Currency, v) },
	"compensation.bankName":          func(r *Record, v any) error { return setString(&r.Compensation.BankName, v) },
	"compensation.bankAccountNumber": func(r *Record, v any) error { return setString(&r.Compensation.BankAccountNumber, v) },
	"emergencyContact.name":          func(r *Record, v any) error { return setString(&r.EmergencyContact.Name, v) },
	"emergencyContact.relationship":  func(r *Record, v any) error { return setString(&r.EmergencyContact.Relationship, v) },
	"emergencyContact.phone": func(r *Record, v any) error {
		s, err := asString(v)
		if err != nil {
			return err
		}
		if !validator.IsValidPhoneNumber(s) {
			return ErrInvalidFieldValue
		}
		r.EmergencyContact.Phone = s
		return nil
	},
	"leaveBalances.vacation": func(r *Record, v any) error { return setFloat(&r.LeaveBalances.Vacation, v) },
	"leaveBalances.sick":     func(r *Record, v any) error { return setFloat(&r.LeaveBalances.Sick, v) },
	"leaveBalances.personal": func(r *Record, v any) error { return setFloat(&r.LeaveBalances.Personal, v) },
	"documents": func(r *Record, v any) error {
		docs, err := remarshal[Documents](v)
		if err != nil {
			return err
		}
		r.Documents = docs
		return nil
	},
	"performanceReviews": func(r *Record, v any) error {
		reviews, err := remarshal[PerformanceReviews](v)
		if err != nil {
			return err
		}
		r.PerformanceReviews = reviews
		return nil
	},
}

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", ErrInvalidFieldValue
	}
	return s, nil
}

func setString(dst *string, v any) error {
	s, err := asString(v)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

func setFloat(dst *float64, v any) error {
	f, ok := v.(float64)
	if !ok {
		return ErrInvalidFieldValue
	}
	*dst = f
	return nil
}

// remarshal converts a decoded JSON value into a section type by
// round-tripping through encoding/json.
func remarshal[T any](v any) (T, error) {
	var out T
	b, err := json.Marshal(v)
	if err != nil {
		return out, ErrInvalidFieldValue
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, ErrInvalidFieldValue
	}
	return out, nil
}

// asDecimal accepts JSON numbers and strings; salaries arrive as either.
func asDecimal(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val), nil
	case string:
		d, err := decimal.NewFromString(val)
		if err != nil {
			return decimal.Decimal{}, ErrInvalidFieldValue
		}
		return d, nil
	}
	return decimal.Decimal{}, ErrInvalidFieldValue
}
