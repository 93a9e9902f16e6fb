package employee

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Record is the nested employee profile. Each section maps to one JSONB
// column; field-level access is governed by the policy in policy.go using
// dotted paths like "emergencyContact.phone".
type Record struct {
	ID                 int64
	UserID             *string
	Identity           Identity
	Contact            Contact
	Employment         Employment
	Compensation       Compensation
	EmergencyContact   EmergencyContact
	LeaveBalances      LeaveBalances
	Documents          Documents
	PerformanceReviews PerformanceReviews
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Identity struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Manager    string `json:"manager"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	Bio        string `json:"bio,omitempty"`
}

type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Employment struct {
	HireDate       string `json:"hire_date"` // "2006-01-02"
	EmploymentType string `json:"employment_type"`
	Status         string `json:"status"`
}

type Compensation struct {
	BaseSalary        decimal.Decimal `json:"base_salary"`
	Currency          string          `json:"currency"`
	BankName          string          `json:"bank_name"`
	BankAccountNumber string          `json:"bank_account_number"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type LeaveBalances struct {
	Vacation float64 `json:"vacation"`
	Sick     float64 `json:"sick"`
	Personal float64 `json:"personal"`
}

type Document struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploaded_at"`
}

type Documents []Document

type PerformanceReview struct {
	Period   string `json:"period"`
	Rating   int    `json:"rating"`
	Summary  string `json:"summary"`
	Reviewer string `json:"reviewer"`
}

type PerformanceReviews []PerformanceReview

// Value implements driver.Valuer for database storage
func (d Documents) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner for database retrieval
func (d *Documents) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Documents: invalid type")
	}
	return json.Unmarshal(bytes, d)
}

// Value implements driver.Valuer for database storage
func (p PerformanceReviews) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for database retrieval
func (p *PerformanceReviews) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PerformanceReviews: invalid type")
	}
	return json.Unmarshal(bytes, p)
}
