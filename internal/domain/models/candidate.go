// internal/domain/models/candidate.go
package models

// Candidate is a bench employee as served by the BMS API.
//
// The BMS owns these records; benchboard only holds read-mostly snapshots
// for the duration of a page render. AgingDays is computed upstream.
type Candidate struct {
	EmpID          int    `json:"empId"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	PrimarySkill   string `json:"primarySkill"`
	SecondarySkill string `json:"secondarySkill,omitempty"`
	Level          string `json:"level"`
	BaseLocation   string `json:"baseLocation"`
	DepartmentName string `json:"departmentName"`
	BenchStartDate string `json:"benchStartDate"`          // YYYY-MM-DD
	BenchEndDate   string `json:"benchEndDate,omitempty"`  // YYYY-MM-DD, empty while still on bench
	AgingDays      int    `json:"agingDays"`
	IsDeployable   bool   `json:"isDeployable"`
	PersonStatus   string `json:"personStatus"` // e.g. ONBOARDED, ON_BENCH, LEFT_BENCH
}

// CandidateInput is the body for creating a candidate via the manual-add form.
type CandidateInput struct {
	EmpID          int    `json:"empId"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	PrimarySkill   string `json:"primarySkill"`
	SecondarySkill string `json:"secondarySkill,omitempty"`
	Level          string `json:"level"`
	BaseLocation   string `json:"baseLocation"`
	DepartmentName string `json:"departmentName"`
	BenchStartDate string `json:"benchStartDate"`
	IsDeployable   bool   `json:"isDeployable"`
}

// CandidateUpdate carries a partial update (PATCH). Nil fields are omitted
// from the request body and left untouched upstream.
type CandidateUpdate struct {
	Name           *string `json:"name,omitempty"`
	PrimarySkill   *string `json:"primarySkill,omitempty"`
	SecondarySkill *string `json:"secondarySkill,omitempty"`
	Level          *string `json:"level,omitempty"`
	BaseLocation   *string `json:"baseLocation,omitempty"`
	DepartmentName *string `json:"departmentName,omitempty"`
	BenchEndDate   *string `json:"benchEndDate,omitempty"`
	IsDeployable   *bool   `json:"isDeployable,omitempty"`
	PersonStatus   *string `json:"personStatus,omitempty"`
}

// Remark is a short free-text note attached to a candidate.
type Remark struct {
	RemarkID int    `json:"remarkId"`
	EmpID    int    `json:"empId"`
	Text     string `json:"text"`
	Date     string `json:"date,omitempty"`
}
