package models

import "time"

// CgpaCriterion is a per-branch minimum CGPA requirement attached to an opening.
// An opening carries at most one criterion per branch; a branch without a
// criterion has no CGPA gate.
type CgpaCriterion struct {
	Branch string  `json:"branch" example:"CSE"` // Branch code the threshold applies to
	CGPA   float64 `json:"cgpa" example:"7.5"`   // Minimum CGPA for that branch
}

// Opening represents a job or internship posting with eligibility constraints,
// based on the 'openings' table. BranchesAllowed and CgpaCriteria are stored
// as JSONB columns.
type Opening struct {
	ID                  int64           `json:"id" db:"id" example:"1"`
	CompanyName         string          `json:"companyName" db:"company_name" example:"Acme Corp"`
	OfferType           string          `json:"offerType" db:"offer_type" example:"Full Time"`
	Batch               string          `json:"batch" db:"batch" example:"2023"`                  // Exact-match batch requirement
	BranchesAllowed     []string        `json:"branchesAllowed" db:"branches_allowed"`            // Allowed branch codes, exact membership
	CgpaCriteria        []CgpaCriterion `json:"cgpaCriteria" db:"cgpa_criteria"`                  // Per-branch minimum CGPA, may be empty
	ApplicationDeadline *time.Time      `json:"applicationDeadline,omitempty" db:"application_deadline"`
	TestDate            *time.Time      `json:"testDate,omitempty" db:"test_date"`
	AdditionalInfo      string          `json:"additionalInfo,omitempty" db:"additional_info"`
	CreatedAt           time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time       `json:"updatedAt" db:"updated_at"`
}

// CriterionFor returns the CGPA criterion for a branch, or nil when the
// opening carries no CGPA requirement for that branch. Comparison is
// case-sensitive exact equality.
func (o *Opening) CriterionFor(branch string) *CgpaCriterion {
	for i := range o.CgpaCriteria {
		if o.CgpaCriteria[i].Branch == branch {
			return &o.CgpaCriteria[i]
		}
	}
	return nil
}
