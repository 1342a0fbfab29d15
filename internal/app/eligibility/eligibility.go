// Package eligibility implements the placement-cell eligibility rules: the
// pure verdict function deciding whether a student may apply for an opening.
// All record fetching is the caller's responsibility; Evaluate performs no I/O.
package eligibility

import (
	"fmt"
	"math"
	"strings"

	"github.com/pcell/backend/internal/app/models"
)

// Placement describes an existing selection record for the student being
// evaluated. A nil Placement means the student is not placed.
type Placement struct {
	CompanyName string
}

// Verdict is the structured result of an eligibility evaluation. An
// ineligible verdict is a normal outcome, not an error.
type Verdict struct {
	IsEligible bool   `json:"isEligible"`
	Reason     string `json:"reason"`
	IsPlaced   bool   `json:"isPlaced"`
}

// Evaluate runs the ordered eligibility gates for a user against an opening.
// The first failing gate wins and its reason is returned; gates are checked
// in this order:
//
//  1. admin bypass (checked before the placement gate, so a placed admin
//     still reads as eligible)
//  2. placement gate: any existing selection makes the student ineligible
//  3. batch gate: exact string equality
//  4. branch gate: exact membership in the allowed set
//  5. CGPA gate: per-branch threshold, absent entry passes silently
//
// Branch and batch comparisons are case-sensitive with no normalization.
func Evaluate(user *models.User, opening *models.Opening, placement *Placement) Verdict {
	if user.IsAdmin {
		return Verdict{IsEligible: true, Reason: "Admin users are always eligible", IsPlaced: false}
	}

	if placement != nil {
		companyName := placement.CompanyName
		if companyName == "" {
			companyName = "a company"
		}
		return Verdict{
			IsEligible: false,
			Reason:     fmt.Sprintf("You are already placed in %s. You cannot apply for new job openings.", companyName),
			IsPlaced:   true,
		}
	}

	if user.Batch != opening.Batch {
		return Verdict{
			IsEligible: false,
			Reason:     fmt.Sprintf("Your batch (%s) is not eligible for this job. Required batch: %s", user.Batch, opening.Batch),
			IsPlaced:   false,
		}
	}

	branchAllowed := false
	for _, branch := range opening.BranchesAllowed {
		if branch == user.Branch {
			branchAllowed = true
			break
		}
	}
	if !branchAllowed {
		return Verdict{
			IsEligible: false,
			Reason:     fmt.Sprintf("Your branch (%s) is not eligible for this job. Allowed branches: %s", user.Branch, strings.Join(opening.BranchesAllowed, ", ")),
			IsPlaced:   false,
		}
	}

	if criterion := opening.CriterionFor(user.Branch); criterion != nil {
		userCgpa := sanitizeCgpa(user.CGPA)
		requiredCgpa := sanitizeCgpa(criterion.CGPA)
		if userCgpa < requiredCgpa {
			return Verdict{
				IsEligible: false,
				Reason:     fmt.Sprintf("Your CGPA (%g) is less than the required CGPA (%g) for your branch", userCgpa, requiredCgpa),
				IsPlaced:   false,
			}
		}
	}

	return Verdict{IsEligible: true, Reason: "You meet all eligibility criteria", IsPlaced: false}
}

// sanitizeCgpa maps broken CGPA values to 0, mirroring the write-side rule
// that an unparsable CGPA fails any real threshold.
func sanitizeCgpa(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
