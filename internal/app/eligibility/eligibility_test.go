package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcell/backend/internal/app/models"
)

func sampleOpening() *models.Opening {
	return &models.Opening{
		CompanyName:     "Acme Corp",
		Batch:           "2026",
		BranchesAllowed: []string{"CSE", "ECE"},
		CgpaCriteria: []models.CgpaCriterion{
			{Branch: "CSE", CGPA: 7.5},
			{Branch: "ECE", CGPA: 7},
		},
	}
}

func sampleStudent() *models.User {
	return &models.User{
		Name:   "Asha Rao",
		Branch: "CSE",
		Batch:  "2026",
		CGPA:   8.2,
	}
}

func TestEvaluateGateOrdering(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(u *models.User, o *models.Opening)
		placement    *Placement
		wantEligible bool
		wantPlaced   bool
		wantReason   string
	}{
		{
			name:         "all gates pass",
			mutate:       func(u *models.User, o *models.Opening) {},
			wantEligible: true,
			wantReason:   "You meet all eligibility criteria",
		},
		{
			name: "cgpa below branch threshold",
			mutate: func(u *models.User, o *models.Opening) {
				u.CGPA = 7
			},
			wantEligible: false,
			wantReason:   "Your CGPA (7) is less than the required CGPA (7.5) for your branch",
		},
		{
			name:         "placed student is blocked regardless of other criteria",
			mutate:       func(u *models.User, o *models.Opening) {},
			placement:    &Placement{CompanyName: "Initech"},
			wantEligible: false,
			wantPlaced:   true,
			wantReason:   "You are already placed in Initech. You cannot apply for new job openings.",
		},
		{
			name: "admin bypass wins over placement",
			mutate: func(u *models.User, o *models.Opening) {
				u.IsAdmin = true
			},
			placement:    &Placement{CompanyName: "Initech"},
			wantEligible: true,
			wantPlaced:   false,
			wantReason:   "Admin users are always eligible",
		},
		{
			name: "batch mismatch",
			mutate: func(u *models.User, o *models.Opening) {
				u.Batch = "2025"
			},
			wantEligible: false,
			wantReason:   "Your batch (2025) is not eligible for this job. Required batch: 2026",
		},
		{
			name: "branch not in allowed set",
			mutate: func(u *models.User, o *models.Opening) {
				u.Branch = "ME"
			},
			wantEligible: false,
			wantReason:   "Your branch (ME) is not eligible for this job. Allowed branches: CSE, ECE",
		},
		{
			name: "batch gate fires before branch gate",
			mutate: func(u *models.User, o *models.Opening) {
				u.Batch = "2024"
				u.Branch = "ME"
			},
			wantEligible: false,
			wantReason:   "Your batch (2024) is not eligible for this job. Required batch: 2026",
		},
		{
			name: "cgpa exactly at threshold passes",
			mutate: func(u *models.User, o *models.Opening) {
				u.CGPA = 7.5
			},
			wantEligible: true,
			wantReason:   "You meet all eligibility criteria",
		},
		{
			name: "no criterion for branch skips the cgpa gate",
			mutate: func(u *models.User, o *models.Opening) {
				o.CgpaCriteria = []models.CgpaCriterion{{Branch: "ECE", CGPA: 9}}
				u.CGPA = 0
			},
			wantEligible: true,
			wantReason:   "You meet all eligibility criteria",
		},
		{
			name: "branch comparison is case sensitive",
			mutate: func(u *models.User, o *models.Opening) {
				u.Branch = "cse"
			},
			wantEligible: false,
			wantReason:   "Your branch (cse) is not eligible for this job. Allowed branches: CSE, ECE",
		},
		{
			name:         "placement with empty company name uses fallback wording",
			mutate:       func(u *models.User, o *models.Opening) {},
			placement:    &Placement{},
			wantEligible: false,
			wantPlaced:   true,
			wantReason:   "You are already placed in a company. You cannot apply for new job openings.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := sampleStudent()
			opening := sampleOpening()
			tt.mutate(user, opening)

			verdict := Evaluate(user, opening, tt.placement)

			assert.Equal(t, tt.wantEligible, verdict.IsEligible)
			assert.Equal(t, tt.wantPlaced, verdict.IsPlaced)
			assert.Equal(t, tt.wantReason, verdict.Reason)
		})
	}
}

func TestEvaluateBrokenCgpaFailsThreshold(t *testing.T) {
	user := sampleStudent()
	user.CGPA = -3
	opening := sampleOpening()

	verdict := Evaluate(user, opening, nil)

	require.False(t, verdict.IsEligible)
	assert.Equal(t, "Your CGPA (0) is less than the required CGPA (7.5) for your branch", verdict.Reason)
}

func TestEvaluateAdminWithoutPlacement(t *testing.T) {
	admin := &models.User{IsAdmin: true}

	verdict := Evaluate(admin, sampleOpening(), nil)

	require.True(t, verdict.IsEligible)
	assert.False(t, verdict.IsPlaced)
}
