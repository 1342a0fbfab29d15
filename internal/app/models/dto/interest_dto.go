package dto

// ExpressInterestRequest records a student's interest choice for an opening.
// Pointers keep an explicit false distinguishable from a missing field and
// let an omitted reason leave the stored one untouched.
type ExpressInterestRequest struct {
	IsInterested *bool   `json:"isInterested" binding:"required"`
	Reason       *string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

// ExpressInterestResponse confirms a recorded choice together with the
// verdict it was recorded under.
type ExpressInterestResponse struct {
	Message           string `json:"message" example:"Your interest has been recorded"`
	IsInterested      bool   `json:"isInterested" example:"true"`
	IsEligible        bool   `json:"isEligible" example:"true"`
	EligibilityReason string `json:"eligibilityReason" example:"You meet all eligibility criteria"`
	IsPlaced          bool   `json:"isPlaced" example:"false"`
}

// InterestStatusResponse reports a student's standing for one opening.
// IsInterested is nil when the student has not yet recorded a choice;
// Reason is the student's own note, not the verdict text.
type InterestStatusResponse struct {
	IsEligible        bool   `json:"isEligible" example:"true"`
	EligibilityReason string `json:"eligibilityReason" example:"You meet all eligibility criteria"`
	IsPlaced          bool   `json:"isPlaced" example:"false"`
	IsInterested      *bool  `json:"isInterested"`
	Reason            string `json:"reason,omitempty"`
}

// OpeningStatisticsResponse aggregates interest counts for an opening.
type OpeningStatisticsResponse struct {
	OpeningID             int64           `json:"openingId" example:"7"`
	TotalInterested       int64           `json:"totalInterested" example:"34"`
	TotalNotInterested    int64           `json:"totalNotInterested" example:"12"`
	EligibleAndInterested int64           `json:"eligibleAndInterested" example:"31"`
	InterestedUsers       []*UserResponse `json:"interestedUsers"`
}
