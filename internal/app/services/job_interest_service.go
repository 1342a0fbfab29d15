package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pcell/backend/internal/app/eligibility"
	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/pkg/apperrors"
	"github.com/pcell/backend/internal/pkg/logger"
)

// JobInterestService records interest choices and answers eligibility and
// statistics queries for openings.
type JobInterestService struct {
	users      UserRepository
	openings   OpeningRepository
	selections SelectionRepository
	interests  JobInterestRepository
}

func NewJobInterestService(
	users UserRepository,
	openings OpeningRepository,
	selections SelectionRepository,
	interests JobInterestRepository,
) *JobInterestService {
	return &JobInterestService{
		users:      users,
		openings:   openings,
		selections: selections,
		interests:  interests,
	}
}

// evaluate loads everything the verdict needs and runs the gates.
func (s *JobInterestService) evaluate(ctx context.Context, userID, openingID int64) (*models.User, eligibility.Verdict, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, eligibility.Verdict{}, err
	}
	opening, err := s.openings.FindByID(ctx, openingID)
	if err != nil {
		return nil, eligibility.Verdict{}, err
	}

	var placement *eligibility.Placement
	selection, err := s.selections.FindByStudentID(ctx, user.ID)
	switch {
	case err == nil:
		placement = &eligibility.Placement{}
		if selection.Opening != nil {
			placement.CompanyName = selection.Opening.CompanyName
		}
	case errors.Is(err, apperrors.ErrSelectionNotFound):
		// Not placed.
	default:
		return nil, eligibility.Verdict{}, err
	}

	return user, eligibility.Evaluate(user, opening, placement), nil
}

// ExpressInterest records the student's choice for an opening, overwriting
// any earlier choice. Placed students are rejected outright, whichever way
// they answer. A nil reason keeps whatever note is already stored.
func (s *JobInterestService) ExpressInterest(ctx context.Context, userID, openingID int64, isInterested bool, reason *string) (*dto.ExpressInterestResponse, error) {
	user, verdict, err := s.evaluate(ctx, userID, openingID)
	if err != nil {
		return nil, err
	}

	if verdict.IsPlaced {
		return nil, apperrors.NewCustomError(apperrors.ErrStudentPlaced, verdict.Reason)
	}

	storedReason := ""
	if reason != nil {
		storedReason = *reason
	} else {
		existing, err := s.interests.FindByUserAndOpening(ctx, userID, openingID)
		switch {
		case err == nil:
			storedReason = existing.Reason
		case errors.Is(err, apperrors.ErrResourceNotFound):
			// First record, no note to carry over.
		default:
			return nil, err
		}
	}

	interest := &models.JobInterest{
		UserID:       user.ID,
		OpeningID:    openingID,
		IsInterested: isInterested,
		Reason:       storedReason,
		IsEligible:   verdict.IsEligible,
	}
	if err := s.interests.Upsert(ctx, interest); err != nil {
		return nil, fmt.Errorf("recording interest: %w", err)
	}

	logger.Info().
		Int64("userId", user.ID).
		Int64("openingId", openingID).
		Bool("isInterested", isInterested).
		Bool("isEligible", verdict.IsEligible).
		Msg("Interest recorded")

	message := "Your interest has been recorded"
	if !verdict.IsEligible {
		message = "Your interest has been recorded, but you may not meet all eligibility criteria"
	}
	return &dto.ExpressInterestResponse{
		Message:           message,
		IsInterested:      isInterested,
		IsEligible:        verdict.IsEligible,
		EligibilityReason: verdict.Reason,
		IsPlaced:          verdict.IsPlaced,
	}, nil
}

// GetInterestStatus reports the student's eligibility verdict and recorded
// choice for an opening. IsInterested stays nil until a choice exists.
func (s *JobInterestService) GetInterestStatus(ctx context.Context, userID, openingID int64) (*dto.InterestStatusResponse, error) {
	_, verdict, err := s.evaluate(ctx, userID, openingID)
	if err != nil {
		return nil, err
	}

	status := &dto.InterestStatusResponse{
		IsEligible:        verdict.IsEligible,
		EligibilityReason: verdict.Reason,
		IsPlaced:          verdict.IsPlaced,
	}

	interest, err := s.interests.FindByUserAndOpening(ctx, userID, openingID)
	switch {
	case err == nil:
		v := interest.IsInterested
		status.IsInterested = &v
		status.Reason = interest.Reason
	case errors.Is(err, apperrors.ErrResourceNotFound):
		// Undecided.
	default:
		return nil, err
	}

	return status, nil
}

// GetOpeningStatistics aggregates interest counts and the interested-user
// roster for one opening.
func (s *JobInterestService) GetOpeningStatistics(ctx context.Context, openingID int64) (*dto.OpeningStatisticsResponse, error) {
	if _, err := s.openings.FindByID(ctx, openingID); err != nil {
		return nil, err
	}

	totalInterested, err := s.interests.CountByOpening(ctx, openingID, true)
	if err != nil {
		return nil, err
	}
	totalNotInterested, err := s.interests.CountByOpening(ctx, openingID, false)
	if err != nil {
		return nil, err
	}
	eligibleAndInterested, err := s.interests.CountEligibleInterested(ctx, openingID)
	if err != nil {
		return nil, err
	}
	interestedUsers, err := s.interests.ListInterestedUsers(ctx, openingID)
	if err != nil {
		return nil, err
	}

	return &dto.OpeningStatisticsResponse{
		OpeningID:             openingID,
		TotalInterested:       totalInterested,
		TotalNotInterested:    totalNotInterested,
		EligibleAndInterested: eligibleAndInterested,
		InterestedUsers:       dto.UsersToResponses(interestedUsers),
	}, nil
}
