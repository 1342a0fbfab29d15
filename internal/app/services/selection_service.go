package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/pkg/apperrors"
	"github.com/pcell/backend/internal/pkg/logger"
)

// SelectionService publishes placement results and keeps the one-placement-
// per-student rule.
type SelectionService struct {
	selections SelectionRepository
	users      UserRepository
	openings   OpeningRepository
	interests  JobInterestRepository
}

func NewSelectionService(selections SelectionRepository, users UserRepository, openings OpeningRepository, interests JobInterestRepository) *SelectionService {
	return &SelectionService{selections: selections, users: users, openings: openings, interests: interests}
}

// AddSelections records placements for the given enrolment numbers against
// one opening. Every enrolment number must resolve to a student or the whole
// batch is rejected; already-placed students are reported as skipped.
func (s *SelectionService) AddSelections(ctx context.Context, req dto.AddSelectionsRequest) (*dto.AddSelectionsResponse, error) {
	opening, err := s.openings.FindByID(ctx, req.OpeningID)
	if err != nil {
		return nil, err
	}

	students, err := s.users.FindByEnrolmentNos(ctx, req.EnrolmentNos)
	if err != nil {
		return nil, err
	}
	byEnrolment := make(map[string]*models.User, len(students))
	for _, st := range students {
		byEnrolment[st.EnrolmentNo] = st
	}

	var unknown []string
	for _, enrolmentNo := range req.EnrolmentNos {
		if _, ok := byEnrolment[enrolmentNo]; !ok {
			unknown = append(unknown, enrolmentNo)
		}
	}
	if len(unknown) > 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound,
			fmt.Sprintf("Unknown enrolment numbers: %s", strings.Join(unknown, ", ")))
	}

	resp := &dto.AddSelectionsResponse{Added: make([]*dto.SelectionResponse, 0, len(req.EnrolmentNos))}
	for _, enrolmentNo := range req.EnrolmentNos {
		student := byEnrolment[enrolmentNo]
		selection := &models.Selection{StudentID: student.ID, OpeningID: opening.ID}
		if err := s.selections.Create(ctx, selection); err != nil {
			if errors.Is(err, apperrors.ErrAlreadyPlaced) {
				resp.Skipped = append(resp.Skipped, dto.SkippedSelection{
					EnrolmentNo: enrolmentNo,
					Reason:      "student already has a placement",
				})
				continue
			}
			return nil, err
		}
		selection.Student = student
		selection.Opening = opening
		resp.Added = append(resp.Added, dto.SelectionToResponse(selection))
	}

	logger.Info().
		Int64("openingId", opening.ID).
		Int("added", len(resp.Added)).
		Int("skipped", len(resp.Skipped)).
		Msg("Selections published")
	return resp, nil
}

// List returns selections with joined student and opening details,
// optionally restricted to one opening.
func (s *SelectionService) List(ctx context.Context, openingID int64) ([]*dto.SelectionResponse, error) {
	selections, err := s.selections.List(ctx, openingID)
	if err != nil {
		return nil, err
	}
	return dto.SelectionsToResponses(selections), nil
}

// GetForStudent returns the student's own placement, or ErrSelectionNotFound.
func (s *SelectionService) GetForStudent(ctx context.Context, studentID int64) (*dto.SelectionResponse, error) {
	selection, err := s.selections.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return dto.SelectionToResponse(selection), nil
}

// CheckStudentStatus looks a student up by enrolment number and reports
// whether they are placed and, when an opening is given, whether they have
// applied to it.
func (s *SelectionService) CheckStudentStatus(ctx context.Context, enrolmentNo string, openingID int64) (*dto.StudentStatusResponse, error) {
	students, err := s.users.FindByEnrolmentNos(ctx, []string{enrolmentNo})
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, apperrors.ErrUserNotFound
	}
	student := students[0]

	resp := &dto.StudentStatusResponse{
		StudentName: student.Name,
		EnrolmentNo: student.EnrolmentNo,
		Branch:      student.Branch,
		Batch:       student.Batch,
	}

	_, err = s.selections.FindByStudentID(ctx, student.ID)
	switch {
	case err == nil:
		resp.IsPlaced = true
	case errors.Is(err, apperrors.ErrSelectionNotFound):
	default:
		return nil, err
	}

	if openingID > 0 {
		interest, err := s.interests.FindByUserAndOpening(ctx, student.ID, openingID)
		switch {
		case err == nil:
			resp.HasApplied = interest.IsInterested
		case errors.Is(err, apperrors.ErrResourceNotFound):
		default:
			return nil, err
		}
	}
	return resp, nil
}

// AppliedAndShortlisted returns the students who applied to an opening and
// those already selected for it.
func (s *SelectionService) AppliedAndShortlisted(ctx context.Context, openingID int64) (*dto.AppliedShortlistedResponse, error) {
	if _, err := s.openings.FindByID(ctx, openingID); err != nil {
		return nil, err
	}

	applied, err := s.interests.ListInterestedUsers(ctx, openingID)
	if err != nil {
		return nil, err
	}

	selections, err := s.selections.List(ctx, openingID)
	if err != nil {
		return nil, err
	}
	shortlisted := make([]*models.User, 0, len(selections))
	for _, sel := range selections {
		if sel.Student != nil {
			shortlisted = append(shortlisted, sel.Student)
		}
	}

	return &dto.AppliedShortlistedResponse{
		Applied:     dto.UsersToResponses(applied),
		Shortlisted: dto.UsersToResponses(shortlisted),
	}, nil
}

func (s *SelectionService) Delete(ctx context.Context, id int64) error {
	if err := s.selections.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("selectionId", id).Msg("Selection removed")
	return nil
}
