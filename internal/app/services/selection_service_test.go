package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/pkg/apperrors"
)

type selectionFixture struct {
	svc        *SelectionService
	users      *memUserRepo
	openings   *memOpeningRepo
	selections *memSelectionRepo
	interests  *memJobInterestRepo
}

func newSelectionFixture() *selectionFixture {
	users := newMemUserRepo()
	openings := newMemOpeningRepo()
	selections := newMemSelectionRepo()
	interests := newMemJobInterestRepo(users)
	return &selectionFixture{
		svc:        NewSelectionService(selections, users, openings, interests),
		users:      users,
		openings:   openings,
		selections: selections,
		interests:  interests,
	}
}

func TestAddSelectionsSkipsAlreadyPlaced(t *testing.T) {
	f := newSelectionFixture()
	ctx := context.Background()

	opening := f.openings.add(&models.Opening{CompanyName: "Acme Corp", Batch: "2026"})
	other := f.openings.add(&models.Opening{CompanyName: "Initech", Batch: "2026"})

	fresh := f.users.add(&models.User{Name: "Asha", EnrolmentNo: "2022BCS0421"})
	placed := f.users.add(&models.User{Name: "Ravi", EnrolmentNo: "2022BCS0422"})
	require.NoError(t, f.selections.Create(ctx, &models.Selection{StudentID: placed.ID, OpeningID: other.ID}))

	resp, err := f.svc.AddSelections(ctx, dto.AddSelectionsRequest{
		OpeningID:    opening.ID,
		EnrolmentNos: []string{"2022BCS0421", "2022BCS0422"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Added, 1)
	assert.Equal(t, fresh.ID, resp.Added[0].StudentDetails.ID)

	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, "2022BCS0422", resp.Skipped[0].EnrolmentNo)
	assert.Equal(t, "student already has a placement", resp.Skipped[0].Reason)
}

func TestAddSelectionsRejectsBatchOnUnknownEnrolment(t *testing.T) {
	f := newSelectionFixture()
	ctx := context.Background()

	opening := f.openings.add(&models.Opening{CompanyName: "Acme Corp", Batch: "2026"})
	known := f.users.add(&models.User{Name: "Asha", EnrolmentNo: "2022BCS0421"})

	_, err := f.svc.AddSelections(ctx, dto.AddSelectionsRequest{
		OpeningID:    opening.ID,
		EnrolmentNos: []string{"2022BCS0421", "2022BCS0999"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Contains(t, err.Error(), "2022BCS0999")

	// Nothing was recorded, the known student included.
	_, err = f.selections.FindByStudentID(ctx, known.ID)
	assert.ErrorIs(t, err, apperrors.ErrSelectionNotFound)
}

func TestAddSelectionsUnknownOpening(t *testing.T) {
	f := newSelectionFixture()

	_, err := f.svc.AddSelections(context.Background(), dto.AddSelectionsRequest{
		OpeningID:    7,
		EnrolmentNos: []string{"2022BCS0421"},
	})
	assert.ErrorIs(t, err, apperrors.ErrOpeningNotFound)
}

func TestGetForStudentNotPlaced(t *testing.T) {
	f := newSelectionFixture()

	_, err := f.svc.GetForStudent(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrSelectionNotFound)
}

func TestCheckStudentStatus(t *testing.T) {
	f := newSelectionFixture()
	ctx := context.Background()

	opening := f.openings.add(&models.Opening{CompanyName: "Acme Corp", Batch: "2026"})
	student := f.users.add(&models.User{
		Name: "Asha", EnrolmentNo: "2022BCS0421", Branch: "CSE", Batch: "2026",
	})

	status, err := f.svc.CheckStudentStatus(ctx, "2022BCS0421", opening.ID)
	require.NoError(t, err)
	assert.False(t, status.IsPlaced)
	assert.False(t, status.HasApplied)
	assert.Equal(t, "Asha", status.StudentName)
	assert.Equal(t, "CSE", status.Branch)

	require.NoError(t, f.interests.Upsert(ctx, &models.JobInterest{
		UserID: student.ID, OpeningID: opening.ID, IsInterested: true,
	}))
	require.NoError(t, f.selections.Create(ctx, &models.Selection{
		StudentID: student.ID, OpeningID: opening.ID,
	}))

	status, err = f.svc.CheckStudentStatus(ctx, "2022BCS0421", opening.ID)
	require.NoError(t, err)
	assert.True(t, status.IsPlaced)
	assert.True(t, status.HasApplied)
}

func TestCheckStudentStatusNotInterestedIsNotApplied(t *testing.T) {
	f := newSelectionFixture()
	ctx := context.Background()

	opening := f.openings.add(&models.Opening{CompanyName: "Acme Corp", Batch: "2026"})
	student := f.users.add(&models.User{Name: "Ravi", EnrolmentNo: "2022BCS0422"})

	require.NoError(t, f.interests.Upsert(ctx, &models.JobInterest{
		UserID: student.ID, OpeningID: opening.ID, IsInterested: false,
	}))

	status, err := f.svc.CheckStudentStatus(ctx, "2022BCS0422", opening.ID)
	require.NoError(t, err)
	assert.False(t, status.HasApplied)
}

func TestCheckStudentStatusUnknownStudent(t *testing.T) {
	f := newSelectionFixture()

	_, err := f.svc.CheckStudentStatus(context.Background(), "2022BCS0999", 0)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestAppliedAndShortlisted(t *testing.T) {
	f := newSelectionFixture()
	ctx := context.Background()

	opening := f.openings.add(&models.Opening{CompanyName: "Acme Corp", Batch: "2026"})
	applicant := f.users.add(&models.User{Name: "Asha", EnrolmentNo: "2022BCS0421"})
	selected := f.users.add(&models.User{Name: "Ravi", EnrolmentNo: "2022BCS0422"})

	require.NoError(t, f.interests.Upsert(ctx, &models.JobInterest{
		UserID: applicant.ID, OpeningID: opening.ID, IsInterested: true,
	}))
	require.NoError(t, f.selections.Create(ctx, &models.Selection{
		StudentID: selected.ID, OpeningID: opening.ID, Student: selected,
	}))

	resp, err := f.svc.AppliedAndShortlisted(ctx, opening.ID)
	require.NoError(t, err)
	require.Len(t, resp.Applied, 1)
	assert.Equal(t, applicant.ID, resp.Applied[0].ID)
	require.Len(t, resp.Shortlisted, 1)
	assert.Equal(t, selected.ID, resp.Shortlisted[0].ID)
}

func TestAppliedAndShortlistedUnknownOpening(t *testing.T) {
	f := newSelectionFixture()

	_, err := f.svc.AppliedAndShortlisted(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrOpeningNotFound)
}
