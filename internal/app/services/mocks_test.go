package services

import (
	"context"
	"strings"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/pkg/apperrors"
)

// In-memory fakes backing the service tests. They enforce the same
// uniqueness rules as the SQL schema.

type memUserRepo struct {
	nextID int64
	users  map[int64]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: make(map[int64]*models.User)}
}

func (m *memUserRepo) add(u *models.User) *models.User {
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	return u
}

func (m *memUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if u.EnrolmentNo == user.EnrolmentNo {
			return apperrors.ErrEnrolmentNoExists
		}
	}
	m.add(user)
	return nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUserRepo) FindByEnrolmentNos(ctx context.Context, enrolmentNos []string) ([]*models.User, error) {
	out := make([]*models.User, 0)
	for _, no := range enrolmentNos {
		for _, u := range m.users {
			if u.EnrolmentNo == no {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (m *memUserRepo) Update(ctx context.Context, user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	u, ok := m.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Password = hashedPassword
	return nil
}

func (m *memUserRepo) List(ctx context.Context, branch, batch, search string, page, size int) ([]*models.User, int64, error) {
	out := make([]*models.User, 0)
	for _, u := range m.users {
		if branch != "" && u.Branch != branch {
			continue
		}
		if batch != "" && u.Batch != batch {
			continue
		}
		if search != "" && !strings.Contains(u.Name, search) && !strings.Contains(u.Email, search) {
			continue
		}
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (m *memUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

type memOpeningRepo struct {
	nextID   int64
	openings map[int64]*models.Opening
}

func newMemOpeningRepo() *memOpeningRepo {
	return &memOpeningRepo{nextID: 1, openings: make(map[int64]*models.Opening)}
}

func (m *memOpeningRepo) add(o *models.Opening) *models.Opening {
	o.ID = m.nextID
	m.nextID++
	m.openings[o.ID] = o
	return o
}

func (m *memOpeningRepo) Create(ctx context.Context, opening *models.Opening) error {
	m.add(opening)
	return nil
}

func (m *memOpeningRepo) FindByID(ctx context.Context, id int64) (*models.Opening, error) {
	o, ok := m.openings[id]
	if !ok {
		return nil, apperrors.ErrOpeningNotFound
	}
	return o, nil
}

func (m *memOpeningRepo) List(ctx context.Context, batch, offerType, company string, page, size int) ([]*models.Opening, int64, error) {
	out := make([]*models.Opening, 0)
	for _, o := range m.openings {
		if batch != "" && o.Batch != batch {
			continue
		}
		if offerType != "" && o.OfferType != offerType {
			continue
		}
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

func (m *memOpeningRepo) Update(ctx context.Context, opening *models.Opening) error {
	if _, ok := m.openings[opening.ID]; !ok {
		return apperrors.ErrOpeningNotFound
	}
	m.openings[opening.ID] = opening
	return nil
}

func (m *memOpeningRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.openings[id]; !ok {
		return apperrors.ErrOpeningNotFound
	}
	delete(m.openings, id)
	return nil
}

type memSelectionRepo struct {
	nextID     int64
	selections map[int64]*models.Selection
}

func newMemSelectionRepo() *memSelectionRepo {
	return &memSelectionRepo{nextID: 1, selections: make(map[int64]*models.Selection)}
}

func (m *memSelectionRepo) Create(ctx context.Context, selection *models.Selection) error {
	for _, s := range m.selections {
		if s.StudentID == selection.StudentID {
			return apperrors.ErrAlreadyPlaced
		}
	}
	selection.ID = m.nextID
	m.nextID++
	m.selections[selection.ID] = selection
	return nil
}

func (m *memSelectionRepo) FindByStudentID(ctx context.Context, studentID int64) (*models.Selection, error) {
	for _, s := range m.selections {
		if s.StudentID == studentID {
			return s, nil
		}
	}
	return nil, apperrors.ErrSelectionNotFound
}

func (m *memSelectionRepo) List(ctx context.Context, openingID int64) ([]*models.Selection, error) {
	out := make([]*models.Selection, 0)
	for _, s := range m.selections {
		if openingID != 0 && s.OpeningID != openingID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *memSelectionRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.selections[id]; !ok {
		return apperrors.ErrSelectionNotFound
	}
	delete(m.selections, id)
	return nil
}

type interestKey struct {
	userID    int64
	openingID int64
}

type memJobInterestRepo struct {
	nextID    int64
	interests map[interestKey]*models.JobInterest
	users     *memUserRepo
}

func newMemJobInterestRepo(users *memUserRepo) *memJobInterestRepo {
	return &memJobInterestRepo{
		nextID:    1,
		interests: make(map[interestKey]*models.JobInterest),
		users:     users,
	}
}

func (m *memJobInterestRepo) Upsert(ctx context.Context, interest *models.JobInterest) error {
	key := interestKey{userID: interest.UserID, openingID: interest.OpeningID}
	if existing, ok := m.interests[key]; ok {
		existing.IsInterested = interest.IsInterested
		existing.Reason = interest.Reason
		existing.IsEligible = interest.IsEligible
		interest.ID = existing.ID
		return nil
	}
	interest.ID = m.nextID
	m.nextID++
	stored := *interest
	m.interests[key] = &stored
	return nil
}

func (m *memJobInterestRepo) FindByUserAndOpening(ctx context.Context, userID, openingID int64) (*models.JobInterest, error) {
	ji, ok := m.interests[interestKey{userID: userID, openingID: openingID}]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return ji, nil
}

func (m *memJobInterestRepo) CountByOpening(ctx context.Context, openingID int64, isInterested bool) (int64, error) {
	var count int64
	for _, ji := range m.interests {
		if ji.OpeningID == openingID && ji.IsInterested == isInterested {
			count++
		}
	}
	return count, nil
}

func (m *memJobInterestRepo) CountEligibleInterested(ctx context.Context, openingID int64) (int64, error) {
	var count int64
	for _, ji := range m.interests {
		if ji.OpeningID == openingID && ji.IsInterested && ji.IsEligible {
			count++
		}
	}
	return count, nil
}

func (m *memJobInterestRepo) ListInterestedUsers(ctx context.Context, openingID int64) ([]*models.User, error) {
	out := make([]*models.User, 0)
	for _, ji := range m.interests {
		if ji.OpeningID != openingID || !ji.IsInterested {
			continue
		}
		if u, ok := m.users.users[ji.UserID]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}
