package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories groups every repository over one shared pool.
type Repositories struct {
	Users         *UserRepository
	Branches      *BranchRepository
	Openings      *OpeningRepository
	Selections    *SelectionRepository
	JobInterests  *JobInterestRepository
	Announcements *AnnouncementRepository
	Tokens        *TokenRepository
}

// New constructs the full repository set.
func New(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(db),
		Branches:      NewBranchRepository(db),
		Openings:      NewOpeningRepository(db),
		Selections:    NewSelectionRepository(db),
		JobInterests:  NewJobInterestRepository(db),
		Announcements: NewAnnouncementRepository(db),
		Tokens:        NewTokenRepository(db),
	}
}
