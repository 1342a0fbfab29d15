package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/app/models/dto"
)

func TestUpdateProfileClampsCGPA(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "above scale", in: 11.4, want: 10},
		{name: "negative", in: -2, want: 0},
		{name: "in range", in: 8.25, want: 8.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newMemUserRepo()
			student := users.add(&models.User{Name: "Asha", Branch: "CSE", CGPA: 7})
			svc := NewUserService(users)

			resp, err := svc.UpdateProfile(context.Background(), student.ID, dto.UpdateProfileRequest{CGPA: &tt.in})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.CGPA)
		})
	}
}

func TestUpdateProfileTrimsStrings(t *testing.T) {
	users := newMemUserRepo()
	student := users.add(&models.User{Name: "Asha", Branch: "CSE"})
	svc := NewUserService(users)

	name := "  Asha Rao "
	batch := " 2026\t"
	resp, err := svc.UpdateProfile(context.Background(), student.ID, dto.UpdateProfileRequest{
		Name:  &name,
		Batch: &batch,
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", resp.Name)
	assert.Equal(t, "2026", resp.Batch)
}

func TestUpdateProfilePartialUpdateKeepsOtherFields(t *testing.T) {
	users := newMemUserRepo()
	student := users.add(&models.User{Name: "Asha", Branch: "CSE", Batch: "2026", Mobile: "9876543210"})
	svc := NewUserService(users)

	name := "Asha Rao"
	resp, err := svc.UpdateProfile(context.Background(), student.ID, dto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", resp.Name)
	assert.Equal(t, "CSE", resp.Branch)
	assert.Equal(t, "9876543210", resp.Mobile)
}
