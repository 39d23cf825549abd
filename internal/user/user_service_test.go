package user_test

import (
	"context"
	"testing"

	"go-hrm/internal/identity"
	"go-hrm/internal/user"
	usererrors "go-hrm/internal/user/errors"
	userMock "go-hrm/internal/user/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	svc := user.NewService(repo)
	ctx := context.Background()

	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, id).Return(&user.User{
			ID: id, Username: "jane.doe", Email: "jane.doe@wealthzonegroupai.com", Role: identity.RoleTL, IsActive: true,
		}, nil)

		resp, err := svc.GetByID(ctx, id.String())
		assert.NoError(t, err)
		assert.Equal(t, "tl", resp.Role)
		assert.Equal(t, "jane.doe", resp.Username)
	})

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})
}

func TestService_ToggleStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	svc := user.NewService(repo)
	ctx := context.Background()

	target := &user.User{ID: uuid.New(), IsActive: true}

	t.Run("deactivate other user", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
		repo.EXPECT().SetActive(ctx, target.ID, false).Return(nil)

		assert.NoError(t, svc.ToggleStatus(ctx, uuid.NewString(), target.ID.String(), false))
	})

	t.Run("cannot deactivate self", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

		err := svc.ToggleStatus(ctx, target.ID.String(), target.ID.String(), false)
		assert.ErrorIs(t, err, usererrors.ErrCannotDeactivateSelf)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	svc := user.NewService(repo)
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("OldPass#1"), bcrypt.MinCost)
	u := &user.User{ID: uuid.New(), Password: string(hash)}

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, u.ID).Return(u, nil)
		repo.EXPECT().UpdatePassword(ctx, u.ID, gomock.Any()).Return(nil)

		err := svc.ChangePassword(ctx, u.ID.String(), user.ChangePasswordRequest{
			CurrentPassword: "OldPass#1", NewPassword: "NewPass#2", ConfirmPassword: "NewPass#2",
		})
		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, u.ID).Return(u, nil)

		err := svc.ChangePassword(ctx, u.ID.String(), user.ChangePasswordRequest{
			CurrentPassword: "bad", NewPassword: "NewPass#2", ConfirmPassword: "NewPass#2",
		})
		assert.ErrorIs(t, err, usererrors.ErrWrongPassword)
	})

	t.Run("weak new password", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, u.ID).Return(u, nil)

		err := svc.ChangePassword(ctx, u.ID.String(), user.ChangePasswordRequest{
			CurrentPassword: "OldPass#1", NewPassword: "short", ConfirmPassword: "short",
		})
		assert.Error(t, err)
	})
}

func TestValidatePassword(t *testing.T) {
	assert.Empty(t, user.ValidatePassword("Str0ng#Pass"))
	assert.Len(t, user.ValidatePassword("abc"), 4)
	assert.Equal(t, []string{"Password must contain at least one special character."}, user.ValidatePassword("Abcdefg1"))
}

func TestUser_HasUsablePassword(t *testing.T) {
	assert.False(t, user.User{Password: "!unusable"}.HasUsablePassword())
	assert.False(t, user.User{}.HasUsablePassword())
	assert.True(t, user.User{Password: "$2a$10$abc"}.HasUsablePassword())
}
