package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"go-trainer-booking/config"
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
	mock_repository "go-trainer-booking/internal/domain/repository/mocks"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthUsecase(t *testing.T, ctrl *gomock.Controller, bootstrapKey string) (AuthUsecase, *mock_repository.MockUserRepository) {
	t.Helper()
	repo := mock_repository.NewMockUserRepository(ctrl)
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{}
	cfg.App.BootstrapKey = bootstrapKey

	// Bootstrap never touches the token services, so they stay nil here.
	return NewAuthUsecase(newTestDB(t), log, cfg, repo, nil, nil), repo
}

func bootstrapRequest() *dto.BootstrapAdminRequest {
	return &dto.BootstrapAdminRequest{
		Email:    "admin@example.com",
		Password: "super-secret-1",
		Name:     "Admin",
	}
}

func TestAuthUsecase_Bootstrap(t *testing.T) {
	t.Run("rejects a wrong key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newAuthUsecase(t, ctrl, "deploy-key")

		_, err := uc.Bootstrap(context.Background(), "wrong", bootstrapRequest())
		if !errors.Is(err, ErrBootstrapForbidden) {
			t.Fatalf("expected ErrBootstrapForbidden, got %v", err)
		}
	})

	t.Run("rejects everything when no key is configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newAuthUsecase(t, ctrl, "")

		_, err := uc.Bootstrap(context.Background(), "", bootstrapRequest())
		if !errors.Is(err, ErrBootstrapForbidden) {
			t.Fatalf("expected ErrBootstrapForbidden, got %v", err)
		}
	})

	t.Run("creates the admin with a hashed password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newAuthUsecase(t, ctrl, "deploy-key")

		repo.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *gorm.DB, user *entity.User) error {
				if user.Password == "super-secret-1" {
					t.Fatal("expected the password to be hashed")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("super-secret-1")); err != nil {
					t.Fatalf("stored hash does not match the password: %v", err)
				}
				if !user.IsActive {
					t.Fatal("expected the admin to be active")
				}
				user.ID = uuid.New()
				return nil
			})

		resp, err := uc.Bootstrap(context.Background(), "deploy-key", bootstrapRequest())
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if resp.Email != "admin@example.com" || resp.FullName != "Admin" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})

	t.Run("resets an existing admin instead of failing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newAuthUsecase(t, ctrl, "deploy-key")

		oldHash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("failed to hash fixture password: %v", err)
		}
		existing := &entity.User{
			ID:       uuid.New(),
			Email:    "admin@example.com",
			Password: string(oldHash),
			FullName: "Old Name",
			IsActive: false,
		}

		repo.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *gorm.DB, user *entity.User) error {
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("super-secret-1")); err != nil {
					t.Fatalf("expected the password to be replaced: %v", err)
				}
				if !user.IsActive {
					t.Fatal("expected the account to be reactivated")
				}
				if user.FullName != "Admin" {
					t.Fatalf("expected the name to be updated, got %q", user.FullName)
				}
				return nil
			})

		if _, err := uc.Bootstrap(context.Background(), "deploy-key", bootstrapRequest()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})
}
