package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
	mock_repository "go-trainer-booking/internal/domain/repository/mocks"

	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

func newSettingUsecase(t *testing.T, ctrl *gomock.Controller) (SettingUsecase, *mock_repository.MockSettingRepository) {
	t.Helper()
	repo := mock_repository.NewMockSettingRepository(ctrl)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewSettingUsecase(log, repo), repo
}

func strPtr(v string) *string { return &v }

func TestSettingUsecase_Update(t *testing.T) {
	t.Run("absent fields keep their stored value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newSettingUsecase(t, ctrl)

		repo.EXPECT().GetOrCreate(gomock.Any()).Return(&entity.Setting{
			ID:        1,
			SiteTitle: "Trainer Site",
			HeroTitle: "Train with me",
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := uc.Update(context.Background(), &dto.UpdateSettingRequest{
			HeroTitle: strPtr("New hero"),
		})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if resp.HeroTitle != "New hero" {
			t.Fatalf("expected updated hero title, got %q", resp.HeroTitle)
		}
		if resp.SiteTitle != "Trainer Site" {
			t.Fatalf("expected site title untouched, got %q", resp.SiteTitle)
		}
	})

	t.Run("truncates aboutMe to the column width", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newSettingUsecase(t, ctrl)

		repo.EXPECT().GetOrCreate(gomock.Any()).Return(&entity.Setting{ID: 1}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, setting *entity.Setting) error {
				if got := len([]rune(setting.AboutMe)); got != aboutMeMaxLen {
					t.Fatalf("expected aboutMe truncated to %d runes, got %d", aboutMeMaxLen, got)
				}
				return nil
			})

		long := strings.Repeat("ã", aboutMeMaxLen+50)
		if _, err := uc.Update(context.Background(), &dto.UpdateSettingRequest{AboutMe: strPtr(long)}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("short aboutMe is stored as is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newSettingUsecase(t, ctrl)

		repo.EXPECT().GetOrCreate(gomock.Any()).Return(&entity.Setting{ID: 1}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := uc.Update(context.Background(), &dto.UpdateSettingRequest{AboutMe: strPtr("short bio")})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if resp.AboutMe != "short bio" {
			t.Fatalf("expected aboutMe unchanged, got %q", resp.AboutMe)
		}
	})
}
