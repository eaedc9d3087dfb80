package service

import (
	"context"
	"errors"
	"testing"

	"finlit_academy/internal/model"
	"finlit_academy/internal/repository"
	"finlit_academy/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_bossService_ListBosses(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	difficulties := []model.BossDifficulty{model.DifficultyMedium, model.DifficultyEasy, model.DifficultyHard, model.DifficultyEasy}
	var ids []uint
	for _, d := range difficulties {
		boss := createBoss(t, db, e2eBoss)
		require.NoError(t, db.Model(boss).Update("difficulty", d).Error)
		ids = append(ids, boss.ID)
	}

	svc := NewBossService(db, repository.NewGormBossRepository())
	bosses, err := svc.ListBosses(ctx)
	require.NoError(t, err)
	require.Len(t, bosses, 4)

	// difficulty は文字列順 (EASY < HARD < MEDIUM)、同じなら id 順
	var got []uint
	for _, b := range bosses {
		got = append(got, b.ID)
	}
	assert.Equal(t, []uint{ids[1], ids[3], ids[2], ids[0]}, got)
}

func Test_bossService_GetBoss(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setupMock func(repo *mocks.BossRepository)
		wantErr   error
		wantBoss  bool
	}{
		{
			name: "正常系: 取得成功",
			setupMock: func(repo *mocks.BossRepository) {
				repo.On("FindByID", ctx, mock.Anything, uint(7)).Return(&model.Boss{ID: 7, Name: "Tax Titan"}, nil).Once()
			},
			wantBoss: true,
		},
		{
			name: "異常系: 存在しない",
			setupMock: func(repo *mocks.BossRepository) {
				repo.On("FindByID", ctx, mock.Anything, uint(7)).Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: DBエラー",
			setupMock: func(repo *mocks.BossRepository) {
				repo.On("FindByID", ctx, mock.Anything, uint(7)).Return(nil, errors.New("connection reset")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewBossRepository(t)
			tt.setupMock(repo)
			svc := NewBossService(nil, repo)

			boss, err := svc.GetBoss(ctx, 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, boss)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Tax Titan", boss.Name)
		})
	}
}
