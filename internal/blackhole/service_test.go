package blackhole

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ListClampsQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().List(gomock.Any(), Query{Limit: MaxLimit, Offset: 0}).Return(nil, nil)

	items, err := svc.List(context.Background(), Query{Limit: 500, Offset: -3})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestService_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("empty catalog gets seeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)
		svc := NewService(repo)

		repo.EXPECT().Count(gomock.Any()).Return(0, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(BlackHole{}, nil).Times(2)

		n, err := svc.Seed(ctx, DefaultSeeds(), true)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("non empty catalog is left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)
		svc := NewService(repo)

		repo.EXPECT().Count(gomock.Any()).Return(5, nil)

		n, err := svc.Seed(ctx, DefaultSeeds(), true)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("forced seed stops at first failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)
		svc := NewService(repo)

		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(BlackHole{ID: 1}, nil),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(BlackHole{}, errors.New("disk full")),
		)

		n, err := svc.Seed(ctx, DefaultSeeds(), false)
		assert.ErrorContains(t, err, "disk full")
		assert.Equal(t, 1, n)
	})
}

func TestDefaultSeeds(t *testing.T) {
	seeds := DefaultSeeds()
	require.Len(t, seeds, 2)
	assert.Equal(t, "Стрелец A*", seeds[0].Name)
	assert.Equal(t, 4.3e6, *seeds[0].MassSolar)
	assert.Equal(t, "M87*", seeds[1].Name)
}
