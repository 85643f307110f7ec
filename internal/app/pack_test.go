package app

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sticker_album/internal/config"
	"sticker_album/internal/models"
	"sticker_album/internal/pkg/logger"
	"sticker_album/internal/storage/mocks"
)

func TestPoolWeight(t *testing.T) {
	stickers := []models.Sticker{
		{ID: "s1", Rarity: models.RarityCommon},
		{ID: "s2", Rarity: models.RarityUncommon},
		{ID: "s3", Rarity: models.RarityRare},
		{ID: "s4", Rarity: models.RarityEpic},
		{ID: "s5", Rarity: models.RarityLegendary},
	}
	assert.Equal(t, 100, poolWeight(stickers))

	// Unknown rarities carry weight 0 and do not enlarge the pool.
	stickers = append(stickers, models.Sticker{ID: "s6", Rarity: models.Rarity("mythic")})
	assert.Equal(t, 100, poolWeight(stickers))
}

func TestPickStickerCoversWeightsExactly(t *testing.T) {
	stickers := []models.Sticker{
		{ID: "common", Rarity: models.RarityCommon},
		{ID: "uncommon", Rarity: models.RarityUncommon},
		{ID: "rare", Rarity: models.RarityRare},
		{ID: "epic", Rarity: models.RarityEpic},
		{ID: "legendary", Rarity: models.RarityLegendary},
	}
	total := poolWeight(stickers)
	require.Equal(t, 100, total)

	// Walking every roll in [0, total) must hit each sticker exactly
	// as many times as its weight.
	counts := make(map[string]int)
	for roll := 0; roll < total; roll++ {
		counts[pickSticker(stickers, roll).ID]++
	}

	assert.Equal(t, 50, counts["common"])
	assert.Equal(t, 30, counts["uncommon"])
	assert.Equal(t, 15, counts["rare"])
	assert.Equal(t, 4, counts["epic"])
	assert.Equal(t, 1, counts["legendary"])
}

func TestPickStickerSkipsZeroWeightEntries(t *testing.T) {
	stickers := []models.Sticker{
		{ID: "unknown", Rarity: models.Rarity("mythic")},
		{ID: "common", Rarity: models.RarityCommon},
	}
	for roll := 0; roll < poolWeight(stickers); roll++ {
		assert.Equal(t, "common", pickSticker(stickers, roll).ID)
	}
}

func TestOpenPack(t *testing.T) {
	l, err := logger.CreateLogger(config.LogLevel)
	require.NoError(t, err)

	collector := &models.Identity{ID: "u1", Email: "collector@example.com", Username: "collector_one"}

	t.Run("empty catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockDB := mocks.NewMockStorage(ctrl)
		appInstance := NewApp(mockDB, l)

		mockDB.EXPECT().GetIdentityByEmail(gomock.Any(), collector.Email).Return(collector, nil)
		mockDB.EXPECT().ListStickers(gomock.Any()).Return([]models.Sticker{}, nil)

		_, err := appInstance.OpenPack(context.Background(), collector.Email)
		assert.ErrorIs(t, err, ErrNoStickersAvailable)
	})

	t.Run("unowned sticker is new on its first copy only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockDB := mocks.NewMockStorage(ctrl)
		appInstance := NewApp(mockDB, l)

		// A single-sticker catalog makes every draw deterministic.
		catalog := []models.Sticker{{ID: "s1", AlbumID: "a1", Number: 1, Rarity: models.RarityCommon}}

		mockDB.EXPECT().GetIdentityByEmail(gomock.Any(), collector.Email).Return(collector, nil)
		mockDB.EXPECT().ListStickers(gomock.Any()).Return(catalog, nil)
		mockDB.EXPECT().GetOwnedQuantities(gomock.Any(), collector.ID, gomock.Any()).
			Return(map[string]int{}, nil)
		mockDB.EXPECT().AddStickers(gomock.Any(), collector.ID, gomock.Any()).Return(nil)

		draws, err := appInstance.OpenPack(context.Background(), collector.Email)
		require.NoError(t, err)
		require.Len(t, draws, PackSize)

		assert.True(t, draws[0].WasNew)
		for _, draw := range draws[1:] {
			assert.Equal(t, "s1", draw.Sticker.ID)
			assert.False(t, draw.WasNew)
		}
	})

	t.Run("previously owned sticker is never new", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockDB := mocks.NewMockStorage(ctrl)
		appInstance := NewApp(mockDB, l)

		catalog := []models.Sticker{{ID: "s1", AlbumID: "a1", Number: 1, Rarity: models.RarityCommon}}

		mockDB.EXPECT().GetIdentityByEmail(gomock.Any(), collector.Email).Return(collector, nil)
		mockDB.EXPECT().ListStickers(gomock.Any()).Return(catalog, nil)
		mockDB.EXPECT().GetOwnedQuantities(gomock.Any(), collector.ID, gomock.Any()).
			Return(map[string]int{"s1": 3}, nil)
		mockDB.EXPECT().AddStickers(gomock.Any(), collector.ID, gomock.Any()).Return(nil)

		draws, err := appInstance.OpenPack(context.Background(), collector.Email)
		require.NoError(t, err)
		for _, draw := range draws {
			assert.False(t, draw.WasNew)
		}
	})
}
