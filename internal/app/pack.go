package app

import (
	"context"
	"math/rand"

	"sticker_album/internal/models"
)

// PackSize is the fixed number of stickers drawn per pack.
const PackSize = 5

// rarityWeights holds the relative sampling weight of each rarity tier.
// They are relative weights over the full catalog, not percentages of a
// depleting pool; draws are independent and may repeat the same sticker.
var rarityWeights = map[models.Rarity]int{
	models.RarityCommon:    50,
	models.RarityUncommon:  30,
	models.RarityRare:      15,
	models.RarityEpic:      4,
	models.RarityLegendary: 1,
}

// poolWeight sums the sampling weights of the whole catalog.
func poolWeight(stickers []models.Sticker) int {
	total := 0
	for _, sticker := range stickers {
		total += rarityWeights[sticker.Rarity]
	}
	return total
}

// pickSticker maps a roll in [0, poolWeight) onto a sticker by walking the
// cumulative weights. Stickers with unknown rarity carry weight 0 and can
// never be picked.
func pickSticker(stickers []models.Sticker, roll int) models.Sticker {
	for _, sticker := range stickers {
		roll -= rarityWeights[sticker.Rarity]
		if roll < 0 {
			return sticker
		}
	}
	// Unreachable for a valid roll; return the last sticker as a safety net.
	return stickers[len(stickers)-1]
}

// OpenPack draws PackSize stickers from the rarity-weighted catalog and
// records them in the caller's collection. Newness is judged against the
// collection state before the pack started: a sticker owned beforehand is
// never new, and a previously unowned sticker drawn several times in the
// same pack reports WasNew on its first occurrence only.
func (app *App) OpenPack(ctx context.Context, email string) ([]models.PackDraw, error) {
	identity, err := app.identity(ctx, email)
	if err != nil {
		return nil, err
	}

	stickers, err := app.db.ListStickers(ctx)
	if err != nil {
		return nil, err
	}
	total := poolWeight(stickers)
	if len(stickers) == 0 || total == 0 {
		return nil, ErrNoStickersAvailable
	}

	drawn := make([]models.Sticker, PackSize)
	drawnIDs := make([]string, PackSize)
	for i := 0; i < PackSize; i++ {
		drawn[i] = pickSticker(stickers, rand.Intn(total))
		drawnIDs[i] = drawn[i].ID
	}

	// Snapshot quantities before applying any of this pack's mutations.
	prior, err := app.db.GetOwnedQuantities(ctx, identity.ID, drawnIDs)
	if err != nil {
		return nil, err
	}

	if err := app.db.AddStickers(ctx, identity.ID, drawnIDs); err != nil {
		return nil, err
	}

	results := make([]models.PackDraw, PackSize)
	seen := make(map[string]bool, PackSize)
	for i, sticker := range drawn {
		results[i] = models.PackDraw{Sticker: sticker, WasNew: prior[sticker.ID] == 0 && !seen[sticker.ID]}
		seen[sticker.ID] = true
	}

	return results, nil
}
