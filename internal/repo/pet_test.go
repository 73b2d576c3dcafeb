package repo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickshouse/Chao-Bot-sub000/internal/constant"
	"github.com/nickshouse/Chao-Bot-sub000/internal/model"
)

func TestMain(m *testing.M) {
	if err := Migrate(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestSaveSnapshotIsDatedUpsert(t *testing.T) {
	ctx := context.Background()
	petRepo := NewPetRepo()
	today := time.Now().Format(constant.DateLayout)

	rec := &model.PetRecord{OwnerID: "repo-owner-1", PetName: "Chacron", BellyTicks: 5}
	require.NoError(t, petRepo.SaveSnapshot(ctx, rec))
	require.NotZero(t, rec.ID)
	assert.Equal(t, today, rec.SnapshotDate)
	firstID := rec.ID

	// Second write of the same day updates in place, no new row.
	rec.BellyTicks = 3
	require.NoError(t, petRepo.SaveSnapshot(ctx, rec))
	assert.Equal(t, firstID, rec.ID)

	var count int64
	db.Model(&model.PetRecord{}).
		Where("owner_id = ? AND pet_name = ?", "repo-owner-1", "Chacron").Count(&count)
	assert.Equal(t, int64(1), count)

	got, err := petRepo.FindLatest(ctx, "repo-owner-1", "Chacron")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.BellyTicks)
}

func TestSaveSnapshotRollsToNewRowOnNewDay(t *testing.T) {
	ctx := context.Background()
	petRepo := NewPetRepo()

	rec := &model.PetRecord{OwnerID: "repo-owner-2", PetName: "Omochao", HPTicks: 10}
	require.NoError(t, petRepo.SaveSnapshot(ctx, rec))
	firstID := rec.ID

	// A record loaded with yesterday's date gets a fresh row; the old one
	// stays untouched as history.
	rec.SnapshotDate = time.Now().AddDate(0, 0, -1).Format(constant.DateLayout)
	db.Save(rec)
	rec.HPTicks = 7
	require.NoError(t, petRepo.SaveSnapshot(ctx, rec))
	assert.NotEqual(t, firstID, rec.ID)

	got, err := petRepo.FindLatest(ctx, "repo-owner-2", "Omochao")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, int64(7), got.HPTicks)
}

func TestFindLatestMissingPetIsNilNil(t *testing.T) {
	got, err := NewPetRepo().FindLatest(context.Background(), "nobody", "nothing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindAllLatestOneRowPerPet(t *testing.T) {
	ctx := context.Background()
	petRepo := NewPetRepo()

	older := &model.PetRecord{OwnerID: "repo-owner-3", PetName: "Chaozilla", EnergyTicks: 9}
	require.NoError(t, petRepo.SaveSnapshot(ctx, older))
	older.SnapshotDate = time.Now().AddDate(0, 0, -1).Format(constant.DateLayout)
	db.Save(older)

	newer := &model.PetRecord{OwnerID: "repo-owner-3", PetName: "Chaozilla", EnergyTicks: 4}
	require.NoError(t, petRepo.SaveSnapshot(ctx, newer))

	recs, err := petRepo.FindAllLatest(ctx)
	require.NoError(t, err)

	seen := 0
	for _, r := range recs {
		if r.OwnerID == "repo-owner-3" && r.PetName == "Chaozilla" {
			seen++
			assert.Equal(t, newer.ID, r.ID)
			assert.Equal(t, int64(4), r.EnergyTicks)
		}
	}
	assert.Equal(t, 1, seen)
}

func TestFindLatestByOwnerScopesToOwner(t *testing.T) {
	ctx := context.Background()
	petRepo := NewPetRepo()

	require.NoError(t, petRepo.SaveSnapshot(ctx, &model.PetRecord{OwnerID: "repo-owner-4", PetName: "Alpha"}))
	require.NoError(t, petRepo.SaveSnapshot(ctx, &model.PetRecord{OwnerID: "repo-owner-4", PetName: "Beta"}))
	require.NoError(t, petRepo.SaveSnapshot(ctx, &model.PetRecord{OwnerID: "repo-owner-5", PetName: "Gamma"}))

	recs, err := petRepo.FindLatestByOwner(ctx, "repo-owner-4")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	for _, r := range recs {
		assert.Equal(t, "repo-owner-4", r.OwnerID)
	}
}

func TestAdjustItemRejectsNegativeStacks(t *testing.T) {
	ctx := context.Background()
	invRepo := NewInventoryRepo()

	require.NoError(t, invRepo.AdjustItemWithTx(ctx, db, "repo-owner-6", constant.ItemChaoEgg, 2))
	item, err := invRepo.FindItem(ctx, "repo-owner-6", constant.ItemChaoEgg)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, int64(2), item.Quantity)

	err = invRepo.AdjustItemWithTx(ctx, db, "repo-owner-6", constant.ItemChaoEgg, -3)
	require.Error(t, err)

	// Quantity untouched after the rejected adjustment.
	item, err = invRepo.FindItem(ctx, "repo-owner-6", constant.ItemChaoEgg)
	require.NoError(t, err)
	assert.Equal(t, int64(2), item.Quantity)
}

func TestAdjustRingsUpsertsWallet(t *testing.T) {
	ctx := context.Background()
	invRepo := NewInventoryRepo()

	require.NoError(t, invRepo.AdjustRingsWithTx(ctx, db, "repo-owner-7", 50))
	require.NoError(t, invRepo.AdjustRingsWithTx(ctx, db, "repo-owner-7", -20))

	w, err := invRepo.FindWallet(ctx, "repo-owner-7")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, int64(30), w.Rings)

	require.Error(t, invRepo.AdjustRingsWithTx(ctx, db, "repo-owner-7", -31))
}
