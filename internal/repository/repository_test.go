package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trift/moneycheck/internal/models"
)

func TestGetData_DefaultsToZero(t *testing.T) {
	repo := NewRepository()
	id := repo.CreateSession()

	assert.Equal(t, models.InputRecord{}, repo.GetData(id))
	assert.Equal(t, models.InputRecord{}, repo.GetData("missing"))
}

func TestSaveData_RoundTrip(t *testing.T) {
	repo := NewRepository()
	id := repo.CreateSession()

	want := models.InputRecord{
		LaborIncome:    300000,
		PassiveIncome:  100000,
		FixedCost:      100000,
		Waste:          40000,
		SelfInvestment: 60000,
		Asset:          5000000,
		Debt:           500000,
	}
	for _, field := range models.Fields {
		v, ok := want.Get(field)
		require.True(t, ok)
		require.NoError(t, repo.SaveData(id, field, v))
	}

	assert.Equal(t, want, repo.GetData(id))
}

func TestSaveData_LastWriteWins(t *testing.T) {
	repo := NewRepository()
	id := repo.CreateSession()

	require.NoError(t, repo.SaveData(id, models.FieldWaste, 10))
	require.NoError(t, repo.SaveData(id, models.FieldWaste, 20))

	assert.Equal(t, 20.0, repo.GetData(id).Waste)
}

func TestSaveData_Errors(t *testing.T) {
	repo := NewRepository()
	id := repo.CreateSession()

	assert.ErrorIs(t, repo.SaveData(id, "salary", 1), ErrUnknownField)
	assert.ErrorIs(t, repo.SaveData("missing", models.FieldDebt, 1), ErrSessionNotFound)
}

func TestReplaceAndClearData(t *testing.T) {
	repo := NewRepository()
	id := repo.CreateSession()

	require.NoError(t, repo.ReplaceData(id, models.InputRecord{Asset: 10, Debt: 5}))
	assert.Equal(t, 10.0, repo.GetData(id).Asset)

	repo.ClearData(id)
	assert.Equal(t, models.InputRecord{}, repo.GetData(id))
	assert.ErrorIs(t, repo.ReplaceData("missing", models.InputRecord{}), ErrSessionNotFound)
}

func TestPremiumAccess(t *testing.T) {
	repo := NewRepository()
	id := repo.CreateSession()

	assert.False(t, repo.HasPremiumAccess(id))
	require.NoError(t, repo.SavePremiumAccess(id))
	assert.True(t, repo.HasPremiumAccess(id))

	repo.ClearPremiumAccess(id)
	assert.False(t, repo.HasPremiumAccess(id))

	assert.ErrorIs(t, repo.SavePremiumAccess("missing"), ErrSessionNotFound)
	assert.False(t, repo.HasPremiumAccess("missing"))
}

func TestSweep(t *testing.T) {
	repo := NewRepository()
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	stale := repo.CreateSession()
	now = now.Add(90 * time.Minute)
	fresh := repo.CreateSession()
	now = now.Add(45 * time.Minute)

	removed := repo.Sweep(time.Hour)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, repo.Count())
	_, err := repo.FindSession(stale)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = repo.FindSession(fresh)
	assert.NoError(t, err)
}

func TestTouchKeepsSessionAlive(t *testing.T) {
	repo := NewRepository()
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	id := repo.CreateSession()
	now = now.Add(50 * time.Minute)
	require.True(t, repo.Touch(id))
	now = now.Add(50 * time.Minute)

	assert.Zero(t, repo.Sweep(time.Hour))
	assert.False(t, repo.Touch("missing"))
}
