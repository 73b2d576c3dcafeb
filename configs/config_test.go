package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChaoSectionCarriesGameplayTuning(t *testing.T) {
	config := GetGlobalConfig()
	require.NotNil(t, config)

	chao := config.ChaoConfig
	assert.Equal(t, 60, chao.CocoonSeconds)

	// Vital decay table and hatch defaults are config-driven, with the
	// built-in table as fallback.
	assert.Equal(t, 180, chao.BellyDecayMinutes)
	assert.Equal(t, 240, chao.HappinessDecayMinutes)
	assert.Equal(t, 240, chao.EnergyDecayMinutes)
	assert.Equal(t, 720, chao.HPDecayMinutes)
	assert.Equal(t, 5, chao.HatchBelly)
	assert.Equal(t, 10, chao.HatchHappiness)
	assert.Equal(t, 10, chao.HatchEnergy)
	assert.Equal(t, 10, chao.HatchHP)
}

func TestAppAndSchedulerDefaults(t *testing.T) {
	config := GetGlobalConfig()
	assert.Equal(t, "chao_bot", config.AppConfig.AppName)
	assert.Equal(t, 60, config.ScheduleConfig.TickSecond)
}
