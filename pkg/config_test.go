package mgenergy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationJSON(t *testing.T) {
	data := []byte(`{
		"distance_offset": 1.25,
		"mapping": "db",
		"db_driver": "sqlite",
		"dsn": "calibration.db",
		"run_number": 42,
		"filters": [{"parameter": "bus", "min": 0, "max": 1, "enabled": true}]
	}`)

	var config Configuration
	require.NoError(t, json.Unmarshal(data, &config))
	assert.Equal(t, 1.25, config.DistanceOffset)
	assert.Equal(t, MappingDatabase, config.Mapping)
	assert.Equal(t, DriverSQLite, config.DBDriver)
	assert.Equal(t, 42, config.RunNumber)
	assert.Equal(t, []Filter{{Parameter: "bus", Min: 0, Max: 1, Enabled: true}}, config.Filters)
}

func TestDefaultConstants(t *testing.T) {
	c := DefaultConstants()
	assert.Equal(t, Voxel{Bus: 1, GridCh: 88, WireCh: 40}, c.Origin)
	assert.Equal(t, 1.674927351e-27, c.NeutronMass)
	assert.InEpsilon(t, 6.24150913e21, c.JouleToMeV, 1e-15)
	assert.Equal(t, 0.6e-3, c.TimeOffset)
	assert.Equal(t, 1.0/14, c.PeriodTime)
	assert.Equal(t, 62.5e-9, c.TickSeconds)
}
