package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDAcceptsNumbersAndStrings(t *testing.T) {
	var branches []Branch
	err := json.Unmarshal([]byte(`[{"id":5,"nombre":"Centro"},{"id":"7","nombre":"Norte"}]`), &branches)
	require.NoError(t, err)
	assert.Equal(t, ID("5"), branches[0].ID)
	assert.Equal(t, ID("7"), branches[1].ID)
}

func TestSensorBranchRefForms(t *testing.T) {
	payload := `[
		{"id":12,"nombre":"C1","sucursal":5,"firebase_path":"dev-12","activa":true},
		{"id":13,"nombre":"C2","sucursal":{"id":5,"nombre":"Centro"},"firebase_path":"dev-13"}
	]`
	var sensors []Sensor
	require.NoError(t, json.Unmarshal([]byte(payload), &sensors))

	assert.Equal(t, RefID("5"), sensors[0].BranchID)
	assert.Equal(t, RefID("5"), sensors[1].BranchID)
	assert.Equal(t, "dev-13", sensors[1].FeedPath)
	assert.True(t, sensors[0].Active)
	assert.False(t, sensors[1].Active)
}

func TestIDRejectsGarbage(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &id))
}
