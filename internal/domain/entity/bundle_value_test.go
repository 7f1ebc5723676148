package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recargas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del descriptor de valor de ofertas: acepta las dos formas históricas
// del catálogo (string plano u objeto con selector) y arma el texto amigable.
// ──────────────────────────────────────────────────────────────────────────────

func TestBundleValue_UnmarshalStringPlano(t *testing.T) {
	var v entity.BundleValue
	require.NoError(t, json.Unmarshal([]byte(`"MTN Mashup"`), &v))

	assert.Equal(t, "MTN Mashup", v.Label)
	assert.False(t, v.IsSelectable(), "Un label plano no alcanza para llamar al vendor")
}

func TestBundleValue_UnmarshalObjetoPackage(t *testing.T) {
	var v entity.BundleValue
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"volume":2000}`), &v))

	assert.EqualValues(t, 42, v.PackageID)
	assert.EqualValues(t, 2000, v.VolumeMB)
	assert.True(t, v.HasPackage())
	assert.True(t, v.IsSelectable())
}

func TestBundleValue_UnmarshalObjetoNetwork(t *testing.T) {
	var v entity.BundleValue
	require.NoError(t, json.Unmarshal([]byte(`{"network_id":3,"volume":5000}`), &v))

	assert.True(t, v.HasNetwork())
	assert.False(t, v.HasPackage())
	assert.True(t, v.IsSelectable())
}

func TestBundleValue_UnmarshalInvalido(t *testing.T) {
	var v entity.BundleValue
	err := json.Unmarshal([]byte(`[1,2]`), &v)
	assert.Error(t, err, "Un array no es forma válida de BundleValue")
}

func TestBundleValue_MarshalRoundTripLabel(t *testing.T) {
	v := entity.BundleValue{Label: "AirtelTigo Bonus"}
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `"AirtelTigo Bonus"`, string(data),
		"Un descriptor solo-label se serializa como string plano")
}

func TestBundleValue_MarshalObjeto(t *testing.T) {
	v := entity.BundleValue{PackageID: 7, VolumeMB: 1000}
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"volume":1000}`, string(data))
}

func TestBundleValue_DisplayText(t *testing.T) {
	casos := []struct {
		nombre   string
		v        entity.BundleValue
		esperado string
	}{
		{"solo label", entity.BundleValue{Label: "Mashup"}, "Mashup"},
		{"vacío", entity.BundleValue{}, "-"},
		{"volumen GB exacto", entity.BundleValue{NetworkID: 1, VolumeMB: 1000}, "1GB"},
		{"volumen fraccional", entity.BundleValue{NetworkID: 1, VolumeMB: 1500}, "1.50GB"},
		{"volumen en MB", entity.BundleValue{NetworkID: 1, VolumeMB: 500}, "500MB"},
		{"con package id", entity.BundleValue{PackageID: 10, VolumeMB: 10000}, "10GB (Pkg 10)"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, c.v.DisplayText())
		})
	}
}

func TestFormatVolume(t *testing.T) {
	assert.Equal(t, "1GB", entity.FormatVolume(1000))
	assert.Equal(t, "1.50GB", entity.FormatVolume(1500))
	assert.Equal(t, "500MB", entity.FormatVolume(500))
	assert.Equal(t, "-", entity.FormatVolume(0))
}
