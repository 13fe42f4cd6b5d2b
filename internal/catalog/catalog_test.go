package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelForKnownStatus(t *testing.T) {
	meta := LabelFor(StatusInstalled)
	assert.Equal(t, "Installed", meta.Label)
	assert.Equal(t, "success", meta.ColorTier)
}

func TestLabelForUnknownStatusFallsBack(t *testing.T) {
	meta := LabelFor("SomeFutureStatus")
	assert.Equal(t, "SomeFutureStatus", meta.Label)
	assert.Equal(t, "secondary", meta.ColorTier)
	assert.Equal(t, "clock", meta.IconKey)
}

func TestAssetCatalogIsIndependent(t *testing.T) {
	meta := AssetLabelFor(AssetPassiveDevice)
	assert.Equal(t, "Passive Device", meta.Label)

	// Workflow codes must not leak into the asset catalog.
	fallback := AssetLabelFor(StatusInstalled)
	assert.Equal(t, "secondary", fallback.ColorTier)
	assert.Equal(t, StatusInstalled, fallback.Label)
}

func TestCriticalityLabels(t *testing.T) {
	assert.Equal(t, "Low", CriticalityLabel(1))
	assert.Equal(t, "Medium", CriticalityLabel(2))
	assert.Equal(t, "High", CriticalityLabel(3))
	assert.Equal(t, "Medium", CriticalityLabel(0))
	assert.Equal(t, "Medium", CriticalityLabel(7))
}

func TestNormalizeCriticality(t *testing.T) {
	assert.Equal(t, 3, NormalizeCriticality(3))
	assert.Equal(t, DefaultCriticality, NormalizeCriticality(0))
	assert.Equal(t, DefaultCriticality, NormalizeCriticality(-1))
}
