package ticketdraft

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-console/internal/entities"
)

func persistedTicket() entities.Ticket {
	return entities.Ticket{
		ID:           "T-100",
		SiteID:       "S1",
		LocationName: null.StringFrom("Server Room"),
		AssetType:    null.StringFrom("Network"),
		DeviceType:   null.StringFrom("Switch"),
		AssetID:      null.StringFrom("A-42"),
		Category:     "Hardware",
		Title:        "Switch port flapping",
		Description:  "Port 12 drops link every few minutes.",
		Impact:       4,
		Urgency:      3,
	}
}

func TestHydrationRestoresFullChainWithoutResets(t *testing.T) {
	f := NewFormFromTicket(persistedTicket())
	require.Equal(t, Hydrating, f.Phase())

	d := f.Draft()
	assert.Equal(t, "S1", d.SiteID)
	assert.Equal(t, "Server Room", d.LocationName)
	assert.Equal(t, "Network", d.AssetType)
	assert.Equal(t, "Switch", d.DeviceType)
	assert.Equal(t, "A-42", d.AssetID)
}

func TestHydratingSetsDoNotCascade(t *testing.T) {
	f := NewFormFromTicket(persistedTicket())
	// A load-for-edit pass re-applies levels top-down; lower levels must
	// survive.
	f.SetSite("S1")
	f.SetLocation("Server Room")

	d := f.Draft()
	assert.Equal(t, "A-42", d.AssetID)
	assert.Equal(t, "Switch", d.DeviceType)
}

func TestInteractiveSiteChangeClearsDependents(t *testing.T) {
	f := NewFormFromTicket(persistedTicket())
	f.FinishHydration()
	require.Equal(t, Interactive, f.Phase())

	f.SetSite("S2")
	d := f.Draft()
	assert.Equal(t, "S2", d.SiteID)
	assert.Empty(t, d.LocationName)
	assert.Empty(t, d.AssetType)
	assert.Empty(t, d.DeviceType)
	assert.Empty(t, d.AssetID)
}

func TestInteractiveMidLevelChangeClearsOnlyLowerLevels(t *testing.T) {
	f := NewFormFromTicket(persistedTicket())
	f.FinishHydration()

	f.SetAssetType("Compute")
	d := f.Draft()
	assert.Equal(t, "S1", d.SiteID)
	assert.Equal(t, "Server Room", d.LocationName)
	assert.Equal(t, "Compute", d.AssetType)
	assert.Empty(t, d.DeviceType)
	assert.Empty(t, d.AssetID)
}

func TestFinishHydrationHappensOnce(t *testing.T) {
	f := NewFormFromTicket(persistedTicket())
	f.FinishHydration()
	f.FinishHydration()
	assert.Equal(t, Interactive, f.Phase())
}

func TestValidateBlocksIncompleteDraft(t *testing.T) {
	f := NewForm()
	f.SetDetails("Hi", "")
	err := f.Validate()
	require.Error(t, err)
}

func TestValidateAcceptsCompleteDraft(t *testing.T) {
	f := NewForm()
	f.SetSite("S1")
	f.SetCategory("Hardware", "")
	f.SetDetails("Printer offline", "The second-floor printer does not respond.")
	f.SetSeverity(2, 3)
	assert.NoError(t, f.Validate())
}

func TestValidateRejectsOutOfRangeSeverity(t *testing.T) {
	f := NewForm()
	f.SetSite("S1")
	f.SetCategory("Hardware", "")
	f.SetDetails("Printer offline", "No response.")
	f.SetSeverity(0, 6)
	assert.Error(t, f.Validate())
}
