package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceByID(t *testing.T) {
	svc := ServiceByID("full-grooming")
	if assert.NotNil(t, svc) {
		assert.Equal(t, "Full Grooming Package", svc.Name)
		assert.Equal(t, 1699, svc.BasePrice)
	}

	assert.Nil(t, ServiceByID("no-such-service"))
	assert.Nil(t, ServiceByID(""))
}

func TestPetSizeByID(t *testing.T) {
	size := PetSizeByID("large")
	if assert.NotNil(t, size) {
		assert.Equal(t, 1.6, size.Multiplier)
	}

	assert.Nil(t, PetSizeByID("giant"))
}

func TestPetSizeMultipliersAtLeastOne(t *testing.T) {
	for _, size := range PetSizes {
		assert.GreaterOrEqual(t, size.Multiplier, 1.0, "size=%s", size.ID)
	}
}

func TestValidTimeSlot(t *testing.T) {
	assert.True(t, ValidTimeSlot("09:00 AM"))
	assert.True(t, ValidTimeSlot("06:00 PM"))
	assert.False(t, ValidTimeSlot("01:00 PM")) // lunch hour, not bookable
	assert.False(t, ValidTimeSlot("9:00 AM"))
	assert.False(t, ValidTimeSlot(""))
}

func TestServiceIconString(t *testing.T) {
	for _, svc := range Services {
		assert.NotEqual(t, "unknown", svc.Icon.String(), "service=%s", svc.ID)
	}
	assert.Equal(t, "droplets", IconDroplets.String())
	assert.Equal(t, "shield", IconShield.String())
}

func TestAddonFlags(t *testing.T) {
	addons := 0
	for _, svc := range Services {
		if svc.IsAddon {
			addons++
		}
	}
	assert.Equal(t, 2, addons)
}
