// Package pricing derives booking totals from the static catalog.
package pricing

import (
	"math"

	"dogstudio/internal/catalog"
)

// ComputePrice returns the total price in whole rupees for a service and pet
// size: basePrice * multiplier rounded half-up. It returns 0 when either id
// is unresolved; callers must treat that as an incomplete selection, not a
// free booking.
func ComputePrice(serviceID, petSizeID string) int {
	svc := catalog.ServiceByID(serviceID)
	size := catalog.PetSizeByID(petSizeID)
	if svc == nil || size == nil {
		return 0
	}
	return int(math.Round(float64(svc.BasePrice) * size.Multiplier))
}
