package models

// DerivedRecord pairs a fill-up with the metrics computed from its
// chronological predecessor on the same vehicle.
//
// UnitPrice is self-contained: it is set whenever Liters > 0.
// DistanceSinceLastKm, ConsumptionLPer100Km and CostPerKm are set only
// when a preceding record of the same vehicle exists and its odometer
// reading is strictly lower than this one's. A nil pointer means "no
// data", which is distinct from a zero value: a record whose odometer
// went backwards contributes no distance metrics but still contributes
// its unit price.
type DerivedRecord struct {
	Record FuelRecord

	UnitPrice            *float64
	DistanceSinceLastKm  *float64
	ConsumptionLPer100Km *float64
	CostPerKm            *float64
}
