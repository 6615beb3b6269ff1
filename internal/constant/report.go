package constant

// Damage categories, in the order the dashboard lists them.
const (
	CategoryJalan    = "jalan"
	CategoryJembatan = "jembatan"
	CategoryDrainase = "drainase"
	CategoryLampu    = "lampu"
	CategoryLainnya  = "lainnya"
)

var Categories = []string{
	CategoryJalan,
	CategoryJembatan,
	CategoryDrainase,
	CategoryLampu,
	CategoryLainnya,
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Draft defaults. The coordinates are the Yogyakarta city center, used until
// the reporter samples a real position.
const (
	DefaultCategory  = CategoryJalan
	DefaultLatitude  = -7.7956
	DefaultLongitude = 110.3695
)

// Redis channel announcing that the report collection changed. Every listener
// reloads the full collection; the payload carries no meaning.
const ReportsChangedChannel = "reports:changed"
