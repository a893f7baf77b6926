package schema

// Custom string types for type safety.
type (
	// Category classifies a commit by its subject prefix.
	Category string

	// TimePeriod is a named slice of the day.
	TimePeriod string

	// Trend describes the direction of commit velocity.
	Trend string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// All commit categories supported. Every commit belongs to exactly one.
const (
	CategoryFix      Category = "fix"
	CategoryFeat     Category = "feat"
	CategoryRefactor Category = "refactor"
	CategoryDocs     Category = "docs"
	CategoryTest     Category = "test"
	CategoryChore    Category = "chore"
	CategoryOther    Category = "other" // default when no prefix matches
)

// All time-of-day periods supported.
const (
	PeriodMorning   TimePeriod = "morning"   // [6,12)
	PeriodAfternoon TimePeriod = "afternoon" // [12,17)
	PeriodEvening   TimePeriod = "evening"   // [17,21)
	PeriodNight     TimePeriod = "night"     // everything else
)

// All velocity trends supported.
const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllCategories lists every category in stable render order.
var AllCategories = []Category{
	CategoryFix, CategoryFeat, CategoryRefactor, CategoryDocs,
	CategoryTest, CategoryChore, CategoryOther,
}

// AllPeriods lists every time-of-day period in stable render order.
var AllPeriods = []TimePeriod{PeriodMorning, PeriodAfternoon, PeriodEvening, PeriodNight}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
