package domain

// Profile describes the resident the automation adapts to.
// Fields are read-only after construction.
type Profile struct {
	Name          string
	PreferredTemp float64
	BedtimeHour   int
}
