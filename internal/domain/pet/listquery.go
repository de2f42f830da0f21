package pet

// ListQuery is the resolved, validated query for listing pets. Text filters
// are case-insensitive substring matches; species and status are exact.
// Absent (empty) filters impose no constraint; all provided filters combine
// with logical AND.
type ListQuery struct {
	Name                string
	Breed               string
	ShelterCity         string
	ShelterState        string
	ShelterNeighborhood string
	Species             string
	Status              string

	Page    int
	PerPage int
	SortBy  string
	Order   string // "asc" or "desc"
}

// Offset returns the row offset for the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// SortableColumns is the allow-list of columns a listing may sort by. The
// values double as the physical column names, so anything outside this list
// never reaches the query builder.
var SortableColumns = map[string]bool{
	"name":         true,
	"species":      true,
	"breed":        true,
	"age_years":    true,
	"shelter_city": true,
	"created_at":   true,
	"updated_at":   true,
}
