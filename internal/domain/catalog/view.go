package catalog

import (
	"errors"

	"rescue-dog-favorites/internal/domain/dogs"
	"rescue-dog-favorites/internal/domain/insights"
)

var (
	ErrInvalidFilter   = errors.New("invalid filter")
	ErrSuperseded      = errors.New("view superseded by a newer request")
	ErrDogsUnavailable = errors.New("favorite dogs could not be loaded")
)

// State distingue los casos que la UI muestra distinto; nunca se mezclan.
type State string

const (
	StateEmpty       State = "empty"       // sin favoritos: onboarding
	StateError       State = "error"       // falló la carga: banner con retry
	StateUnavailable State = "unavailable" // hay favoritos pero ninguno existe ya
	StateNoMatches   State = "no_matches"  // el filtro dejó 0
	StateReady       State = "ready"
)

// minForInsights es también el mínimo para comparar.
const minForInsights = 2

type View struct {
	State         State            `json:"state"`
	Generation    uint64           `json:"generation"`
	Filter        Filter           `json:"filter"`
	FavoriteCount int              `json:"favorite_count"`
	TotalCount    int              `json:"total_count"`
	FilteredCount int              `json:"filtered_count"`
	Dogs          []dogs.Dog       `json:"dogs"`
	Insights      *insights.Result `json:"insights,omitempty"`
	CanCompare    bool             `json:"can_compare"`
	FilterOptions FilterOptions    `json:"filter_options"`
}

// build arma la vista a partir del resultado del fetch. No hace I/O.
func build(favCount int, hydrated []dogs.Dog, fetchErr error, f Filter, calc *insights.Calculator) View {
	v := View{
		Filter:        f,
		FavoriteCount: favCount,
		Dogs:          []dogs.Dog{},
	}

	switch {
	case favCount == 0:
		v.State = StateEmpty
		return v
	case fetchErr != nil:
		v.State = StateError
		return v
	case len(hydrated) == 0:
		v.State = StateUnavailable
		return v
	}

	filtered := Apply(hydrated, f)
	v.TotalCount = len(hydrated)
	v.FilteredCount = len(filtered)
	v.Dogs = filtered
	v.FilterOptions = OptionsFor(hydrated)

	if len(filtered) == 0 {
		v.State = StateNoMatches
		return v
	}

	v.State = StateReady
	if len(filtered) >= minForInsights {
		res := calc.Compute(filtered)
		v.Insights = &res
		v.CanCompare = true
	}
	return v
}
