package catalog

import (
	"net/url"
	"sort"
	"strings"

	"rescue-dog-favorites/internal/domain/dogs"
)

type AgeBucket string

const (
	AgePuppy  AgeBucket = "puppy"  // < 12 meses
	AgeYoung  AgeBucket = "young"  // 12-35
	AgeAdult  AgeBucket = "adult"  // 36-95
	AgeSenior AgeBucket = "senior" // >= 96
)

var ageBuckets = []AgeBucket{AgePuppy, AgeYoung, AgeAdult, AgeSenior}

func BucketFor(months int) AgeBucket {
	switch {
	case months < 12:
		return AgePuppy
	case months < 36:
		return AgeYoung
	case months < 96:
		return AgeAdult
	default:
		return AgeSenior
	}
}

func ParseAgeBucket(s string) (AgeBucket, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, b := range ageBuckets {
		if string(b) == s {
			return b, true
		}
	}
	return "", false
}

// Filter aplica igualdad case-insensitive; un campo vacío no filtra.
type Filter struct {
	Breed string    `json:"breed,omitempty"`
	Size  string    `json:"size,omitempty"`
	Sex   string    `json:"sex,omitempty"`
	Age   AgeBucket `json:"age,omitempty"`
}

// FilterFromQuery lee breed, size, sex y age. Un age desconocido es error de input.
func FilterFromQuery(q url.Values) (Filter, error) {
	f := Filter{
		Breed: strings.TrimSpace(q.Get("breed")),
		Size:  strings.TrimSpace(q.Get("size")),
		Sex:   strings.TrimSpace(q.Get("sex")),
	}
	if raw := strings.TrimSpace(q.Get("age")); raw != "" {
		b, ok := ParseAgeBucket(raw)
		if !ok {
			return Filter{}, ErrInvalidFilter
		}
		f.Age = b
	}
	return f, nil
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

func (f Filter) Match(d dogs.Dog) bool {
	if f.Breed != "" && !equalsAny(f.Breed, d.DisplayBreed(), d.Breed) {
		return false
	}
	if f.Size != "" && !equalsAny(f.Size, d.DisplaySize(), d.Size) {
		return false
	}
	if f.Sex != "" && !strings.EqualFold(f.Sex, strings.TrimSpace(d.Sex)) {
		return false
	}
	if f.Age != "" {
		m, ok := d.AgeInMonths()
		if !ok || BucketFor(m) != f.Age {
			return false
		}
	}
	return true
}

// Apply devuelve un slice nuevo; conserva el orden de entrada.
func Apply(list []dogs.Dog, f Filter) []dogs.Dog {
	out := make([]dogs.Dog, 0, len(list))
	for _, d := range list {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	return out
}

// FilterOptions son los valores disponibles en el set hidratado (sin filtrar),
// para armar los selects de la UI.
type FilterOptions struct {
	Breeds []string    `json:"breeds"`
	Sizes  []string    `json:"sizes"`
	Sexes  []string    `json:"sexes"`
	Ages   []AgeBucket `json:"ages"`
}

func OptionsFor(list []dogs.Dog) FilterOptions {
	breeds := map[string]struct{}{}
	sizes := map[string]struct{}{}
	sexes := map[string]struct{}{}
	ages := map[AgeBucket]struct{}{}

	for _, d := range list {
		if b := strings.TrimSpace(d.DisplayBreed()); b != "" {
			breeds[b] = struct{}{}
		}
		if s := strings.TrimSpace(d.DisplaySize()); s != "" {
			sizes[s] = struct{}{}
		}
		if s := strings.TrimSpace(d.Sex); s != "" {
			sexes[s] = struct{}{}
		}
		if m, ok := d.AgeInMonths(); ok {
			ages[BucketFor(m)] = struct{}{}
		}
	}

	opts := FilterOptions{
		Breeds: sortedKeys(breeds),
		Sizes:  sortedKeys(sizes),
		Sexes:  sortedKeys(sexes),
		Ages:   make([]AgeBucket, 0, len(ages)),
	}
	for _, b := range ageBuckets {
		if _, ok := ages[b]; ok {
			opts.Ages = append(opts.Ages, b)
		}
	}
	return opts
}

func equalsAny(want string, values ...string) bool {
	for _, v := range values {
		if v != "" && strings.EqualFold(want, strings.TrimSpace(v)) {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
