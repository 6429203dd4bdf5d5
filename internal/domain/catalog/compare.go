package catalog

import (
	"errors"
	"strings"

	"rescue-dog-favorites/internal/domain/dogs"
	"rescue-dog-favorites/internal/domain/insights"
)

const MaxCompare = 3

var ErrCompareSelection = errors.New("compare needs 2 to 3 dogs from the current view")

const unknownValue = "Unknown"

type ComparedDog struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	PrimaryImageURL string `json:"primary_image_url,omitempty"`
}

// CompareRow es un atributo con un valor por perro, en el mismo orden que Dogs.
type CompareRow struct {
	Label   string   `json:"label"`
	Values  []string `json:"values"`
	Differs bool     `json:"differs"`
}

type Comparison struct {
	Dogs []ComparedDog `json:"dogs"`
	Rows []CompareRow  `json:"rows"`
}

type rowDef struct {
	label string
	value func(dogs.Dog) string
}

var compareRows = []rowDef{
	{"Breed", func(d dogs.Dog) string { return d.DisplayBreed() }},
	{"Age", ageValue},
	{"Sex", func(d dogs.Dog) string { return d.Sex }},
	{"Size", func(d dogs.Dog) string { return d.DisplaySize() }},
	{"Organization", func(d dogs.Dog) string { return d.Organization.Name }},
	{"Location", locationValue},
	{"Good with dogs", compatValue(dogs.CategoryDogs)},
	{"Good with cats", compatValue(dogs.CategoryCats)},
	{"Good with children", compatValue(dogs.CategoryChildren)},
	{"Energy level", profilerValue(func(p dogs.ProfilerData) string { return humanize(string(p.EnergyLevel)) })},
	{"Trainability", profilerValue(func(p dogs.ProfilerData) string { return humanize(string(p.Trainability)) })},
	{"Experience needed", profilerValue(func(p dogs.ProfilerData) string { return humanize(string(p.ExperienceLevel)) })},
	{"Personality", profilerValue(func(p dogs.ProfilerData) string { return strings.Join(p.PersonalityTraits, ", ") })},
	{"Unique quirk", profilerValue(func(p dogs.ProfilerData) string { return p.UniqueQuirk })},
}

// Compare arma la tabla lado a lado. Los ids tienen que estar en la vista
// filtrada; el orden de salida es el de ids.
func Compare(filtered []dogs.Dog, ids []int64) (Comparison, error) {
	byID := make(map[int64]dogs.Dog, len(filtered))
	for _, d := range filtered {
		byID[d.ID] = d
	}

	seen := map[int64]struct{}{}
	selected := make([]dogs.Dog, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		d, ok := byID[id]
		if !ok {
			return Comparison{}, ErrCompareSelection
		}
		selected = append(selected, d)
	}
	if len(selected) < minForInsights || len(selected) > MaxCompare {
		return Comparison{}, ErrCompareSelection
	}

	out := Comparison{
		Dogs: make([]ComparedDog, 0, len(selected)),
		Rows: make([]CompareRow, 0, len(compareRows)),
	}
	for _, d := range selected {
		out.Dogs = append(out.Dogs, ComparedDog{
			ID:              d.ID,
			Name:            d.Name,
			Slug:            d.Slug,
			PrimaryImageURL: d.PrimaryImageURL,
		})
	}

	for _, def := range compareRows {
		row := CompareRow{Label: def.label, Values: make([]string, 0, len(selected))}
		for _, d := range selected {
			v := strings.TrimSpace(def.value(d))
			if v == "" {
				v = unknownValue
			}
			row.Values = append(row.Values, v)
		}
		for _, v := range row.Values[1:] {
			if v != row.Values[0] {
				row.Differs = true
				break
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

func ageValue(d dogs.Dog) string {
	if d.AgeText != "" {
		return d.AgeText
	}
	if m, ok := d.AgeInMonths(); ok {
		return insights.FormatAge(m)
	}
	return ""
}

func locationValue(d dogs.Dog) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{d.Organization.City, d.Organization.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func compatValue(cat dogs.Category) func(dogs.Dog) string {
	return func(d dogs.Dog) string {
		c := d.Compatibility.For(cat)
		if c == dogs.CompatUnknown {
			// el profiler a veces sabe lo que properties no dice
			if p, ok := d.Profiler.Get(); ok {
				c = p.Compatibility.For(cat)
			}
		}
		if c == dogs.CompatUnknown {
			return ""
		}
		return humanize(string(c))
	}
}

func profilerValue(fn func(dogs.ProfilerData) string) func(dogs.Dog) string {
	return func(d dogs.Dog) string {
		p, ok := d.Profiler.Get()
		if !ok {
			return ""
		}
		return fn(p)
	}
}

// humanize: "first_time_ok" -> "First time ok".
func humanize(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
