package insights

import (
	"fmt"
	"sort"

	"rescue-dog-favorites/internal/domain/dogs"
)

const (
	unknownLabel = "Unknown"
	mixedSizes   = "Mixed sizes"
	variousAges  = "Various ages"
)

// Basic calcula los agregados simples. Sobre 0 o 1 perro el resultado no es
// significativo; el llamador solo lo pide con 2 o más.
func Basic(list []dogs.Dog) Result {
	return Result{
		TopOrganization: topOrganization(list),
		SizePreference:  sizePreference(list),
		AgeRange:        ageRange(list),
		CommonTraits:    commonTraits(list),
		TotalCount:      len(list),
		HasEnhancedData: false,
	}
}

func topOrganization(list []dogs.Dog) string {
	counts := map[string]int{}
	for _, d := range list {
		name := d.Organization.Name
		if name == "" {
			name = unknownLabel
		}
		counts[name]++
	}

	name, n := mostFrequent(counts)
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%s (%d dogs)", name, n)
}

func sizePreference(list []dogs.Dog) string {
	counts := map[string]int{}
	for _, d := range list {
		size := d.DisplaySize()
		if size == "" {
			size = unknownLabel
		}
		counts[size]++
	}

	size, n := mostFrequent(counts)
	// preferencia fuerte: n >= ceil(0.6 * total), en aritmética entera
	// "Unknown" dominante no es una preferencia
	if n == 0 || size == unknownLabel || n*10 < len(list)*6 {
		return mixedSizes
	}
	return fmt.Sprintf("Mostly %s dogs", size)
}

func ageRange(list []dogs.Dog) string {
	lo, hi, found := 0, 0, false
	for _, d := range list {
		m, ok := d.AgeInMonths()
		if !ok {
			continue
		}
		if !found || m < lo {
			lo = m
		}
		if !found || m > hi {
			hi = m
		}
		found = true
	}
	if !found {
		return variousAges
	}

	from, to := FormatAge(lo), FormatAge(hi)
	if from == to {
		return from
	}
	return from + " – " + to
}

// FormatAge muestra meses por debajo del año y años completos a partir de ahí.
func FormatAge(months int) string {
	if months < 12 {
		return plural(months, "month")
	}
	return plural(months/12, "year")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func commonTraits(list []dogs.Dog) []string {
	out := make([]string, 0, len(dogs.Categories))
	if len(list) == 0 {
		return out
	}
	for _, cat := range dogs.Categories {
		all := true
		for _, d := range list {
			if d.Compatibility.For(cat) != dogs.CompatYes {
				all = false
				break
			}
		}
		if all {
			out = append(out, "All good with "+string(cat))
		}
	}
	return out
}

// mostFrequent devuelve la clave con más ocurrencias; empate => orden alfabético.
func mostFrequent(counts map[string]int) (string, int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best, bestN := "", 0
	for _, k := range keys {
		if counts[k] > bestN {
			best, bestN = k, counts[k]
		}
	}
	return best, bestN
}
