package insights

import (
	"sort"
	"strings"

	"rescue-dog-favorites/internal/domain/dogs"
)

const (
	maxCommonTraits = 3
	maxHiddenGems   = 3
)

type family string

const (
	familyEnergetic   family = "energetic"
	familySocial      family = "social"
	familyCalm        family = "calm"
	familyLoyal       family = "loyal"
	familySmart       family = "smart"
	familyIndependent family = "independent"
)

// orden de desempate entre familias con el mismo puntaje
var familyOrder = []family{familyEnergetic, familySocial, familyCalm, familyLoyal, familySmart, familyIndependent}

var familyLabels = map[family]string{
	familyEnergetic:   "high-energy",
	familySocial:      "social",
	familyCalm:        "calm",
	familyLoyal:       "loyal",
	familySmart:       "clever",
	familyIndependent: "independent",
}

var traitFamilies = map[string]family{
	"energetic": familyEnergetic, "playful": familyEnergetic, "active": familyEnergetic,
	"athletic": familyEnergetic, "lively": familyEnergetic, "bouncy": familyEnergetic,
	"high-energy": familyEnergetic,

	"friendly": familySocial, "social": familySocial, "affectionate": familySocial,
	"outgoing": familySocial, "sociable": familySocial, "loving": familySocial,
	"cuddly": familySocial,

	"calm": familyCalm, "gentle": familyCalm, "relaxed": familyCalm,
	"laid-back": familyCalm, "mellow": familyCalm, "easygoing": familyCalm,

	"loyal": familyLoyal, "protective": familyLoyal, "devoted": familyLoyal,

	"smart": familySmart, "intelligent": familySmart, "curious": familySmart,
	"clever": familySmart, "eager": familySmart,

	"independent": familyIndependent, "shy": familyIndependent,
	"reserved": familyIndependent, "cautious": familyIndependent,
}

// ComputeEnhanced agrega los datos del profiler. Solo cuentan los perros que lo traen;
// si ninguno lo trae devuelve Enhanced{HasData:false}.
func ComputeEnhanced(list []dogs.Dog) Enhanced {
	profiled := make([]profiledDog, 0, len(list))
	for _, d := range list {
		if p, ok := d.Profiler.Get(); ok {
			profiled = append(profiled, profiledDog{dog: d, data: p})
		}
	}
	if len(profiled) == 0 {
		return Enhanced{}
	}

	return Enhanced{
		HasData:                true,
		PersonalityPattern:     personalityPattern(profiled),
		LifestyleCompatibility: lifestyleMessages(profiled),
		ExperienceRequirement:  experienceRequirement(profiled),
		HiddenGems:             hiddenGems(profiled),
		CompatibilityMatrix:    compatibilityMatrix(profiled),
	}
}

type profiledDog struct {
	dog  dogs.Dog
	data dogs.ProfilerData
}

func personalityPattern(list []profiledDog) *PersonalityPattern {
	counts := map[string]int{}
	for _, p := range list {
		seen := map[string]bool{}
		for _, trait := range p.data.PersonalityTraits {
			trait = strings.ToLower(strings.TrimSpace(trait))
			if trait == "" || seen[trait] {
				continue
			}
			seen[trait] = true
			counts[trait]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	traits := make([]string, 0, len(counts))
	for t := range counts {
		traits = append(traits, t)
	}
	sort.Slice(traits, func(i, j int) bool {
		if counts[traits[i]] != counts[traits[j]] {
			return counts[traits[i]] > counts[traits[j]]
		}
		return traits[i] < traits[j]
	})
	if len(traits) > maxCommonTraits {
		traits = traits[:maxCommonTraits]
	}

	return &PersonalityPattern{
		CommonTraits: traits,
		Theme:        theme(counts),
	}
}

func theme(counts map[string]int) string {
	scores := map[family]int{}
	for trait, n := range counts {
		if f, ok := traitFamilies[trait]; ok {
			scores[f] += n
		}
	}

	ranked := make([]family, 0, len(scores))
	for _, f := range familyOrder {
		if scores[f] > 0 {
			ranked = append(ranked, f)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	switch len(ranked) {
	case 0:
		return "Unique personalities"
	case 1:
		return capitalize(familyLabels[ranked[0]])
	default:
		return capitalize(familyLabels[ranked[0]]) + " and " + familyLabels[ranked[1]]
	}
}

func lifestyleMessages(list []profiledDog) []string {
	var high, low, energyKnown int
	var easy, challenging, trainKnown int

	for _, p := range list {
		switch p.data.EnergyLevel {
		case dogs.EnergyHigh, dogs.EnergyVeryHigh:
			high++
			energyKnown++
		case dogs.EnergyLow:
			low++
			energyKnown++
		case dogs.EnergyMedium:
			energyKnown++
		}

		switch p.data.Trainability {
		case dogs.TrainabilityEasy:
			easy++
			trainKnown++
		case dogs.TrainabilityChallenging:
			challenging++
			trainKnown++
		case dogs.TrainabilityModerate:
			trainKnown++
		}
	}

	out := make([]string, 0, 2)
	switch {
	case energyKnown == 0:
	case high*2 > energyKnown:
		out = append(out, "Your favorites thrive with an active lifestyle and daily exercise")
	case low*2 > energyKnown:
		out = append(out, "Your favorites would suit a calmer, relaxed home")
	default:
		out = append(out, "Energy levels vary, so plan for a mix of active and quiet time")
	}

	switch {
	case trainKnown == 0:
	case challenging > 0:
		out = append(out, "Some of your favorites will need patient, consistent training")
	case easy == trainKnown:
		out = append(out, "Quick learners: training should be a breeze")
	default:
		out = append(out, "Expect a moderate training commitment")
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// experienceRequirement toma el nivel más exigente presente (monótono:
// agregar un perro nunca baja la recomendación).
func experienceRequirement(list []profiledDog) string {
	max := -1
	for _, p := range list {
		if r := p.data.ExperienceLevel.Rank(); r > max {
			max = r
		}
	}

	switch max {
	case 0:
		return "Great for first-time owners"
	case 1:
		return "Some dog experience recommended"
	case 2:
		return "Experienced owners recommended"
	default:
		return ""
	}
}

func hiddenGems(list []profiledDog) []HiddenGem {
	var out []HiddenGem
	for _, p := range list {
		if p.data.UniqueQuirk == "" {
			continue
		}
		out = append(out, HiddenGem{
			DogID:   p.dog.ID,
			DogName: p.dog.Name,
			Quirk:   p.data.UniqueQuirk,
		})
		if len(out) == maxHiddenGems {
			break
		}
	}
	return out
}

func compatibilityMatrix(list []profiledDog) *CompatibilityMatrix {
	m := &CompatibilityMatrix{}
	for _, p := range list {
		c := p.data.Compatibility
		m.Dogs.add(c.For(dogs.CategoryDogs))
		m.Cats.add(c.For(dogs.CategoryCats))
		m.Children.add(c.For(dogs.CategoryChildren))
	}
	return m
}

func (c *CompatibilityCounts) add(v dogs.Compat) {
	switch v {
	case dogs.CompatYes:
		c.Yes++
	case dogs.CompatNo:
		c.No++
	case dogs.CompatMaybe:
		c.Maybe++
	default:
		c.Unknown++
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
