package insights

import (
	"encoding/json"
	"testing"

	"rescue-dog-favorites/internal/domain/dogs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func months(n int) *int { return &n }

func sized(sizes ...string) []dogs.Dog {
	out := make([]dogs.Dog, 0, len(sizes))
	for i, s := range sizes {
		out = append(out, dogs.Dog{ID: int64(i + 1), StandardizedSize: s})
	}
	return out
}

func TestBasic_SizePreference_Threshold(t *testing.T) {
	cases := []struct {
		sizes []string
		want  string
	}{
		{[]string{"Large", "Large", "Medium"}, "Mostly Large dogs"},
		{[]string{"Large", "Medium"}, "Mixed sizes"},
		{[]string{"Large", "Large", "Large", "Medium", "Small"}, "Mostly Large dogs"},
		{[]string{"Large", "Large", "Medium", "Medium", "Small"}, "Mixed sizes"},
		{[]string{"", "", "Small"}, "Mixed sizes"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Basic(sized(tc.sizes...)).SizePreference, "sizes %v", tc.sizes)
	}
}

func TestBasic_SizeFallsBackToRawSize(t *testing.T) {
	list := []dogs.Dog{{Size: "Small"}, {Size: "Small"}}
	assert.Equal(t, "Mostly Small dogs", Basic(list).SizePreference)
}

func TestBasic_AgeRange(t *testing.T) {
	cases := []struct {
		name string
		list []dogs.Dog
		want string
	}{
		{"same value collapses", []dogs.Dog{{AgeMonths: months(24)}, {AgeMonths: months(24)}}, "2 years"},
		{"months to years", []dogs.Dog{{AgeMonths: months(6)}, {AgeMonths: months(36)}}, "6 months – 3 years"},
		{"singular", []dogs.Dog{{AgeMonths: months(1)}, {AgeMonths: months(12)}}, "1 month – 1 year"},
		{"same formatted", []dogs.Dog{{AgeMonths: months(24)}, {AgeMonths: months(30)}}, "2 years"},
		{"no ages", []dogs.Dog{{}, {}}, "Various ages"},
		{"skips missing", []dogs.Dog{{}, {AgeMinMonths: months(48), AgeMaxMonths: months(72)}, {AgeMonths: months(3)}}, "3 months – 5 years"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Basic(tc.list).AgeRange)
		})
	}
}

func TestBasic_TopOrganization_TieBreakAlphabetical(t *testing.T) {
	list := []dogs.Dog{
		{Organization: dogs.Organization{Name: "Zeta Rescue"}},
		{Organization: dogs.Organization{Name: "Alpha Rescue"}},
		{Organization: dogs.Organization{Name: "Zeta Rescue"}},
		{Organization: dogs.Organization{Name: "Alpha Rescue"}},
	}
	assert.Equal(t, "Alpha Rescue (2 dogs)", Basic(list).TopOrganization)
}

func TestBasic_TopOrganization_UnknownFallback(t *testing.T) {
	list := []dogs.Dog{{}, {}, {Organization: dogs.Organization{Name: "Paws"}}}
	assert.Equal(t, "Unknown (2 dogs)", Basic(list).TopOrganization)
}

func TestBasic_CommonTraits(t *testing.T) {
	// la normalización de señales ocurre al ingerir: bool y "yes" son lo mismo
	a := dogs.Dog{ID: 1, Compatibility: dogs.CompatibilityFromProperties(map[string]any{"good_with_dogs": true, "good_with_cats": true})}
	b := dogs.Dog{ID: 2, Compatibility: dogs.CompatibilityFromProperties(map[string]any{"good_with_dogs": "yes", "good_with_list": []any{"children"}})}

	res := Basic([]dogs.Dog{a, b})
	assert.Equal(t, []string{"All good with dogs"}, res.CommonTraits)
	assert.Equal(t, 2, res.TotalCount)
	assert.False(t, res.HasEnhancedData)
}

func TestBasic_EmptyList(t *testing.T) {
	res := Basic(nil)
	assert.Equal(t, "", res.TopOrganization)
	assert.Equal(t, "Mixed sizes", res.SizePreference)
	assert.Equal(t, "Various ages", res.AgeRange)
	assert.Empty(t, res.CommonTraits)
}

func profiled(id int64, name string, p dogs.ProfilerData) dogs.Dog {
	return dogs.Dog{ID: id, Name: name, Profiler: dogs.WithProfiler(p)}
}

func TestCompute_NoProfilerData(t *testing.T) {
	res := NewCalculator(nil).Compute([]dogs.Dog{{ID: 1}, {ID: 2, Profiler: dogs.Profiler{Malformed: true}}})

	assert.False(t, res.HasEnhancedData)
	assert.Nil(t, res.PersonalityPattern)
	assert.Nil(t, res.LifestyleCompatibility)
	assert.Empty(t, res.ExperienceRequirement)
	assert.Nil(t, res.HiddenGems)
	assert.Nil(t, res.CompatibilityMatrix)

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "personality_pattern")
	assert.NotContains(t, string(b), "compatibility_matrix")
}

func TestCompute_Enhanced(t *testing.T) {
	list := []dogs.Dog{
		profiled(1, "Milo", dogs.ProfilerData{
			PersonalityTraits: []string{"playful", "friendly", "energetic"},
			EnergyLevel:       dogs.EnergyHigh,
			Trainability:      dogs.TrainabilityEasy,
			ExperienceLevel:   dogs.ExperienceFirstTimeOK,
			Compatibility:     dogs.Compatibility{Dogs: dogs.CompatYes, Cats: dogs.CompatNo},
			UniqueQuirk:       "Sleeps upside down",
		}),
		profiled(2, "Luna", dogs.ProfilerData{
			PersonalityTraits: []string{"friendly", "playful", "affectionate"},
			EnergyLevel:       dogs.EnergyVeryHigh,
			Trainability:      dogs.TrainabilityEasy,
			ExperienceLevel:   dogs.ExperienceSome,
			Compatibility:     dogs.Compatibility{Dogs: dogs.CompatYes, Cats: dogs.CompatMaybe, Children: dogs.CompatYes},
		}),
		{ID: 3, Name: "Rex"},
	}

	res := NewCalculator(nil).Compute(list)

	assert.True(t, res.HasEnhancedData)
	assert.Equal(t, 3, res.TotalCount)

	require.NotNil(t, res.PersonalityPattern)
	assert.Equal(t, []string{"friendly", "playful", "affectionate"}, res.PersonalityPattern.CommonTraits)
	assert.Equal(t, "High-energy and social", res.PersonalityPattern.Theme)

	assert.Equal(t, []string{
		"Your favorites thrive with an active lifestyle and daily exercise",
		"Quick learners: training should be a breeze",
	}, res.LifestyleCompatibility)
	assert.Equal(t, "Some dog experience recommended", res.ExperienceRequirement)
	assert.Equal(t, []HiddenGem{{DogID: 1, DogName: "Milo", Quirk: "Sleeps upside down"}}, res.HiddenGems)

	require.NotNil(t, res.CompatibilityMatrix)
	assert.Equal(t, CompatibilityCounts{Yes: 2}, res.CompatibilityMatrix.Dogs)
	assert.Equal(t, CompatibilityCounts{No: 1, Maybe: 1}, res.CompatibilityMatrix.Cats)
	assert.Equal(t, CompatibilityCounts{Yes: 1, Unknown: 1}, res.CompatibilityMatrix.Children)
}

func TestCompute_HasEnhancedDataEvenWithEmptySubResults(t *testing.T) {
	res := NewCalculator(nil).Compute([]dogs.Dog{profiled(1, "A", dogs.ProfilerData{}), {ID: 2}})
	assert.True(t, res.HasEnhancedData)
	assert.Nil(t, res.PersonalityPattern)
	assert.Nil(t, res.LifestyleCompatibility)
	assert.Empty(t, res.ExperienceRequirement)
}

func TestCompute_EnhancedPanicDegradesToBasic(t *testing.T) {
	c := NewCalculator(nil)
	c.enhance = func([]dogs.Dog) Enhanced { panic("bad payload") }

	list := []dogs.Dog{profiled(1, "A", dogs.ProfilerData{}), profiled(2, "B", dogs.ProfilerData{})}
	var res Result
	require.NotPanics(t, func() { res = c.Compute(list) })

	assert.False(t, res.HasEnhancedData)
	assert.Equal(t, 2, res.TotalCount)
	assert.Equal(t, "Various ages", res.AgeRange)
}

func TestExperienceRequirement_IsMonotonic(t *testing.T) {
	levels := []dogs.ExperienceLevel{dogs.ExperienceFirstTimeOK, dogs.ExperienceSome, dogs.ExperienceExperienced}
	rank := map[string]int{
		"Great for first-time owners":     0,
		"Some dog experience recommended": 1,
		"Experienced owners recommended":  2,
	}

	for _, base := range levels {
		set := []profiledDog{{data: dogs.ProfilerData{ExperienceLevel: base}}}
		before := rank[experienceRequirement(set)]
		for _, added := range levels {
			after := rank[experienceRequirement(append(set, profiledDog{data: dogs.ProfilerData{ExperienceLevel: added}}))]
			assert.GreaterOrEqual(t, after, before, "base=%s added=%s", base, added)
		}
	}

	// un solo "experienced" ya descarta a primerizos
	set := []profiledDog{
		{data: dogs.ProfilerData{ExperienceLevel: dogs.ExperienceFirstTimeOK}},
		{data: dogs.ProfilerData{ExperienceLevel: dogs.ExperienceExperienced}},
	}
	assert.Equal(t, "Experienced owners recommended", experienceRequirement(set))
}

func TestHiddenGems_Capped(t *testing.T) {
	var list []profiledDog
	for i := 0; i < 5; i++ {
		list = append(list, profiledDog{dog: dogs.Dog{ID: int64(i)}, data: dogs.ProfilerData{UniqueQuirk: "quirk"}})
	}
	assert.Len(t, hiddenGems(list), maxHiddenGems)
}

func TestLifestyleMessages(t *testing.T) {
	calm := []profiledDog{
		{data: dogs.ProfilerData{EnergyLevel: dogs.EnergyLow, Trainability: dogs.TrainabilityChallenging}},
		{data: dogs.ProfilerData{EnergyLevel: dogs.EnergyLow, Trainability: dogs.TrainabilityEasy}},
		{data: dogs.ProfilerData{EnergyLevel: dogs.EnergyHigh}},
	}
	assert.Equal(t, []string{
		"Your favorites would suit a calmer, relaxed home",
		"Some of your favorites will need patient, consistent training",
	}, lifestyleMessages(calm))

	mixed := []profiledDog{
		{data: dogs.ProfilerData{EnergyLevel: dogs.EnergyLow, Trainability: dogs.TrainabilityModerate}},
		{data: dogs.ProfilerData{EnergyLevel: dogs.EnergyHigh, Trainability: dogs.TrainabilityEasy}},
	}
	assert.Equal(t, []string{
		"Energy levels vary, so plan for a mix of active and quiet time",
		"Expect a moderate training commitment",
	}, lifestyleMessages(mixed))
}

func TestTheme(t *testing.T) {
	assert.Equal(t, "Unique personalities", theme(map[string]int{"quirky": 2}))
	assert.Equal(t, "Calm", theme(map[string]int{"gentle": 1, "calm": 2}))
	assert.Equal(t, "Loyal and clever", theme(map[string]int{"protective": 3, "smart": 1}))
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "0 months", FormatAge(0))
	assert.Equal(t, "11 months", FormatAge(11))
	assert.Equal(t, "1 year", FormatAge(23))
	assert.Equal(t, "2 years", FormatAge(24))
}
