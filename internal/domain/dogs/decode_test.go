package dogs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_FullRecord(t *testing.T) {
	raw := []byte(`{
		"id": 42,
		"slug": "milo-42",
		"name": " Milo ",
		"breed": "Lab mix",
		"standardized_breed": "Labrador Retriever",
		"sex": "Male",
		"standardized_size": "Large",
		"age_months": 24,
		"properties": {"good_with_dogs": true, "good_with_cats": "no", "good_with_list": ["children"]},
		"organization": {"id": 3, "name": "Happy Tails", "country": "ES", "city": "Madrid", "ships_to": ["DE", "UK"]},
		"dog_profiler_data": {
			"personality_traits": ["Playful", "friendly", 7],
			"energy_level": "Very High",
			"trainability": "easy",
			"experience_level": "some_experience",
			"compatibility": {"good_with_dogs": "yes", "cats": "maybe"},
			"unique_quirk": "Carries his bowl around"
		}
	}`)

	d, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, int64(42), d.ID)
	assert.Equal(t, "Milo", d.Name)
	assert.Equal(t, "Labrador Retriever", d.DisplayBreed())
	assert.Equal(t, "Large", d.DisplaySize())
	require.NotNil(t, d.AgeMonths)
	assert.Equal(t, 24, *d.AgeMonths)
	assert.Equal(t, "Happy Tails", d.Organization.Name)
	assert.Equal(t, []string{"DE", "UK"}, d.Organization.ShipsTo)

	assert.Equal(t, Compatibility{Dogs: CompatYes, Cats: CompatNo, Children: CompatYes}, d.Compatibility)

	p, ok := d.Profiler.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"playful", "friendly"}, p.PersonalityTraits)
	assert.Equal(t, EnergyVeryHigh, p.EnergyLevel)
	assert.Equal(t, TrainabilityEasy, p.Trainability)
	assert.Equal(t, ExperienceSome, p.ExperienceLevel)
	assert.Equal(t, CompatYes, p.Compatibility.Dogs)
	assert.Equal(t, CompatMaybe, p.Compatibility.Cats)
	assert.Equal(t, CompatUnknown, p.Compatibility.Children)
	assert.Equal(t, "Carries his bowl around", p.UniqueQuirk)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = Decode([]byte(`{"name":"no id"}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestDecode_ProfilerVariants(t *testing.T) {
	cases := []struct {
		name      string
		payload   string
		present   bool
		malformed bool
	}{
		{"missing", `{"id":1}`, false, false},
		{"null", `{"id":1,"dog_profiler_data":null}`, false, false},
		{"string", `{"id":1,"dog_profiler_data":"oops"}`, false, true},
		{"array", `{"id":1,"dog_profiler_data":[1,2]}`, false, true},
		{"bad nested", `{"id":1,"dog_profiler_data":{"compatibility":"all"}}`, false, true},
		{"empty object", `{"id":1,"dog_profiler_data":{}}`, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Decode([]byte(tc.payload))
			require.NoError(t, err)
			assert.Equal(t, tc.present, d.Profiler.Present)
			assert.Equal(t, tc.malformed, d.Profiler.Malformed)
		})
	}
}

func TestDecode_AgeTolerance(t *testing.T) {
	d, err := Decode([]byte(`{"id":1,"age_months":"18","age_min_months":"x","age_max_months":-3}`))
	require.NoError(t, err)
	require.NotNil(t, d.AgeMonths)
	assert.Equal(t, 18, *d.AgeMonths)
	assert.Nil(t, d.AgeMinMonths)
	assert.Nil(t, d.AgeMaxMonths)
}

func TestCompatibilityFromProperties_RedundantSignals(t *testing.T) {
	cases := []struct {
		props map[string]any
		want  Compat
	}{
		{map[string]any{"good_with_dogs": true}, CompatYes},
		{map[string]any{"good_with_dogs": "Yes"}, CompatYes},
		{map[string]any{"good_with_list": []any{"dogs"}}, CompatYes},
		{map[string]any{"good_with_dogs": false, "good_with_list": []any{"dogs"}}, CompatYes},
		{map[string]any{"good_with_dogs": false}, CompatNo},
		{map[string]any{"good_with_dogs": "maybe"}, CompatMaybe},
		{map[string]any{"good_with_dogs": 1}, CompatUnknown},
		{nil, CompatUnknown},
	}
	for _, tc := range cases {
		got := CompatibilityFromProperties(tc.props)
		assert.Equal(t, tc.want, got.Dogs, "props %v", tc.props)
	}
}

func TestAgeInMonths(t *testing.T) {
	n := func(v int) *int { return &v }

	_, ok := Dog{}.AgeInMonths()
	assert.False(t, ok)

	m, ok := Dog{AgeMonths: n(5), AgeMinMonths: n(10)}.AgeInMonths()
	assert.True(t, ok)
	assert.Equal(t, 5, m)

	m, _ = Dog{AgeMinMonths: n(10), AgeMaxMonths: n(20)}.AgeInMonths()
	assert.Equal(t, 15, m)

	m, _ = Dog{AgeMaxMonths: n(30)}.AgeInMonths()
	assert.Equal(t, 30, m)
}

func TestProfiler_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Dog{ID: 1})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"dog_profiler_data":null`)

	b, err = json.Marshal(Dog{ID: 1, Profiler: WithProfiler(ProfilerData{Tagline: "hi"})})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"tagline":"hi"`)
}

func TestExperienceLevel_Rank(t *testing.T) {
	assert.Less(t, ExperienceFirstTimeOK.Rank(), ExperienceSome.Rank())
	assert.Less(t, ExperienceSome.Rank(), ExperienceExperienced.Rank())
	assert.Equal(t, -1, ExperienceLevel("guru").Rank())
}
