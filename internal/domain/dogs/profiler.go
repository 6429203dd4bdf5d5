package dogs

import "encoding/json"

type EnergyLevel string

const (
	EnergyLow      EnergyLevel = "low"
	EnergyMedium   EnergyLevel = "medium"
	EnergyHigh     EnergyLevel = "high"
	EnergyVeryHigh EnergyLevel = "very_high"
)

type Trainability string

const (
	TrainabilityEasy        Trainability = "easy"
	TrainabilityModerate    Trainability = "moderate"
	TrainabilityChallenging Trainability = "challenging"
)

type ExperienceLevel string

const (
	ExperienceFirstTimeOK ExperienceLevel = "first_time_ok"
	ExperienceSome        ExperienceLevel = "some_experience"
	ExperienceExperienced ExperienceLevel = "experienced"
)

// Rank ordena los niveles de experiencia de menos a más exigente (-1 si desconocido).
func (e ExperienceLevel) Rank() int {
	switch e {
	case ExperienceFirstTimeOK:
		return 0
	case ExperienceSome:
		return 1
	case ExperienceExperienced:
		return 2
	default:
		return -1
	}
}

// ProfilerData son los atributos enriquecidos que produce el proceso externo de análisis.
type ProfilerData struct {
	PersonalityTraits []string        `json:"personality_traits,omitempty"`
	EnergyLevel       EnergyLevel     `json:"energy_level,omitempty"`
	Trainability      Trainability    `json:"trainability,omitempty"`
	ExperienceLevel   ExperienceLevel `json:"experience_level,omitempty"`
	Compatibility     Compatibility   `json:"compatibility"`
	UniqueQuirk       string          `json:"unique_quirk,omitempty"`
	Tagline           string          `json:"tagline,omitempty"`
}

// Profiler es una variante opcional explícita: Present=false significa "sin datos".
// Malformed indica que venía un payload pero no era un objeto JSON.
type Profiler struct {
	Present   bool
	Malformed bool
	Data      ProfilerData
}

func NoProfiler() Profiler { return Profiler{} }

func WithProfiler(d ProfilerData) Profiler { return Profiler{Present: true, Data: d} }

// Get devuelve los datos solo si están presentes.
func (p Profiler) Get() (ProfilerData, bool) {
	if !p.Present {
		return ProfilerData{}, false
	}
	return p.Data, true
}

func (p Profiler) MarshalJSON() ([]byte, error) {
	if !p.Present {
		return []byte("null"), nil
	}
	return json.Marshal(p.Data)
}
