package insights

// Result es el agregado derivado de la lista actual (filtrada) de perros.
// Se recalcula completo en cada cambio; no guarda estado.
type Result struct {
	TopOrganization string   `json:"top_organization"`
	SizePreference  string   `json:"size_preference"`
	AgeRange        string   `json:"age_range"`
	CommonTraits    []string `json:"common_traits"`
	TotalCount      int      `json:"total_count"`
	HasEnhancedData bool     `json:"has_enhanced_data"`

	// Campos enhanced: ausentes si ningún perro trae profiler data.
	PersonalityPattern     *PersonalityPattern  `json:"personality_pattern,omitempty"`
	LifestyleCompatibility []string             `json:"lifestyle_compatibility,omitempty"`
	ExperienceRequirement  string               `json:"experience_requirement,omitempty"`
	HiddenGems             []HiddenGem          `json:"hidden_gems,omitempty"`
	CompatibilityMatrix    *CompatibilityMatrix `json:"compatibility_matrix,omitempty"`
}

type PersonalityPattern struct {
	CommonTraits []string `json:"common_traits"`
	Theme        string   `json:"theme"`
}

type HiddenGem struct {
	DogID   int64  `json:"dog_id"`
	DogName string `json:"dog_name"`
	Quirk   string `json:"quirk"`
}

type CompatibilityCounts struct {
	Yes     int `json:"yes"`
	No      int `json:"no"`
	Maybe   int `json:"maybe"`
	Unknown int `json:"unknown"`
}

type CompatibilityMatrix struct {
	Dogs     CompatibilityCounts `json:"dogs"`
	Cats     CompatibilityCounts `json:"cats"`
	Children CompatibilityCounts `json:"children"`
}

// Enhanced agrupa los sub-resultados derivados del profiler.
// Cualquiera puede quedar vacío si falta el dato subyacente.
type Enhanced struct {
	HasData bool

	PersonalityPattern     *PersonalityPattern
	LifestyleCompatibility []string
	ExperienceRequirement  string
	HiddenGems             []HiddenGem
	CompatibilityMatrix    *CompatibilityMatrix
}

func (r *Result) apply(e Enhanced) {
	r.HasEnhancedData = e.HasData
	r.PersonalityPattern = e.PersonalityPattern
	r.LifestyleCompatibility = e.LifestyleCompatibility
	r.ExperienceRequirement = e.ExperienceRequirement
	r.HiddenGems = e.HiddenGems
	r.CompatibilityMatrix = e.CompatibilityMatrix
}
