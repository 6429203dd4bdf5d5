package dogs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidPayload = errors.New("invalid dog payload")
)

// apiDog es el JSON tal como lo devuelve la API externa.
// Los campos de forma variable quedan como RawMessage y se normalizan en Decode.
type apiDog struct {
	ID                int64           `json:"id"`
	Slug              string          `json:"slug"`
	Name              string          `json:"name"`
	Breed             string          `json:"breed"`
	StandardizedBreed string          `json:"standardized_breed"`
	Sex               string          `json:"sex"`
	Size              string          `json:"size"`
	StandardizedSize  string          `json:"standardized_size"`
	AgeMonths         json.RawMessage `json:"age_months"`
	AgeMinMonths      json.RawMessage `json:"age_min_months"`
	AgeMaxMonths      json.RawMessage `json:"age_max_months"`
	AgeText           string          `json:"age_text"`
	PrimaryImageURL   string          `json:"primary_image_url"`
	Properties        map[string]any  `json:"properties"`
	Organization      *apiOrg         `json:"organization"`
	ProfilerData      json.RawMessage `json:"dog_profiler_data"`
}

type apiOrg struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Country string   `json:"country"`
	City    string   `json:"city"`
	ShipsTo []string `json:"ships_to"`
}

type apiProfiler struct {
	PersonalityTraits json.RawMessage            `json:"personality_traits"`
	EnergyLevel       json.RawMessage            `json:"energy_level"`
	Trainability      json.RawMessage            `json:"trainability"`
	ExperienceLevel   json.RawMessage            `json:"experience_level"`
	Compatibility     map[string]json.RawMessage `json:"compatibility"`
	UniqueQuirk       json.RawMessage            `json:"unique_quirk"`
	Tagline           json.RawMessage            `json:"tagline"`
}

// Decode convierte el JSON de la API en un Dog normalizado.
// Solo falla si el cuerpo principal no es un objeto con id válido;
// un dog_profiler_data mal formado deja Profiler.Malformed=true y sigue.
func Decode(raw []byte) (Dog, error) {
	var in apiDog
	if err := json.Unmarshal(raw, &in); err != nil {
		return Dog{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if in.ID <= 0 {
		return Dog{}, fmt.Errorf("%w: missing id", ErrInvalidPayload)
	}

	d := Dog{
		ID:                in.ID,
		Slug:              strings.TrimSpace(in.Slug),
		Name:              strings.TrimSpace(in.Name),
		Breed:             strings.TrimSpace(in.Breed),
		StandardizedBreed: strings.TrimSpace(in.StandardizedBreed),
		Sex:               strings.TrimSpace(in.Sex),
		Size:              strings.TrimSpace(in.Size),
		StandardizedSize:  strings.TrimSpace(in.StandardizedSize),
		AgeMonths:         parseOptionalInt(in.AgeMonths),
		AgeMinMonths:      parseOptionalInt(in.AgeMinMonths),
		AgeMaxMonths:      parseOptionalInt(in.AgeMaxMonths),
		AgeText:           strings.TrimSpace(in.AgeText),
		PrimaryImageURL:   strings.TrimSpace(in.PrimaryImageURL),
		Properties:        in.Properties,
		Compatibility:     CompatibilityFromProperties(in.Properties),
		Profiler:          decodeProfiler(in.ProfilerData),
	}
	if in.Organization != nil {
		d.Organization = Organization{
			ID:      in.Organization.ID,
			Name:    strings.TrimSpace(in.Organization.Name),
			Country: strings.TrimSpace(in.Organization.Country),
			City:    strings.TrimSpace(in.Organization.City),
			ShipsTo: in.Organization.ShipsTo,
		}
	}

	return d, nil
}

// CompatibilityFromProperties unifica las tres señales redundantes del bag de properties:
// good_with_X como bool, como string ("yes"/"no"/"maybe") o como miembro de good_with_list.
func CompatibilityFromProperties(props map[string]any) Compatibility {
	list := goodWithList(props["good_with_list"])

	resolve := func(cat Category) Compat {
		// cualquiera de las tres señales alcanza para "yes"
		if list[string(cat)] {
			return CompatYes
		}
		return compatFromAny(props["good_with_"+string(cat)])
	}

	return Compatibility{
		Dogs:     resolve(CategoryDogs),
		Cats:     resolve(CategoryCats),
		Children: resolve(CategoryChildren),
	}
}

func compatFromAny(v any) Compat {
	switch t := v.(type) {
	case bool:
		if t {
			return CompatYes
		}
		return CompatNo
	case string:
		return ParseCompat(t)
	default:
		return CompatUnknown
	}
}

// ParseCompat normaliza strings de compatibilidad ("yes", "No", "maybe", "true"...).
func ParseCompat(s string) Compat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "y":
		return CompatYes
	case "no", "false", "n":
		return CompatNo
	case "maybe", "sometimes", "with_supervision":
		return CompatMaybe
	default:
		return CompatUnknown
	}
}

func goodWithList(v any) map[string]bool {
	out := map[string]bool{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			continue
		}
		s = strings.ToLower(strings.TrimSpace(s))
		// "kids" aparece en algunos feeds de organizaciones
		if s == "kids" || s == "child" {
			s = string(CategoryChildren)
		}
		out[s] = true
	}
	return out
}

func decodeProfiler(raw json.RawMessage) Profiler {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return NoProfiler()
	}
	if trimmed[0] != '{' {
		return Profiler{Malformed: true}
	}

	var in apiProfiler
	if err := json.Unmarshal(trimmed, &in); err != nil {
		return Profiler{Malformed: true}
	}

	data := ProfilerData{
		PersonalityTraits: stringList(in.PersonalityTraits),
		EnergyLevel:       EnergyLevel(normalizedString(in.EnergyLevel)),
		Trainability:      Trainability(normalizedString(in.Trainability)),
		ExperienceLevel:   ExperienceLevel(normalizedString(in.ExperienceLevel)),
		UniqueQuirk:       rawString(in.UniqueQuirk),
		Tagline:           rawString(in.Tagline),
		Compatibility: Compatibility{
			Dogs:     profilerCompat(in.Compatibility, CategoryDogs),
			Cats:     profilerCompat(in.Compatibility, CategoryCats),
			Children: profilerCompat(in.Compatibility, CategoryChildren),
		},
	}
	return WithProfiler(data)
}

func profilerCompat(m map[string]json.RawMessage, cat Category) Compat {
	raw, ok := m["good_with_"+string(cat)]
	if !ok {
		raw, ok = m[string(cat)]
	}
	if !ok {
		return CompatUnknown
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return CompatUnknown
	}
	return compatFromAny(v)
}

// Los helpers de abajo ignoran tipos inesperados en vez de fallar.

func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func normalizedString(raw json.RawMessage) string {
	s := strings.ToLower(rawString(raw))
	return strings.ReplaceAll(s, " ", "_")
}

func stringList(raw json.RawMessage) []string {
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.ToLower(strings.TrimSpace(s)))
		}
	}
	return out
}

func parseOptionalInt(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil
	}
	n := int(math.Round(f))
	return &n
}
