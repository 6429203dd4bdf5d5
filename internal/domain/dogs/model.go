package dogs

// Compat es la respuesta normalizada de compatibilidad para una categoría.
// Se normaliza una sola vez al ingerir el registro (ver Decode).
type Compat string

const (
	CompatYes     Compat = "yes"
	CompatNo      Compat = "no"
	CompatMaybe   Compat = "maybe"
	CompatUnknown Compat = "unknown"
)

// Category es cada eje de compatibilidad.
type Category string

const (
	CategoryDogs     Category = "dogs"
	CategoryCats     Category = "cats"
	CategoryChildren Category = "children"
)

// Categories en orden estable de presentación.
var Categories = []Category{CategoryDogs, CategoryCats, CategoryChildren}

type Compatibility struct {
	Dogs     Compat `json:"dogs"`
	Cats     Compat `json:"cats"`
	Children Compat `json:"children"`
}

func (c Compatibility) For(cat Category) Compat {
	var v Compat
	switch cat {
	case CategoryDogs:
		v = c.Dogs
	case CategoryCats:
		v = c.Cats
	case CategoryChildren:
		v = c.Children
	}
	if v == "" {
		return CompatUnknown
	}
	return v
}

type Organization struct {
	ID      int64    `json:"id,omitempty"`
	Name    string   `json:"name"`
	Country string   `json:"country,omitempty"`
	City    string   `json:"city,omitempty"`
	ShipsTo []string `json:"ships_to,omitempty"`
}

// Dog es la vista desnormalizada de un perro adoptable, tal como la usa el catálogo.
// Nunca se muta después de Decode.
type Dog struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`

	Breed             string `json:"breed,omitempty"`
	StandardizedBreed string `json:"standardized_breed,omitempty"`
	Sex               string `json:"sex,omitempty"`
	Size              string `json:"size,omitempty"`
	StandardizedSize  string `json:"standardized_size,omitempty"`

	AgeMonths    *int   `json:"age_months,omitempty"`
	AgeMinMonths *int   `json:"age_min_months,omitempty"`
	AgeMaxMonths *int   `json:"age_max_months,omitempty"`
	AgeText      string `json:"age_text,omitempty"`

	PrimaryImageURL string         `json:"primary_image_url,omitempty"`
	Properties      map[string]any `json:"properties,omitempty"`

	Organization  Organization  `json:"organization"`
	Compatibility Compatibility `json:"compatibility"`
	Profiler      Profiler      `json:"dog_profiler_data"`
}

// DisplayBreed prefiere la raza estandarizada.
func (d Dog) DisplayBreed() string {
	if d.StandardizedBreed != "" {
		return d.StandardizedBreed
	}
	return d.Breed
}

// DisplaySize prefiere el tamaño estandarizado; "" si no hay ninguno.
func (d Dog) DisplaySize() string {
	if d.StandardizedSize != "" {
		return d.StandardizedSize
	}
	return d.Size
}

// AgeInMonths devuelve la edad utilizable en meses:
// age_months; si no, el punto medio de min/max; si no, el límite disponible.
func (d Dog) AgeInMonths() (int, bool) {
	switch {
	case d.AgeMonths != nil:
		return *d.AgeMonths, true
	case d.AgeMinMonths != nil && d.AgeMaxMonths != nil:
		return (*d.AgeMinMonths + *d.AgeMaxMonths) / 2, true
	case d.AgeMinMonths != nil:
		return *d.AgeMinMonths, true
	case d.AgeMaxMonths != nil:
		return *d.AgeMaxMonths, true
	default:
		return 0, false
	}
}
