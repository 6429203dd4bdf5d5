package favorites

import (
	"net/url"
	"strconv"
	"strings"
)

// Parámetros de query aceptados para compartir favoritos.
const (
	ParamCompact = "c"      // actual: ids en base36 separados por "."
	ParamShared  = "shared" // ids decimales separados por ","
	ParamLegacy  = "ids"    // formato viejo, igual que shared
)

// EncodeCompact serializa ids en base36 separados por ".".
func EncodeCompact(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 36))
	}
	return strings.Join(parts, ".")
}

// DecodeCompact es la inversa de EncodeCompact; cualquier token inválido invalida todo.
func DecodeCompact(s string) ([]int64, bool) {
	return decodeList(s, ".", 36)
}

// decodeDecimal acepta la lista decimal de "shared" y del legacy "ids".
func decodeDecimal(s string) ([]int64, bool) {
	return decodeList(s, ",", 10)
}

func decodeList(s, sep string, base int) ([]int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	seen := map[int64]struct{}{}
	out := make([]int64, 0)
	for _, tok := range strings.Split(s, sep) {
		tok = strings.TrimSpace(tok)
		id, err := strconv.ParseInt(tok, base, 64)
		if err != nil || id <= 0 {
			return nil, false
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, true
}

// ShareableURL arma base?c=<compact>. Con el set vacío devuelve base sin parámetro.
func ShareableURL(base string, ids []int64) (string, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Del(ParamCompact)
	q.Del(ParamShared)
	q.Del(ParamLegacy)
	if len(ids) > 0 {
		q.Set(ParamCompact, EncodeCompact(ids))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ParseSharedIDs extrae los ids de un link (URL completa o solo query).
// Cada parámetro se valida por separado: uno mal formado se ignora sin error.
// El resultado es la unión en orden c, shared, ids.
func ParseSharedIDs(raw string) []int64 {
	q := queryOf(raw)
	if q == nil {
		return nil
	}

	seen := map[int64]struct{}{}
	out := make([]int64, 0)
	add := func(ids []int64, ok bool) {
		if !ok {
			return
		}
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	add(DecodeCompact(q.Get(ParamCompact)))
	add(decodeDecimal(q.Get(ParamShared)))
	add(decodeDecimal(q.Get(ParamLegacy)))
	return out
}

func queryOf(raw string) url.Values {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if u, err := url.Parse(raw); err == nil && u.RawQuery != "" {
		if q, err := url.ParseQuery(u.RawQuery); err == nil {
			return q
		}
		return nil
	}

	// solo query: "?c=..." o "c=..."
	if q, err := url.ParseQuery(strings.TrimPrefix(raw, "?")); err == nil {
		return q
	}
	return nil
}
