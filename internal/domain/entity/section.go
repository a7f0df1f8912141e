package entity

import (
	"strconv"
	"strings"

	"github.com/jhoicas/Asignaciones-api/internal/domain"
)

// Section área de la tienda que debe cubrirse con un número fijo de horas.
// Forma parte de la configuración, no de los datos de usuario.
type Section struct {
	Name          string
	RequiredHours int
}

// NewSection valida nombre y horas requeridas (> 0).
func NewSection(name string, requiredHours int) (Section, error) {
	if strings.TrimSpace(name) == "" {
		return Section{}, domain.Validation("el nombre de la sección no puede estar vacío")
	}
	if requiredHours <= 0 {
		return Section{}, domain.Validation("las horas requeridas de la sección %s deben ser positivas", name)
	}
	return Section{Name: name, RequiredHours: requiredHours}, nil
}

// Equal dos secciones son iguales si comparten nombre.
func (s Section) Equal(o Section) bool { return s.Name == o.Name }

// SectionCatalog tabla de secciones que toda tienda debe cubrir, en orden de presentación.
type SectionCatalog []Section

// DefaultSectionCatalog catálogo de fábrica de la cadena.
func DefaultSectionCatalog() SectionCatalog {
	return SectionCatalog{
		{Name: "Horno", RequiredHours: 8},
		{Name: "Cajas", RequiredHours: 16},
		{Name: "Pescadería", RequiredHours: 16},
		{Name: "Verduras", RequiredHours: 16},
		{Name: "Droguería", RequiredHours: 16},
	}
}

// Find busca una sección por nombre exacto.
func (c SectionCatalog) Find(name string) (Section, bool) {
	for _, s := range c {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// ParseSectionCatalog lee un catálogo con formato "Horno:8,Cajas:16".
// Un string vacío devuelve el catálogo por defecto.
func ParseSectionCatalog(raw string) (SectionCatalog, error) {
	if strings.TrimSpace(raw) == "" {
		return DefaultSectionCatalog(), nil
	}
	var out SectionCatalog
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		name, hours, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, domain.Validation("sección mal formada %q: se espera nombre:horas", part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(hours))
		if err != nil {
			return nil, domain.Validation("horas inválidas para la sección %q", name)
		}
		sec, err := NewSection(strings.TrimSpace(name), n)
		if err != nil {
			return nil, err
		}
		if seen[sec.Name] {
			return nil, domain.Validation("sección duplicada en el catálogo: %s", sec.Name)
		}
		seen[sec.Name] = true
		out = append(out, sec)
	}
	return out, nil
}
