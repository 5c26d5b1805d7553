package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		record     any
		candidates []string
		expected   any
	}{
		{
			name:       "Literal key wins",
			record:     map[string]any{"Titulo": "Rayuela", "titulo": "shadowed"},
			candidates: []string{"Titulo", "titulo"},
			expected:   "Rayuela",
		},
		{
			name:       "Candidate order is the tie break",
			record:     map[string]any{"Titulo": "Rayuela", "TITULO": "RAYUELA"},
			candidates: []string{"TITULO", "Titulo"},
			expected:   "RAYUELA",
		},
		{
			name:       "Accented key matches unaccented candidate",
			record:     map[string]any{"TÍTULO": "Pedro Páramo"},
			candidates: []string{"TITULO", "Titulo"},
			expected:   "Pedro Páramo",
		},
		{
			name:       "Spaces stripped during normalization",
			record:     map[string]any{"No Empleado": "88123"},
			candidates: []string{"NoEmpleado"},
			expected:   "88123",
		},
		{
			name:       "Substring containment either direction",
			record:     map[string]any{"Nombre Del Alumno:\n(Completo)": "Ana"},
			candidates: []string{"Nombre"},
			expected:   "Ana",
		},
		{
			name:       "Empty literal value falls through to normalized match",
			record:     map[string]any{"AUTOR": "", "Autor ": "Rulfo"},
			candidates: []string{"AUTOR", "Autor"},
			expected:   "Rulfo",
		},
		{
			name:       "Recurses into nested objects",
			record:     map[string]any{"libro": map[string]any{"isbn": "968-23"}},
			candidates: []string{"ISBN", "isbn"},
			expected:   "968-23",
		},
		{
			name:       "Missing everywhere is nil",
			record:     map[string]any{"AUTOR": "Rulfo"},
			candidates: []string{"EDITORIAL"},
			expected:   nil,
		},
		{
			name:       "Non-object record is nil",
			record:     "not a document",
			candidates: []string{"TITULO"},
			expected:   nil,
		},
		{
			name:       "Nil record is nil",
			record:     nil,
			candidates: []string{"TITULO"},
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.record, tt.candidates...))
		})
	}
}

func TestResolveString(t *testing.T) {
	assert.Equal(t, "42", ResolveString(map[string]any{"Boleta": float64(42)}, "Boleta"))
	assert.Equal(t, "", ResolveString(map[string]any{}, "Boleta"))
	assert.Equal(t, "abc", ResolveString(map[string]any{"Grupo": "abc"}, "Grupo"))
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected int
		found    bool
	}{
		{"Int", 7, 7, true},
		{"Float from JSON", float64(3), 3, true},
		{"Digit string", "12", 12, true},
		{"Dirty string", "aprox. 4 copias", 4, true},
		{"Empty string", "", 0, false},
		{"Nil", nil, 0, false},
		{"Nested map preferred key", map[string]any{"junk": "x", "DISPONIBLES": "5"}, 5, true},
		{"Slice first numeric", []any{"n/a", "2"}, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := Number(tt.value)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestResolveCount(t *testing.T) {
	tests := []struct {
		name     string
		doc      map[string]any
		expected int
		found    bool
	}{
		{
			name:     "Canonical key",
			doc:      map[string]any{"DISPONIBLES": float64(4)},
			expected: 4,
			found:    true,
		},
		{
			name:     "Digit string under variant key",
			doc:      map[string]any{"Disponible": "2"},
			expected: 2,
			found:    true,
		},
		{
			name:     "Normalized key containing EXIST",
			doc:      map[string]any{"Existencias": 9},
			expected: 9,
			found:    true,
		},
		{
			name:     "Legacy U.EXIST with empty-string key",
			doc:      map[string]any{"U": map[string]any{"EXIST": map[string]any{"": float64(3)}}},
			expected: 3,
			found:    true,
		},
		{
			name:     "Legacy U.EXIST direct value",
			doc:      map[string]any{"U": map[string]any{" exist ": "6"}},
			expected: 6,
			found:    true,
		},
		{
			name:  "Nothing numeric anywhere",
			doc:   map[string]any{"TITULO": "Aura", "U": map[string]any{"EXIST": "n/a"}},
			found: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := ResolveCount(tt.doc)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, n)
		})
	}
}
