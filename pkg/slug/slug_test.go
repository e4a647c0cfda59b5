package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Consultoría SEO", "consultoria-seo"},
		{"Analítica de Datos", "analitica-de-datos"},
		{"SEO Avanzado", "seo-avanzado"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"¿Qué es el E-E-A-T?", "que-es-el-e-e-a-t"},
		{"100% práctico", "100-practico"},
		{"ya-es-un-slug", "ya-es-un-slug"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, From(tt.in), "From(%q)", tt.in)
	}
}

func TestFromIdempotent(t *testing.T) {
	inputs := []string{"Consultoría SEO", "Estrategia Digital", "IA aplicada al marketing"}
	for _, in := range inputs {
		once := From(in)
		assert.Equal(t, once, From(once), "From should be stable on its own output")
	}
}
