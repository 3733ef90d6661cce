package entity

import (
	"fmt"
	"strings"
)

// Schema mapeia os nomes semânticos de coluna para índices posicionais
// (0-based) descobertos na linha de cabeçalho. O layout da planilha pode
// variar; o resto do engine só enxerga este mapa tipado.
type Schema struct {
	Status   int
	Email    int
	Step     int
	LastDate int
	Owner    int
}

// Colunas opcionais ausentes ficam com -1.
const ColumnMissing = -1

// ResolveSchema varre o cabeçalho (case-insensitive) e monta o Schema.
// Status e Email são obrigatórios; a ausência deles é erro de configuração
// da execução inteira, não de um lead.
func ResolveSchema(header []string) (Schema, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}

	find := func(name string) int {
		if i, ok := idx[name]; ok {
			return i
		}
		return ColumnMissing
	}

	s := Schema{
		Status:   find("status"),
		Email:    find("email"),
		Step:     find("step"),
		LastDate: find("last_date"),
		Owner:    find("owner"),
	}

	if s.Status == ColumnMissing {
		return Schema{}, fmt.Errorf("coluna obrigatória 'Status' não encontrada no cabeçalho: %v", header)
	}
	if s.Email == ColumnMissing {
		return Schema{}, fmt.Errorf("coluna obrigatória 'Email' não encontrada no cabeçalho: %v", header)
	}

	return s, nil
}

// HasFollowUpColumns diz se a planilha suporta o ciclo de follow-up.
func (s Schema) HasFollowUpColumns() bool {
	return s.Step != ColumnMissing && s.LastDate != ColumnMissing
}

// LeadAt materializa um Lead a partir de uma linha crua da planilha.
// row é o número da linha na planilha (1-based). Linhas curtas são
// tratadas como se tivessem células vazias.
func (s Schema) LeadAt(row int, values []string) Lead {
	cell := func(col int) string {
		if col == ColumnMissing || col >= len(values) {
			return ""
		}
		return strings.TrimSpace(values[col])
	}

	return Lead{
		Row:      row,
		Email:    cell(s.Email),
		Owner:    cell(s.Owner),
		Status:   cell(s.Status),
		Step:     cell(s.Step),
		LastDate: cell(s.LastDate),
	}
}
