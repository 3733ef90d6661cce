package entity

// Faixa de qualificação do prospect: nota mediana (clientes frustrados,
// mas negócio ainda vivo) e volume mínimo de reviews.
const (
	MinProspectRating  = 3.5
	MaxProspectRating  = 4.5
	MinProspectReviews = 30
)

// OwnerNotFound é o sentinela usado quando a busca não identifica o dono.
const OwnerNotFound = "Not found"

// Prospect é um negócio local candidato a lead, vindo da busca de places.
// Só vira Lead depois de passar pelo pipeline de ingestão.
type Prospect struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
	Website string  `json:"website"`
	Snippet string  `json:"snippet"`
	Owner   string  `json:"owner"`
}

// Qualified aplica o filtro de rating e volume de reviews.
func (p Prospect) Qualified() bool {
	return p.Rating >= MinProspectRating &&
		p.Rating <= MaxProspectRating &&
		p.Reviews >= MinProspectReviews
}
