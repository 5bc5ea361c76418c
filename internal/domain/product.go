package domain

// Categorias de fragrância mais comuns no catálogo. A categoria é uma string
// aberta: produtos podem carregar qualquer rótulo e o valor abaixo é usado
// como fallback quando o produto de um item histórico já foi removido.
const CategoryFallback = "Outros"

// Product representa um perfume do catálogo.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	ML          int     `json:"ml"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"minStock"`
	Description string  `json:"description"`
}

// LowStock indica se o produto está na linha de reposição ou abaixo dela.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
