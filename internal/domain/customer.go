package domain

// Customer representa um cliente cadastrado na loja. O campo CreatedAt é
// imutável depois de definido; edições substituem o registro inteiro pelo ID.
type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CPF       string `json:"cpf"`
	Address   string `json:"address"`
	CreatedAt string `json:"createdAt"`
}
