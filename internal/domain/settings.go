package domain

// DefaultPassword é a senha de acesso usada enquanto nenhuma for definida
// nas configurações.
const DefaultPassword = "1234"

// AppSettings é o registro único de configurações da loja. LogoURL e
// AppIconURL aceitam tanto URLs remotas quanto imagens embutidas (data URI).
type AppSettings struct {
	SystemName string `json:"systemName"`
	LogoURL    string `json:"logoUrl"`
	AppIconURL string `json:"appIconUrl"`
	Password   string `json:"password,omitempty"`
}

// DefaultSettings retorna as configurações aplicadas na primeira execução.
func DefaultSettings() *AppSettings {
	return &AppSettings{
		SystemName: "Perfumaria Pro",
	}
}
