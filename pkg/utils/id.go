package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID cria um identificador opaco curto para registros de domínio.
// Unicidade não é garantida criptograficamente; colisões são um risco aceito.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 9)
}
