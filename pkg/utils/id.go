package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o identificador curto usado nos relatórios emitidos
func GenerateID() (string, error) {
	id, err := gonanoid.Generate(idAlphabet, 10)
	if err != nil {
		return "", err
	}
	return "rep_" + id, nil
}
