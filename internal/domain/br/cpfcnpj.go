// Package br contém validações de identificadores fiscais brasileiros
// (CPF para pessoa física, CNPJ para pessoa jurídica), via dígitos
// verificadores módulo 11. Funções puras, sem chamadas externas.
package br

// pesos do segundo bloco do CNPJ; o primeiro bloco usa os mesmos pesos
// sem o 6 inicial.
var cnpjWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// ValidCPF valida um CPF com ou sem separadores padrão ("529.982.247-25" ou
// "52998224725"). Retorna false para entrada vazia, com caracteres não
// numéricos, tamanho diferente de 11 dígitos, sequências degeneradas
// (todos os dígitos iguais) ou dígitos verificadores incorretos.
func ValidCPF(s string) bool {
	digits, ok := cleanIdentifier(s)
	if !ok || len(digits) != 11 {
		return false
	}
	if allSameDigits(digits) {
		return false
	}
	// Primeiro dígito: pesos 10..2 sobre os 9 primeiros.
	if checkDigit(digits[:9], 10) != digits[9] {
		return false
	}
	// Segundo dígito: pesos 11..2 sobre os 10 primeiros.
	return checkDigit(digits[:10], 11) == digits[10]
}

// ValidCNPJ valida um CNPJ com ou sem separadores padrão
// ("11.222.333/0001-81" ou "11222333000181"). Mesmas regras de rejeição
// do CPF, com 14 dígitos e os pesos próprios do CNPJ.
func ValidCNPJ(s string) bool {
	digits, ok := cleanIdentifier(s)
	if !ok || len(digits) != 14 {
		return false
	}
	if allSameDigits(digits) {
		return false
	}
	if cnpjCheckDigit(digits[:12]) != digits[12] {
		return false
	}
	return cnpjCheckDigit(digits[:13]) == digits[13]
}

// checkDigit calcula um dígito verificador de CPF com pesos decrescentes
// começando em firstWeight. Resto 0 ou 1 vira dígito 0; caso contrário 11-resto.
func checkDigit(digits []byte, firstWeight int) byte {
	var sum int
	for i, d := range digits {
		sum += int(d-'0') * (firstWeight - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

// cnpjCheckDigit calcula um dígito verificador de CNPJ. Para 12 dígitos usa
// os pesos 5,4,3,2,9,8,7,6,5,4,3,2; para 13, os mesmos com 6 à frente.
func cnpjCheckDigit(digits []byte) byte {
	offset := len(cnpjWeights) - len(digits)
	var sum int
	for i, d := range digits {
		sum += int(d-'0') * cnpjWeights[offset+i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

// cleanIdentifier remove os separadores padrão (ponto, hífen, barra e espaço)
// e retorna os dígitos. ok é false se sobrar qualquer caractere não numérico
// ou se a entrada for vazia.
func cleanIdentifier(s string) ([]byte, bool) {
	if s == "" {
		return nil, false
	}
	var out []byte
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			out = append(out, byte(r))
		case r == '.' || r == '-' || r == '/' || r == ' ':
			// separador padrão, ignora
		default:
			return nil, false
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func allSameDigits(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}
