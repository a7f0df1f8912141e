// Package nif valida documentos nacionales de identidad españoles (DNI y NIE)
// mediante el algoritmo de la letra de control módulo 23.
package nif

// Kind identifica el tipo de documento reconocido.
type Kind string

const (
	KindDNI Kind = "DNI"
	KindNIE Kind = "NIE"
)

// Length es la longitud exacta de un DNI o NIE.
const Length = 9

// controlLetters es la tabla oficial de letras de control; el índice es número mod 23.
const controlLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// Result resultado de Validate. Kind solo es significativo si Valid es true.
type Result struct {
	Valid bool
	Kind  Kind
}

// Validate valida y clasifica un documento.
// DNI: 8 dígitos + letra. NIE: X/Y/Z (0/1/2) + 7 dígitos + letra.
// La letra de control se compara sin distinguir mayúsculas.
func Validate(document string) Result {
	if len(document) != Length {
		return Result{}
	}
	if isDigits(document[:8]) {
		if checkLetter(document[:8], document[8]) {
			return Result{Valid: true, Kind: KindDNI}
		}
		return Result{}
	}
	prefix, ok := niePrefix(document[0])
	if !ok || !isDigits(document[1:8]) {
		return Result{}
	}
	if checkLetter(string(prefix)+document[1:8], document[8]) {
		return Result{Valid: true, Kind: KindNIE}
	}
	return Result{}
}

// IsValid atajo de Validate(document).Valid.
func IsValid(document string) bool {
	return Validate(document).Valid
}

// ControlLetter devuelve la letra de control para la parte numérica de un documento.
func ControlLetter(number int) byte {
	if number < 0 {
		number = -number
	}
	return controlLetters[number%23]
}

func checkLetter(digits string, letter byte) bool {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return upper(letter) == ControlLetter(n)
}

func niePrefix(c byte) (byte, bool) {
	switch upper(c) {
	case 'X':
		return '0', true
	case 'Y':
		return '1', true
	case 'Z':
		return '2', true
	}
	return 0, false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
