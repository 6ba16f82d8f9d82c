package strength

import (
	"strings"

	"passcheck/internal/domain/entity"
)

// SpecialCharacters символы, засчитываемые как спецсимволы. Для энтропии
// используется номинальный размер алфавита, а не длина этой строки.
const SpecialCharacters = "!@#$%^&*()_+-=[]{};:'\",.<>?/\\|`~"

const repeatRunLength = 3

// commonPatterns хранятся в нижнем регистре
//
//nolint:gochecknoglobals
var commonPatterns = []string{
	"123",
	"abc",
	"password",
	"qwerty",
	"admin",
	"letmein",
	"welcome",
	"monkey",
}

// CommonPatterns копия денлиста.
func CommonPatterns() []string {
	result := make([]string, len(commonPatterns))
	copy(result, commonPatterns)

	return result
}

type class uint8

const (
	classLower class = 1 << iota
	classUpper
	classDigit
	classSpecial
)

// номинальные размеры алфавитов
//
//nolint:gochecknoglobals
var alphabetSizes = map[class]int{
	classLower:   26,
	classUpper:   26,
	classDigit:   10,
	classSpecial: 32,
}

type classSet uint8

func (s classSet) has(c class) bool {
	return uint8(s)&uint8(c) != 0
}

func (s classSet) alphabetSize() int {
	size := 0

	for c, n := range alphabetSizes {
		if s.has(c) {
			size += n
		}
	}

	return size
}

func detectClasses(password string) classSet {
	var set uint8

	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			set |= uint8(classLower)
		case r >= 'A' && r <= 'Z':
			set |= uint8(classUpper)
		case r >= '0' && r <= '9':
			set |= uint8(classDigit)
		case strings.ContainsRune(SpecialCharacters, r):
			set |= uint8(classSpecial)
		}
	}

	return classSet(set)
}

type classCheck struct {
	class   class
	check   entity.Check
	points  int
	present string
	missing string
}

// порядок проверок фиксирован и определяет порядок фидбека
//
//nolint:gochecknoglobals
var classChecks = []classCheck{
	{classLower, entity.CheckLowercase, 1, "Contains lowercase letters", "Add lowercase letters (a-z)"},
	{classUpper, entity.CheckUppercase, 1, "Contains uppercase letters", "Add uppercase letters (A-Z)"},
	{classDigit, entity.CheckDigit, 1, "Contains numbers", "Add numbers (0-9)"},
	{classSpecial, entity.CheckSpecial, 2, "Contains special characters", "Add special characters (!@#$%^&*)"}, //nolint:mnd
}
