package strength

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"passcheck/internal/domain/entity"
)

// MaxDisplayScore знаменатель для вывода "Score: n/10". Реальный счёт может его превысить.
const MaxDisplayScore = 10

// Evaluate оценивает пароль. Функция чистая и тотальная: пустая строка
// тоже допустима, отсеивать её должен вызывающий.
func Evaluate(password string) entity.Evaluation {
	length := utf8.RuneCountInString(password)
	classes := detectClasses(password)

	score := 0
	feedback := make([]entity.Feedback, 0, 7) //nolint:mnd // length + 4 classes + pattern + repeat

	// 1. Длина
	points, fb := scoreLength(length)
	score += points
	feedback = append(feedback, fb)

	// 2. Классы символов, каждый независимо
	for _, c := range classChecks {
		if classes.has(c.class) {
			score += c.points
			feedback = append(feedback, entity.Feedback{Check: c.check, Severity: entity.SeverityOK, Message: c.present})
		} else {
			feedback = append(feedback, entity.Feedback{Check: c.check, Severity: entity.SeverityError, Message: c.missing})
		}
	}

	// 3. Распространённые шаблоны: ровно один из двух исходов
	if HasCommonPattern(password) {
		score -= 2
		feedback = append(feedback, entity.Feedback{
			Check:    entity.CheckCommonPattern,
			Severity: entity.SeverityWarning,
			Message:  "Contains common patterns - avoid predictable sequences",
		})
	} else {
		score++
		feedback = append(feedback, entity.Feedback{
			Check:    entity.CheckCommonPattern,
			Severity: entity.SeverityOK,
			Message:  "No common patterns detected",
		})
	}

	// 4. Повторы. Положительной записи нет намеренно.
	if HasRepeatedRun(password, repeatRunLength) {
		score--
		feedback = append(feedback, entity.Feedback{
			Check:    entity.CheckRepeatedChars,
			Severity: entity.SeverityWarning,
			Message:  "Avoid repeating characters (e.g., 'aaa')",
		})
	}

	// 5-7. Энтропия и производные метки
	entropy := entropyBits(length, classes.alphabetSize())

	return entity.Evaluation{
		Score:       score,
		Strength:    StrengthForScore(score),
		Feedback:    feedback,
		EntropyBits: entropy,
		CrackTime:   CrackTimeForEntropy(entropy),
		Length:      length,
	}
}

// Entropy length * log2(alphabet), где алфавит складывается из номинальных
// размеров присутствующих классов.
func Entropy(password string) float64 {
	return entropyBits(utf8.RuneCountInString(password), detectClasses(password).alphabetSize())
}

func entropyBits(length, alphabet int) float64 {
	if alphabet <= 0 {
		return 0
	}

	return float64(length) * math.Log2(float64(alphabet))
}

func scoreLength(length int) (int, entity.Feedback) {
	switch {
	case length < 6: //nolint:mnd
		return 0, entity.Feedback{
			Check:    entity.CheckLength,
			Severity: entity.SeverityError,
			Message:  "Too short! Use at least 8 characters",
		}
	case length < 8: //nolint:mnd
		return 1, entity.Feedback{
			Check:    entity.CheckLength,
			Severity: entity.SeverityWarning,
			Message:  "Increase length to at least 8 characters",
		}
	case length < 12: //nolint:mnd
		return 2, entity.Feedback{
			Check:    entity.CheckLength,
			Severity: entity.SeverityOK,
			Message:  "Good length, but 12+ is better",
		}
	default:
		return 3, entity.Feedback{
			Check:    entity.CheckLength,
			Severity: entity.SeverityOK,
			Message:  "Excellent length!",
		}
	}
}

// StrengthForScore пороги включительные сверху.
func StrengthForScore(score int) entity.Strength {
	switch {
	case score <= 3:
		return entity.StrengthVeryWeak
	case score <= 5:
		return entity.StrengthWeak
	case score <= 7:
		return entity.StrengthModerate
	case score <= 9:
		return entity.StrengthStrong
	default:
		return entity.StrengthVeryStrong
	}
}

func CrackTimeForEntropy(bits float64) entity.CrackTime {
	switch {
	case bits < 28:
		return entity.CrackTimeUnderASecond
	case bits < 36:
		return entity.CrackTimeSecondsToMinutes
	case bits < 60:
		return entity.CrackTimeHoursToDays
	case bits < 80:
		return entity.CrackTimeMonthsToYears
	default:
		return entity.CrackTimeCenturiesOrMore
	}
}

// HasCommonPattern ищет подстроки из денлиста без учёта регистра.
// Регистр складывается только для A-Z: "İ" или знак Кельвина не превращаются в i/k.
func HasCommonPattern(password string) bool {
	lower := asciiLower(password)

	return lo.ContainsBy(commonPatterns, func(pattern string) bool {
		return strings.Contains(lower, pattern)
	})
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}

		return r
	}, s)
}

// HasRepeatedRun true, если какой-то символ идёт подряд не меньше run раз.
func HasRepeatedRun(password string, run int) bool {
	if run <= 1 {
		return password != ""
	}

	var prev rune

	current := 0

	for i, r := range password {
		if i > 0 && r == prev {
			current++
		} else {
			current = 1
		}

		if current >= run {
			return true
		}

		prev = r
	}

	return false
}
