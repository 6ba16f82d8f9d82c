package entity

// Check идентификатор эвристики, породившей запись фидбека
type Check string

const (
	CheckLength        Check = "length"
	CheckLowercase     Check = "lowercase"
	CheckUppercase     Check = "uppercase"
	CheckDigit         Check = "digit"
	CheckSpecial       Check = "special"
	CheckCommonPattern Check = "common_pattern"
	CheckRepeatedChars Check = "repeated_chars"
)

// Severity насколько плох результат проверки
type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Feedback одна строка отчёта. Только данные, без цветов и эмодзи.
type Feedback struct {
	Check    Check    `json:"check"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}
