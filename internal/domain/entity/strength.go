package entity

import "fmt"

// Strength итоговая категория пароля. Значения упорядочены от слабого к сильному.
type Strength int

const (
	StrengthVeryWeak Strength = iota
	StrengthWeak
	StrengthModerate
	StrengthStrong
	StrengthVeryStrong
)

//nolint:gochecknoglobals
var strengthNames = map[Strength][2]string{
	StrengthVeryWeak:   {"VERY WEAK", "VERY_WEAK"},
	StrengthWeak:       {"WEAK", "WEAK"},
	StrengthModerate:   {"MODERATE", "MODERATE"},
	StrengthStrong:     {"STRONG", "STRONG"},
	StrengthVeryStrong: {"VERY STRONG", "VERY_STRONG"},
}

// Strengths все категории по возрастанию.
func Strengths() []Strength {
	return []Strength{
		StrengthVeryWeak,
		StrengthWeak,
		StrengthModerate,
		StrengthStrong,
		StrengthVeryStrong,
	}
}

func (s Strength) String() string {
	if names, ok := strengthNames[s]; ok {
		return names[0]
	}

	return fmt.Sprintf("Strength(%d)", int(s))
}

// Key машинное имя для JSON и лейблов метрик.
func (s Strength) Key() string {
	if names, ok := strengthNames[s]; ok {
		return names[1]
	}

	return "UNKNOWN"
}

func (s Strength) MarshalText() ([]byte, error) {
	if _, ok := strengthNames[s]; !ok {
		return nil, fmt.Errorf("unknown strength %d", int(s))
	}

	return []byte(s.Key()), nil
}

func (s *Strength) UnmarshalText(text []byte) error {
	for k, names := range strengthNames {
		if names[1] == string(text) {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown strength %q", text)
}

// CrackTime грубая оценка времени перебора
type CrackTime int

const (
	CrackTimeUnderASecond CrackTime = iota
	CrackTimeSecondsToMinutes
	CrackTimeHoursToDays
	CrackTimeMonthsToYears
	CrackTimeCenturiesOrMore
)

//nolint:gochecknoglobals
var crackTimeNames = map[CrackTime]string{
	CrackTimeUnderASecond:     "under a second",
	CrackTimeSecondsToMinutes: "seconds to minutes",
	CrackTimeHoursToDays:      "hours to days",
	CrackTimeMonthsToYears:    "months to years",
	CrackTimeCenturiesOrMore:  "centuries or more",
}

func (c CrackTime) String() string {
	if name, ok := crackTimeNames[c]; ok {
		return name
	}

	return fmt.Sprintf("CrackTime(%d)", int(c))
}

func (c CrackTime) MarshalText() ([]byte, error) {
	if _, ok := crackTimeNames[c]; !ok {
		return nil, fmt.Errorf("unknown crack time %d", int(c))
	}

	return []byte(c.String()), nil
}

func (c *CrackTime) UnmarshalText(text []byte) error {
	for k, name := range crackTimeNames {
		if name == string(text) {
			*c = k
			return nil
		}
	}

	return fmt.Errorf("unknown crack time %q", text)
}
