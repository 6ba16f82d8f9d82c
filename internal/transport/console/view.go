package console

import (
	"github.com/fatih/color"

	"passcheck/internal/domain/entity"
)

const (
	bannerWidth = 60

	WelcomeTitle = "🔒 PASSWORD STRENGTH CHECKER 🔒"
	PromptFormat = "Enter password to check (or '%s' to exit): "
	EmptyInput   = "Please enter a password."
	Farewell     = "Stay secure! 👋"
)

//nolint:gochecknoglobals
var tips = []string{
	"Use at least 12 characters",
	"Mix uppercase, lowercase, numbers, and symbols",
	"Avoid common words and patterns",
	"Use unique passwords for each account",
}

// displayHint как показывать категорию в терминале
type displayHint struct {
	color  color.Attribute
	symbol string
}

//nolint:gochecknoglobals
var strengthHints = map[entity.Strength]displayHint{
	entity.StrengthVeryWeak:   {color.FgHiRed, "🔴"},
	entity.StrengthWeak:       {color.FgHiYellow, "🟠"},
	entity.StrengthModerate:   {color.FgHiYellow, "🟡"},
	entity.StrengthStrong:     {color.FgHiGreen, "🟢"},
	entity.StrengthVeryStrong: {color.FgHiGreen, "🟢"},
}

//nolint:gochecknoglobals
var severityMarkers = map[entity.Severity]string{
	entity.SeverityOK:      "✓",
	entity.SeverityWarning: "⚠️ ",
	entity.SeverityError:   "❌",
}
