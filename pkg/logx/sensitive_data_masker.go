package logx

import (
	"log/slog"
	"regexp"
	"strings"
)

const maskedValue = "[MASKED]"

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	// JSON fields.
	regexp.MustCompile(`(?s)("[Pp]assword":\s?").+?(")`),
	regexp.MustCompile(`(?s)("[Ss]ecret":\s?").+?(")`),
	regexp.MustCompile(`(?s)("[Tt]oken":\s?").+?(")`),
	// key=value pairs.
	regexp.MustCompile(`(?i)(password=)\S+()`),
}

//nolint:gochecknoglobals
var sensitiveKeys = map[string]struct{}{
	FieldPassword: {},
	"passwd":      {},
	"secret":      {},
	"token":       {},
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}"+maskedValue+"${2}"))
	}

	return input
}

// ReplaceAttr is meant for slog.HandlerOptions.ReplaceAttr. Attributes with a
// sensitive key are replaced wholesale, other strings are pattern-masked.
func (s SensitiveDataMasker) ReplaceAttr(_ []string, a slog.Attr) slog.Attr {
	if _, ok := sensitiveKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, maskedValue)
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, string(s.Mask([]byte(a.Value.String()))))
	}

	return a
}
