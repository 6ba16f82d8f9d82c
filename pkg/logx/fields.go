package logx

const (
	FieldAddress      = "address"
	FieldAppName      = "app-name"
	FieldAppVersion   = "app-version"
	FieldEntropyBits  = "entropy-bits"
	FieldLength       = "length"
	FieldOutputFormat = "output-format"
	FieldPassword     = "password"
	FieldScore        = "score"
	FieldSessionID    = "session-id"
	FieldStrength     = "strength"
)
