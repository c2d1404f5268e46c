package config

// Exported handles for white-box testing.
var (
	ResolveToken = resolveToken
	Validate     = validate
)
