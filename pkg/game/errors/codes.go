package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeInternal      Code = "INTERNAL"
	CodeAssetLoad     Code = "ASSET_LOAD"
	CodeMapParse      Code = "MAP_PARSE"
	CodeLookupMiss    Code = "LOOKUP_MISS"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitStatus returns the process exit status used when a startup error of
// this code reaches main
func (c Code) ExitStatus() int {
	switch c {
	case CodeInvalidConfig:
		return 2
	case CodeMapParse:
		return 3
	case CodeAssetLoad:
		return 4
	default:
		return 1
	}
}
