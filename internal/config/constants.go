package config

// Default endpoints. The invalid one misspells the users path on purpose.
const (
	DefaultUsersURL   = "https://jsonplaceholder.typicode.com/users"
	DefaultInvalidURL = "https://jsonplaceholder.typicode.com/u5ers"
)

// Default city prefixes
const (
	DefaultPrimaryCityPrefix  = "C"
	DefaultFallbackCityPrefix = "L"
)

// Environment variable names
const (
	EnvUsersURL           = "USERS_URL"
	EnvInvalidURL         = "INVALID_URL"
	EnvPrimaryCityPrefix  = "PRIMARY_CITY_PREFIX"
	EnvFallbackCityPrefix = "FALLBACK_CITY_PREFIX"
	EnvHTTPTimeout        = "HTTP_TIMEOUT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvEnvironment        = "ENVIRONMENT"
	EnvVersion            = "VERSION"
)
