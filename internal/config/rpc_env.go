package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/polymorpher/band-oracle-reader/internal/domain"
)

// envVarPattern matches ${VAR_NAME} patterns in TOML values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Convention: uppercase, dashes/dots to underscores, append _RPC_URL.
// Examples: sepolia -> SEPOLIA_RPC_URL, celo-sepolia -> CELO_SEPOLIA_RPC_URL
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// ExpandValue expands env var references in a config value. A value that is a bare
// ${VAR} reference to an unset variable is an error naming field and variable.
func ExpandValue(field, rawValue string) (string, error) {
	if name, ok := DetectEnvVar(rawValue); ok {
		value, set := os.LookupEnv(name)
		if !set || value == "" {
			return "", domain.UnsetEnvVarErr{Field: field, EnvVar: name}
		}
		return value, nil
	}
	return os.ExpandEnv(rawValue), nil
}
