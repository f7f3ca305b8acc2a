package translator

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"conversions-adapter/internal/conversions/core/domain"
)

// ParseValue converts a property value into a typed JSON value: "true" and
// "false" become booleans, numeric strings become numbers, anything else
// stays a string.
func ParseValue(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}

	if isHexLiteral(value) {
		return value
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return value
	}
	// keep the literal when it is already valid JSON so "10" stays 10
	// and large integers keep their digits
	if json.Valid([]byte(value)) {
		return json.Number(value)
	}
	return f
}

// isHexLiteral reports whether value uses the 0x prefix that
// strconv.ParseFloat accepts but decimal number parsing does not.
func isHexLiteral(value string) bool {
	v := strings.TrimLeft(value, "+-")
	return len(v) > 1 && v[0] == '0' && (v[1] == 'x' || v[1] == 'X')
}

// HashValue returns the lowercase hex SHA-256 digest of input.
func HashValue(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

func customData(props domain.Dict) map[string]any {
	out := make(map[string]any, len(props))
	for _, p := range props {
		out[p[0]] = ParseValue(p[1])
	}
	return out
}
