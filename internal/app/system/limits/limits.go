// internal/app/system/limits/limits.go
package limits

// Request body size limits.
const (
	// MaxJSONBodySize bounds JSON request bodies for every API write.
	MaxJSONBodySize = 1 << 20 // 1 MB
)
