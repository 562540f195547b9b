package config

// AnnotationConfig holds settings for tags added to games on output.
type AnnotationConfig struct {
	AddPlyCount   bool // Add a PlyCount tag
	FixResultTags bool // Make the Result tag agree with the game result
}

// NewAnnotationConfig creates an AnnotationConfig with default values.
// All boolean fields default to false (Go zero value).
func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{}
}
