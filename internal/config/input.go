package config

// InputConfig holds settings for reading input files.
type InputConfig struct {
	// Mode selects game or board parsing
	Mode InputMode

	// Encoding of files without a byte order mark
	Encoding Encoding
}

// NewInputConfig creates an InputConfig with default values.
func NewInputConfig() *InputConfig {
	return &InputConfig{
		Mode:     GameInput,
		Encoding: UTF8,
	}
}
