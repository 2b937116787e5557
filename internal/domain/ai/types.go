package ai

// ModelAttempt is one entry of the model cascade. A zero ThinkingBudget
// requests no extended reasoning.
type ModelAttempt struct {
	Model          string `yaml:"model" json:"model"`
	ThinkingBudget int32  `yaml:"thinkingBudget" json:"thinking_budget"`
	Label          string `yaml:"label" json:"label"`
}

// GenerateRequest is a single provider call.
type GenerateRequest struct {
	Model          string
	Prompt         string
	Schema         *Schema
	Temperature    float32
	ThinkingBudget int32
	// Files are attached before the prompt text.
	Files []*RemoteFile
}

// ImageRequest asks for exactly NumberOfImages images.
type ImageRequest struct {
	Model             string
	Prompt            string
	NumberOfImages    int
	AspectRatio       string
	SafetyFilterLevel string
	PersonGeneration  string
}

// Image is generated image content.
type Image struct {
	Bytes    []byte
	MIMEType string
}

// FileState is the processing state of a RemoteFile.
type FileState string

const (
	FileStateUnknown    FileState = "UNKNOWN"
	FileStateProcessing FileState = "PROCESSING"
	FileStateActive     FileState = "ACTIVE"
	FileStateFailed     FileState = "FAILED"
)

// RemoteFile is a file held by the provider.
type RemoteFile struct {
	Name     string
	URI      string
	MIMEType string
	State    FileState
	// Error carries the provider's message when State is FileStateFailed.
	Error string
}
