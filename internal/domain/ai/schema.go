package ai

// SchemaType mirrors the JSON schema primitive types used by structured output.
type SchemaType string

const (
	TypeObject SchemaType = "object"
	TypeString SchemaType = "string"
	TypeArray  SchemaType = "array"
)

// Schema is a provider-neutral subset of JSON schema. Adapters translate it
// into their SDK's representation.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Required    []string
	Enum        []string
	Items       *Schema
}

// String is a shorthand for a string property.
func String() *Schema { return &Schema{Type: TypeString} }

// StringArray is a shorthand for an array of strings.
func StringArray() *Schema { return &Schema{Type: TypeArray, Items: String()} }
