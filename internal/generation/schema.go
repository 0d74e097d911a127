package generation

// SchemaType enumerates the field types of an output schema, using the
// generative-language API's own spelling.
type SchemaType string

// Supported schema field types.
const (
	TypeObject  SchemaType = "OBJECT"
	TypeArray   SchemaType = "ARRAY"
	TypeString  SchemaType = "STRING"
	TypeInteger SchemaType = "INTEGER"
	TypeNumber  SchemaType = "NUMBER"
	TypeBoolean SchemaType = "BOOLEAN"
)

// Schema is a declarative, vendor-neutral descriptor of the JSON shape a
// schema-constrained call must produce. It is plain data so callers can
// declare and unit-test their schemas without touching the network layer;
// implementations translate it to their provider's representation.
type Schema struct {
	Type             SchemaType         `json:"type"`
	Properties       map[string]*Schema `json:"properties,omitempty"`
	Items            *Schema            `json:"items,omitempty"`
	PropertyOrdering []string           `json:"propertyOrdering,omitempty"`
}
