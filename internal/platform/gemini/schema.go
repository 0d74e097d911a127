package gemini

import (
	"google.golang.org/genai"

	"github.com/tealfox/quizforge/internal/generation"
)

// toGenAISchema translates the vendor-neutral schema descriptor into the
// genai SDK's schema type. Nil maps to nil so optional schemas pass
// through untouched.
func toGenAISchema(s *generation.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:             toGenAIType(s.Type),
		Items:            toGenAISchema(s.Items),
		PropertyOrdering: s.PropertyOrdering,
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenAISchema(prop)
		}
	}

	return out
}

// toGenAIType maps a descriptor type to the genai SDK's type constants.
func toGenAIType(t generation.SchemaType) genai.Type {
	switch t {
	case generation.TypeObject:
		return genai.TypeObject
	case generation.TypeArray:
		return genai.TypeArray
	case generation.TypeString:
		return genai.TypeString
	case generation.TypeInteger:
		return genai.TypeInteger
	case generation.TypeNumber:
		return genai.TypeNumber
	case generation.TypeBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeUnspecified
	}
}
