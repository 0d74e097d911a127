// Package generation defines the boundary between the application core
// and external generative-language services. It declares the Invoker
// interface that the summarizer and quiz generator depend on, the
// vendor-neutral output schema descriptor, and the error taxonomy that
// classifies failures of the external call.
//
// Implementations live under internal/platform (see the gemini package);
// the rest of the application only ever imports this package.
package generation
