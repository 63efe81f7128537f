package llm

import "io"

// The Gemini backends hold a gRPC connection that shutdown releases
// through an io.Closer assertion; keep both satisfying it.
var (
	_ io.Closer = (*GeminiAnswerer)(nil)
	_ io.Closer = (*VertexAnswerer)(nil)

	_ Answerer = (*ClaudeAnswerer)(nil)
	_ Answerer = (*GeminiAnswerer)(nil)
	_ Answerer = (*VertexAnswerer)(nil)
)
