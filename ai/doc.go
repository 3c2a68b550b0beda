// Package ai defines the embedding service abstraction used to stage
// enriched document chunks for vector search.
//
// The package contains the Embedder interface and its configuration;
// concrete implementations live in subpackages:
//
//   - ai/openai: production implementation backed by OpenAI-compatible
//     embedding APIs (OpenAI, Ollama, LocalAI, vLLM)
//   - ai/mock: deterministic test double
//
// # Usage
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"),
//	    ai.WithModel("embeddinggemma"),
//	)
//	embedder, err := openai.NewEmbedder(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vectors, err := embedder.EmbedTexts(ctx, chunkTexts)
package ai
