// Package mock provides a deterministic test double for the ai.Embedder
// interface.
//
// MockEmbedder returns hash-derived vectors by default, so the same text
// always maps to the same embedding, and supports per-test behavior
// injection through its function fields:
//
//	embedder := mock.NewMockEmbedder()
//	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
//	    return nil, errors.New("embedding service down")
//	}
package mock
