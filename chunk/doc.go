// Package chunk cuts enriched document content into overlapping
// fixed-size windows for embedding.
//
// Chunk identity is deterministic: core.ChunkID hashes the document URL
// and the chunk index, so re-running a pipeline over the same documents
// overwrites vector-store entries instead of duplicating them.
package chunk
