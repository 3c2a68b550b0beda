// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package openai provides an ai.Embedder implementation backed by
// OpenAI-compatible APIs.
//
// It uses the langchaingo library to communicate with OpenAI or
// OpenAI-compatible services (such as Ollama, LocalAI, or vLLM).
//
// # Usage
//
//	cfg := ai.NewConfig(ai.WithHost("http://localhost:11434")) // /v1 added automatically
//	embedder, err := openai.NewEmbedder(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vectors, err := embedder.EmbedTexts(ctx, []string{"prévention des chutes"})
package openai
