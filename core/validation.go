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


package core

import "fmt"

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - URL must not be empty (it is the document identifier)
//   - Content must not be empty
//   - Source must not be empty (notification reports group by source)
//
// NOT validated:
//   - Title (untitled documents are common for harvested PDFs)
//   - ContentType (free-form, owned by the fetch collaborator)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.URL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyURL)
	}

	if doc.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyContent)
	}

	if doc.Source == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptySource)
	}

	return nil
}
