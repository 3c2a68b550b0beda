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


// Package vector provides the vector store abstraction for veilleur.
//
// It defines the Store interface that decouples the staging pipeline from
// the storage implementation, plus the JSON value serialization shared by
// backends.
//
// # Constructor Return Type Pattern
//
// Public backend constructors return the Store interface to enforce
// abstraction and keep backends swappable:
//
//	store, err := badger.NewStore(path)  // returns vector.Store
//
// Use in tests with in-memory storage:
//
//	store, err := badger.NewMemoryStore()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
// # Thread Safety
//
// All Store implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All Store methods accept context.Context for cancellation and timeout
// support.
package vector
