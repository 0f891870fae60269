package store

// Package store provides persistence implementations for todos.
// The TodoStore interface is defined in the parent gotodo package
// (../store_interface.go) to avoid import cycles between the core
// and store packages.
//
// This package contains concrete implementations:
//   - DynamoDBStore: Production-ready AWS DynamoDB backend
//   - MemoryStore: In-memory backend for testing and local use
//
// Schema design follows single-table patterns defined in schema.go.
