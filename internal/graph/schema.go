package graph

import (
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/whiskerworks/catnip/internal/catcore"
)

// Schema is the application-facing GraphQL SDL. It is embedded at compile
// time and parsed at startup; resolver methods are bound by name.
//
//go:embed schema.graphql
var Schema string

// NewSchema parses the embedded schema against the root resolver.
// It panics on a schema/resolver mismatch, which is a programming error.
func NewSchema(core *catcore.Core) *graphql.Schema {
	return graphql.MustParseSchema(Schema, &Resolver{Core: core}, graphql.MaxParallelism(20))
}

// NewStubSchema parses the embedded schema against the stub resolver,
// the pre-implementation scaffold whose operations all fail with
// ErrNotImplemented.
func NewStubSchema() *graphql.Schema {
	return graphql.MustParseSchema(Schema, &StubResolver{}, graphql.MaxParallelism(20))
}
