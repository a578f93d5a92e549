package graph

import (
	"context"
	"errors"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"
)

// ErrNotImplemented is returned by scaffolded resolver stubs that have not
// been filled in yet. It surfaces to API callers as a field-level error.
var ErrNotImplemented = errors.New("not implemented")

// StubResolver is the scaffold stage of the schema: it satisfies every
// operation with a "not implemented" error. It exists so the schema can be
// composed and served before any resolver body is written, and so tests
// can assert the error propagation contract.
type StubResolver struct{}

func notImplemented(field string) error {
	return fmt.Errorf("%s: %w", field, ErrNotImplemented)
}

func (r *StubResolver) Masters(ctx context.Context) ([]*specialMasterResolver, error) {
	return nil, notImplemented("masters")
}

func (r *StubResolver) Master(ctx context.Context, args struct{ ID graphql.ID }) (*specialMasterResolver, error) {
	return nil, notImplemented("master")
}

func (r *StubResolver) Cats(ctx context.Context) ([]*catResolver, error) {
	return nil, notImplemented("cats")
}

func (r *StubResolver) Cat(ctx context.Context, args struct{ ID graphql.ID }) (*catResolver, error) {
	return nil, notImplemented("cat")
}

func (r *StubResolver) SearchCats(ctx context.Context, args struct{ Term string }) ([]*catResolver, error) {
	return nil, notImplemented("searchCats")
}

func (r *StubResolver) CreateMaster(ctx context.Context, args struct{ Input createMasterInput }) (*specialMasterResolver, error) {
	return nil, notImplemented("createMaster")
}

func (r *StubResolver) CreateCat(ctx context.Context, args struct{ Input createCatInput }) (*catResolver, error) {
	return nil, notImplemented("createCat")
}

func (r *StubResolver) SetFavBrother(ctx context.Context, args struct {
	CatID     graphql.ID
	BrotherID *graphql.ID
}) (*catResolver, error) {
	return nil, notImplemented("setFavBrother")
}

func (r *StubResolver) DeleteCat(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	return false, notImplemented("deleteCat")
}
