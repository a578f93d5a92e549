package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/whiskerworks/catnip/internal/cat"
	"github.com/whiskerworks/catnip/internal/catcore"
)

// specialMasterResolver projects a master onto the SpecialMaster API type.
type specialMasterResolver struct {
	core *catcore.Core
	m    *cat.Master
}

func (r *specialMasterResolver) ID() graphql.ID {
	return graphql.ID(r.m.ID)
}

// CatBrothers delegates to the owned-cats accessor for the parent's id.
func (r *specialMasterResolver) CatBrothers(ctx context.Context) ([]*catResolver, error) {
	cats, err := r.core.CatsByMaster(ctx, r.m.ID)
	if err != nil {
		return nil, err
	}
	return wrapCats(r.core, cats), nil
}

// catResolver resolves the Cat API type.
type catResolver struct {
	core *catcore.Core
	c    *cat.Cat
}

func (r *catResolver) ID() graphql.ID {
	return graphql.ID(r.c.ID)
}

func (r *catResolver) Name() string {
	return r.c.Name
}

func (r *catResolver) Color() string {
	return r.c.Color
}

// FavBrother delegates to the favorite-brother accessor. An unset relation
// resolves to null.
func (r *catResolver) FavBrother(ctx context.Context) (*catResolver, error) {
	brother, err := r.core.FavBrother(ctx, r.c)
	if err != nil {
		return nil, err
	}
	if brother == nil {
		return nil, nil
	}
	return &catResolver{core: r.core, c: brother}, nil
}
