package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/whiskerworks/catnip/internal/cat"
	"github.com/whiskerworks/catnip/internal/catcore"
)

// Resolver is the root resolver for the GraphQL schema.
// It holds a reference to catcore.Core for data access; the same value is
// shared by every request for the lifetime of the process.
type Resolver struct {
	Core *catcore.Core
}

// Masters resolves the masters query.
func (r *Resolver) Masters(ctx context.Context) ([]*specialMasterResolver, error) {
	masters, err := r.Core.Masters(ctx)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*specialMasterResolver, 0, len(masters))
	for _, m := range masters {
		resolvers = append(resolvers, &specialMasterResolver{core: r.Core, m: m})
	}
	return resolvers, nil
}

// Master resolves the master query. Unknown IDs resolve to null.
func (r *Resolver) Master(ctx context.Context, args struct{ ID graphql.ID }) (*specialMasterResolver, error) {
	m, err := r.Core.Master(ctx, string(args.ID))
	if err == catcore.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &specialMasterResolver{core: r.Core, m: m}, nil
}

// Cats resolves the cats query.
func (r *Resolver) Cats(ctx context.Context) ([]*catResolver, error) {
	cats, err := r.Core.Cats(ctx)
	if err != nil {
		return nil, err
	}
	return wrapCats(r.Core, cats), nil
}

// Cat resolves the cat query. Unknown IDs resolve to null.
func (r *Resolver) Cat(ctx context.Context, args struct{ ID graphql.ID }) (*catResolver, error) {
	ct, err := r.Core.Cat(ctx, string(args.ID))
	if err == catcore.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &catResolver{core: r.Core, c: ct}, nil
}

// SearchCats resolves the searchCats query.
func (r *Resolver) SearchCats(ctx context.Context, args struct{ Term string }) ([]*catResolver, error) {
	cats, err := r.Core.SearchCats(ctx, args.Term)
	if err != nil {
		return nil, err
	}
	return wrapCats(r.Core, cats), nil
}

// createCatInput mirrors the CreateCatInput schema type.
type createCatInput struct {
	Name         string
	Color        string
	MasterID     graphql.ID
	FavBrotherID *graphql.ID
}

// nestedCatInput mirrors the NestedCatInput schema type.
type nestedCatInput struct {
	Name         string
	Color        string
	FavBrotherID *graphql.ID
}

// createMasterInput mirrors the CreateMasterInput schema type.
type createMasterInput struct {
	Cats *[]nestedCatInput
}

// CreateMaster resolves the createMaster mutation.
func (r *Resolver) CreateMaster(ctx context.Context, args struct{ Input createMasterInput }) (*specialMasterResolver, error) {
	var inputs []catcore.CatInput
	if args.Input.Cats != nil {
		for _, in := range *args.Input.Cats {
			inputs = append(inputs, catcore.CatInput{
				Name:         in.Name,
				Color:        in.Color,
				FavBrotherID: idPtr(in.FavBrotherID),
			})
		}
	}

	m, err := r.Core.CreateMaster(ctx, inputs)
	if err != nil {
		return nil, err
	}
	return &specialMasterResolver{core: r.Core, m: m}, nil
}

// CreateCat resolves the createCat mutation.
func (r *Resolver) CreateCat(ctx context.Context, args struct{ Input createCatInput }) (*catResolver, error) {
	ct, err := r.Core.CreateCat(ctx, catcore.CatInput{
		Name:         args.Input.Name,
		Color:        args.Input.Color,
		MasterID:     string(args.Input.MasterID),
		FavBrotherID: idPtr(args.Input.FavBrotherID),
	})
	if err != nil {
		return nil, err
	}
	return &catResolver{core: r.Core, c: ct}, nil
}

// SetFavBrother resolves the setFavBrother mutation.
func (r *Resolver) SetFavBrother(ctx context.Context, args struct {
	CatID     graphql.ID
	BrotherID *graphql.ID
}) (*catResolver, error) {
	ct, err := r.Core.SetFavBrother(ctx, string(args.CatID), idPtr(args.BrotherID))
	if err != nil {
		return nil, err
	}
	return &catResolver{core: r.Core, c: ct}, nil
}

// DeleteCat resolves the deleteCat mutation.
func (r *Resolver) DeleteCat(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	if err := r.Core.DeleteCat(ctx, string(args.ID)); err != nil {
		return false, err
	}
	return true, nil
}

// idPtr converts an optional graphql.ID argument to the plain string
// pointer the core expects.
func idPtr(id *graphql.ID) *string {
	if id == nil {
		return nil
	}
	s := string(*id)
	return &s
}

// wrapCats wraps core records in their field resolvers.
func wrapCats(core *catcore.Core, cats []*cat.Cat) []*catResolver {
	resolvers := make([]*catResolver, 0, len(cats))
	for _, c := range cats {
		resolvers = append(resolvers, &catResolver{core: core, c: c})
	}
	return resolvers
}
