// Package catcore provides the data-access layer for the cat registry: a
// gorm-backed store for masters and cats plus an in-memory search index.
// A single Core is created at startup and shared by every resolver.
package catcore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/whiskerworks/catnip/internal/cat"
	"github.com/whiskerworks/catnip/internal/config"
	"github.com/whiskerworks/catnip/internal/search"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidColor = errors.New("invalid color")
	ErrSelfBrother  = errors.New("a cat cannot be its own favorite brother")
)

// Core bundles the database handle, the configuration, and the search
// index. It is safe for concurrent use: gorm's DB is concurrency-safe,
// the bleve index is concurrency-safe, and the config pointer is guarded
// for hot-reload during serve.
type Core struct {
	root string
	db   *gorm.DB

	mu     sync.RWMutex
	config *config.Config

	index *search.Index
}

// Open connects to the project database, runs migrations, and builds the
// search index from the existing cats.
func Open(root string, cfg *config.Config) (*Core, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath(root)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.AutoMigrate(&cat.Master{}, &cat.Cat{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	idx, err := search.NewIndex()
	if err != nil {
		return nil, fmt.Errorf("creating search index: %w", err)
	}

	c := &Core{
		root:   root,
		db:     db,
		config: cfg,
		index:  idx,
	}

	if err := c.rebuildIndex(); err != nil {
		idx.Close()
		return nil, fmt.Errorf("building search index: %w", err)
	}

	return c, nil
}

// Root returns the project root directory.
func (c *Core) Root() string {
	return c.root
}

// Config returns the current configuration.
func (c *Core) Config() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// SetConfig swaps in a new configuration. Used by the serve command when
// the config file changes on disk.
func (c *Core) SetConfig(cfg *config.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.config = cfg
}

// Close releases the database connection and the search index.
func (c *Core) Close() error {
	if err := c.index.Close(); err != nil {
		return err
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// rebuildIndex reindexes every cat currently in the database.
func (c *Core) rebuildIndex() error {
	var cats []*cat.Cat
	if err := c.db.Find(&cats).Error; err != nil {
		return err
	}
	return c.index.IndexCats(cats)
}

// Masters returns all masters with their cats preloaded.
func (c *Core) Masters(ctx context.Context) ([]*cat.Master, error) {
	var masters []*cat.Master
	err := c.db.WithContext(ctx).Preload("Cats").Order("created_at, id").Find(&masters).Error
	if err != nil {
		return nil, err
	}
	return masters, nil
}

// Master finds a master by ID.
func (c *Core) Master(ctx context.Context, id string) (*cat.Master, error) {
	var m cat.Master
	err := c.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Cats returns all cats.
func (c *Core) Cats(ctx context.Context) ([]*cat.Cat, error) {
	var cats []*cat.Cat
	err := c.db.WithContext(ctx).Order("created_at, id").Find(&cats).Error
	if err != nil {
		return nil, err
	}
	return cats, nil
}

// Cat finds a cat by ID.
func (c *Core) Cat(ctx context.Context, id string) (*cat.Cat, error) {
	var ct cat.Cat
	err := c.db.WithContext(ctx).First(&ct, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

// CatsByMaster returns the cats owned by the given master. The API makes
// no ordering promise; creation order keeps output stable for the CLI.
func (c *Core) CatsByMaster(ctx context.Context, masterID string) ([]*cat.Cat, error) {
	var cats []*cat.Cat
	err := c.db.WithContext(ctx).Where("master_id = ?", masterID).Order("created_at, id").Find(&cats).Error
	if err != nil {
		return nil, err
	}
	return cats, nil
}

// FavBrother returns the favorite brother of the given cat, or nil if none
// is set. A reference left dangling by an out-of-band delete resolves to nil
// rather than an error.
func (c *Core) FavBrother(ctx context.Context, ct *cat.Cat) (*cat.Cat, error) {
	if !ct.HasFavBrother() {
		return nil, nil
	}
	brother, err := c.Cat(ctx, *ct.FavBrotherID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return brother, nil
}

// Admirers returns the cats whose favorite brother is the given cat.
// Nothing requires the relation to be mutual.
func (c *Core) Admirers(ctx context.Context, id string) ([]*cat.Cat, error) {
	var cats []*cat.Cat
	err := c.db.WithContext(ctx).Where("fav_brother_id = ?", id).Order("created_at, id").Find(&cats).Error
	if err != nil {
		return nil, err
	}
	return cats, nil
}

// CatInput holds everything needed to create a cat.
type CatInput struct {
	Name         string
	Color        string
	MasterID     string
	FavBrotherID *string
}

// validateCat checks the input fields that don't require database access.
func (c *Core) validateCat(in *CatInput) error {
	if err := cat.ValidateName(in.Name); err != nil {
		return err
	}
	in.Color = cat.NormalizeColor(in.Color)
	if !c.Config().IsValidColor(in.Color) {
		return fmt.Errorf("%w: %s (must be %s)", ErrInvalidColor, in.Color, c.Config().ColorList())
	}
	return nil
}

// CreateMaster creates a master together with its nested cats in a single
// transaction. FavBrotherID on nested inputs must reference an already
// existing cat; linking new siblings is done afterwards via SetFavBrother.
func (c *Core) CreateMaster(ctx context.Context, inputs []CatInput) (*cat.Master, error) {
	cfg := c.Config()

	for i := range inputs {
		if err := c.validateCat(&inputs[i]); err != nil {
			return nil, err
		}
	}

	m := &cat.Master{ID: cat.NewID(cfg.Cats.Prefix, cfg.Cats.IDLength)}

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}

		for i := range inputs {
			if inputs[i].FavBrotherID != nil {
				var count int64
				if err := tx.Model(&cat.Cat{}).Where("id = ?", *inputs[i].FavBrotherID).Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					return fmt.Errorf("favorite brother %s: %w", *inputs[i].FavBrotherID, ErrNotFound)
				}
			}

			ct := cat.Cat{
				ID:           cat.NewID(cfg.Cats.Prefix, cfg.Cats.IDLength),
				Name:         inputs[i].Name,
				Color:        inputs[i].Color,
				MasterID:     m.ID,
				FavBrotherID: inputs[i].FavBrotherID,
			}
			if err := tx.Create(&ct).Error; err != nil {
				return err
			}
			m.Cats = append(m.Cats, ct)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range m.Cats {
		if err := c.index.IndexCat(&m.Cats[i]); err != nil {
			return nil, fmt.Errorf("indexing cat %s: %w", m.Cats[i].ID, err)
		}
	}

	return m, nil
}

// CreateCat creates a single cat under an existing master.
func (c *Core) CreateCat(ctx context.Context, in CatInput) (*cat.Cat, error) {
	cfg := c.Config()

	if err := c.validateCat(&in); err != nil {
		return nil, err
	}
	if _, err := c.Master(ctx, in.MasterID); err != nil {
		return nil, fmt.Errorf("master %s: %w", in.MasterID, err)
	}
	if in.FavBrotherID != nil {
		if _, err := c.Cat(ctx, *in.FavBrotherID); err != nil {
			return nil, fmt.Errorf("favorite brother %s: %w", *in.FavBrotherID, err)
		}
	}

	ct := &cat.Cat{
		ID:           cat.NewID(cfg.Cats.Prefix, cfg.Cats.IDLength),
		Name:         in.Name,
		Color:        in.Color,
		MasterID:     in.MasterID,
		FavBrotherID: in.FavBrotherID,
	}

	if err := c.db.WithContext(ctx).Create(ct).Error; err != nil {
		return nil, err
	}

	if err := c.index.IndexCat(ct); err != nil {
		return nil, fmt.Errorf("indexing cat %s: %w", ct.ID, err)
	}

	return ct, nil
}

// SetFavBrother points a cat at a new favorite brother, or clears the
// relation when brotherID is nil. The relation is one-directional.
func (c *Core) SetFavBrother(ctx context.Context, catID string, brotherID *string) (*cat.Cat, error) {
	ct, err := c.Cat(ctx, catID)
	if err != nil {
		return nil, err
	}

	if brotherID != nil {
		if *brotherID == catID {
			return nil, ErrSelfBrother
		}
		if _, err := c.Cat(ctx, *brotherID); err != nil {
			return nil, fmt.Errorf("favorite brother %s: %w", *brotherID, err)
		}
	}

	err = c.db.WithContext(ctx).Model(ct).Update("fav_brother_id", brotherID).Error
	if err != nil {
		return nil, err
	}

	ct.FavBrotherID = brotherID
	return ct, nil
}

// DeleteCat removes a cat and clears any favorite-brother references that
// pointed at it, so no dangling relation survives the delete.
func (c *Core) DeleteCat(ctx context.Context, id string) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&cat.Cat{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		return tx.Model(&cat.Cat{}).Where("fav_brother_id = ?", id).Update("fav_brother_id", nil).Error
	})
	if err != nil {
		return err
	}

	return c.index.DeleteCat(id)
}

// SearchCats runs a full-text query against the index and resolves the
// hits back to cat records. Hits that have disappeared from the database
// since indexing are skipped.
func (c *Core) SearchCats(ctx context.Context, term string) ([]*cat.Cat, error) {
	ids, err := c.index.Search(term, 0)
	if err != nil {
		return nil, err
	}

	cats := make([]*cat.Cat, 0, len(ids))
	for _, id := range ids {
		ct, err := c.Cat(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		cats = append(cats, ct)
	}
	return cats, nil
}
