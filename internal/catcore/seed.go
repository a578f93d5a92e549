package catcore

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/whiskerworks/catnip/internal/cat"
)

// SeedFile describes masters and their nested cats to create. Favorite
// brothers are referenced by name within the same master, since IDs don't
// exist until the cats are created.
type SeedFile struct {
	Masters []SeedMaster `yaml:"masters"`
}

// SeedMaster is one master with its nested cats.
type SeedMaster struct {
	Cats []SeedCat `yaml:"cats"`
}

// SeedCat is one cat to create under a seed master.
type SeedCat struct {
	Name       string `yaml:"name"`
	Color      string `yaml:"color"`
	FavBrother string `yaml:"fav_brother,omitempty"`
}

// ParseSeed reads a seed document from a reader.
func ParseSeed(r io.Reader) (*SeedFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading seed: %w", err)
	}

	var sf SeedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}

	for mi, m := range sf.Masters {
		names := make(map[string]bool, len(m.Cats))
		for _, c := range m.Cats {
			if c.Name == "" {
				return nil, fmt.Errorf("master %d: cat with empty name", mi+1)
			}
			if names[c.Name] {
				return nil, fmt.Errorf("master %d: duplicate cat name %q", mi+1, c.Name)
			}
			names[c.Name] = true
		}
		for _, c := range m.Cats {
			if c.FavBrother != "" && !names[c.FavBrother] {
				return nil, fmt.Errorf("master %d: cat %q references unknown brother %q", mi+1, c.Name, c.FavBrother)
			}
		}
	}

	return &sf, nil
}

// ApplySeed creates the masters and cats described by the seed document.
// Each master's cats are created first, then favorite-brother links are
// resolved by name and applied in a second pass.
func (c *Core) ApplySeed(ctx context.Context, sf *SeedFile) ([]*cat.Master, error) {
	masters := make([]*cat.Master, 0, len(sf.Masters))

	for _, sm := range sf.Masters {
		inputs := make([]CatInput, 0, len(sm.Cats))
		for _, sc := range sm.Cats {
			inputs = append(inputs, CatInput{Name: sc.Name, Color: sc.Color})
		}

		m, err := c.CreateMaster(ctx, inputs)
		if err != nil {
			return nil, err
		}

		byName := make(map[string]string, len(m.Cats))
		for _, ct := range m.Cats {
			byName[ct.Name] = ct.ID
		}

		for _, sc := range sm.Cats {
			if sc.FavBrother == "" {
				continue
			}
			brotherID := byName[sc.FavBrother]
			if _, err := c.SetFavBrother(ctx, byName[sc.Name], &brotherID); err != nil {
				return nil, fmt.Errorf("linking %s -> %s: %w", sc.Name, sc.FavBrother, err)
			}
		}

		// Re-read so returned masters carry the applied links.
		cats, err := c.CatsByMaster(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		m.Cats = m.Cats[:0]
		for _, ct := range cats {
			m.Cats = append(m.Cats, *ct)
		}

		masters = append(masters, m)
	}

	return masters, nil
}
