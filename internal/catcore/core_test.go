package catcore

import (
	"context"
	"errors"
	"testing"

	"github.com/whiskerworks/catnip/internal/cat"
	"github.com/whiskerworks/catnip/internal/config"
)

func setupTestCore(t *testing.T) *Core {
	t.Helper()

	core, err := Open(t.TempDir(), config.Default())
	if err != nil {
		t.Fatalf("failed to open core: %v", err)
	}
	t.Cleanup(func() { core.Close() })

	return core
}

func createTestMaster(t *testing.T, core *Core, cats ...CatInput) *cat.Master {
	t.Helper()

	m, err := core.CreateMaster(context.Background(), cats)
	if err != nil {
		t.Fatalf("failed to create test master: %v", err)
	}
	return m
}

func TestCreateMaster(t *testing.T) {
	core := setupTestCore(t)
	ctx := context.Background()

	t.Run("with nested cats", func(t *testing.T) {
		m := createTestMaster(t, core,
			CatInput{Name: "Garfield", Color: "ginger"},
			CatInput{Name: "Azrael", Color: "tuxedo"},
		)

		if m.ID == "" {
			t.Fatal("master has empty ID")
		}
		if len(m.Cats) != 2 {
			t.Fatalf("master has %d cats, want 2", len(m.Cats))
		}
		for _, c := range m.Cats {
			if c.MasterID != m.ID {
				t.Errorf("cat %s has master %q, want %q", c.Name, c.MasterID, m.ID)
			}
		}
	})

	t.Run("without cats", func(t *testing.T) {
		m := createTestMaster(t, core)

		cats, err := core.CatsByMaster(ctx, m.ID)
		if err != nil {
			t.Fatalf("CatsByMaster() error = %v", err)
		}
		if len(cats) != 0 {
			t.Errorf("new master has %d cats, want 0", len(cats))
		}
	})

	t.Run("invalid color rejected", func(t *testing.T) {
		_, err := core.CreateMaster(ctx, []CatInput{{Name: "Plaid", Color: "plaid"}})
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("CreateMaster() error = %v, want ErrInvalidColor", err)
		}
	})

	t.Run("unknown brother rejected", func(t *testing.T) {
		ghost := "nope1234"
		_, err := core.CreateMaster(ctx, []CatInput{{Name: "Sad", Color: "black", FavBrotherID: &ghost}})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("CreateMaster() error = %v, want ErrNotFound", err)
		}
	})
}

func TestMasterLookup(t *testing.T) {
	core := setupTestCore(t)
	ctx := context.Background()

	m := createTestMaster(t, core, CatInput{Name: "Salem", Color: "black"})

	t.Run("found", func(t *testing.T) {
		got, err := core.Master(ctx, m.ID)
		if err != nil {
			t.Fatalf("Master() error = %v", err)
		}
		if got.ID != m.ID {
			t.Errorf("Master().ID = %q, want %q", got.ID, m.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := core.Master(ctx, "nonexistent")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Master() error = %v, want ErrNotFound", err)
		}
	})
}

func TestMastersPreloadCats(t *testing.T) {
	core := setupTestCore(t)
	ctx := context.Background()

	createTestMaster(t, core, CatInput{Name: "Tom", Color: "gray"}, CatInput{Name: "Butch", Color: "black"})
	createTestMaster(t, core, CatInput{Name: "Felix", Color: "tuxedo"})

	masters, err := core.Masters(ctx)
	if err != nil {
		t.Fatalf("Masters() error = %v", err)
	}
	if len(masters) != 2 {
		t.Fatalf("Masters() count = %d, want 2", len(masters))
	}

	total := 0
	for _, m := range masters {
		total += len(m.Cats)
	}
	if total != 3 {
		t.Errorf("total preloaded cats = %d, want 3", total)
	}
}

func TestCreateCat(t *testing.T) {
	core := setupTestCore(t)
	ctx := context.Background()

	m := createTestMaster(t, core)

	t.Run("creates under master", func(t *testing.T) {
		c, err := core.CreateCat(ctx, CatInput{Name: "Whiskers", Color: "white", MasterID: m.ID})
		if err != nil {
			t.Fatalf("CreateCat() error = %v", err)
		}
		if c.MasterID != m.ID {
			t.Errorf("MasterID = %q, want %q", c.MasterID, m.ID)
		}

		got, err := core.Cat(ctx, c.ID)
		if err != nil {
			t.Fatalf("Cat() error = %v", err)
		}
		if got.Name != "Whiskers" {
			t.Errorf("Name = %q, want %q", got.Name, "Whiskers")
		}
	})

	t.Run("normalizes color", func(t *testing.T) {
		c, err := core.CreateCat(ctx, CatInput{Name: "Shadow", Color: "  BLACK ", MasterID: m.ID})
		if err != nil {
			t.Fatalf("CreateCat() error = %v", err)
		}
		if c.Color != "black" {
			t.Errorf("Color = %q, want %q", c.Color, "black")
		}
	})

	t.Run("unknown master rejected", func(t *testing.T) {
		_, err := core.CreateCat(ctx, CatInput{Name: "Lost", Color: "gray", MasterID: "nope"})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("CreateCat() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := core.CreateCat(ctx, CatInput{Name: "", Color: "gray", MasterID: m.ID})
		if err == nil {
			t.Error("CreateCat() with empty name should fail")
		}
	})
}

func TestCatsByMaster(t *testing.T) {
	core := setupTestCore(t)
	ctx := context.Background()

	m1 := createTestMaster(t, core,
		CatInput{Name: "Tom", Color: "gray"},
		CatInput{Name: "Butch", Color: "black"},
	)
	m2 := createTestMaster(t, core, CatInput{Name: "Felix", Color: "tuxedo"})

	cats, err := core.CatsByMaster(ctx, m1.ID)
	if err != nil {
		t.Fatalf("CatsByMaster() error = %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("CatsByMaster() count = %d, want 2", len(cats))
	}

	names := map[string]bool{}
	for _, c := range cats {
		names[c.Name] = true
	}
	if !names["Tom"] || !names["Butch"] {
		t.Errorf("CatsByMaster() names = %v, want Tom and Butch", names)
	}

	cats, err = core.CatsByMaster(ctx, m2.ID)
	if err != nil {
		t.Fatalf("CatsByMaster() error = %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "Felix" {
		t.Errorf("CatsByMaster() = %v, want just Felix", cats)
	}
}

func TestSetFavBrother(t *testing.T) {
	core := setupTestCore(t)
	ctx := context.Background()

	m := createTestMaster(t, core,
		CatInput{Name: "A", Color: "black"},
		CatInput{Name: "B", Color: "white"},
	)
	a, b := m.Cats[0], m.Cats[1]

	t.Run("links one way", func(t *testing.T) {
		got, err := core.SetFavBrother(ctx, a.ID, &b.ID)
		if err != nil {
			t.Fatalf("SetFavBrother() error = %v", err)
		}
		if got.FavBrotherID == nil || *got.FavBrotherID != b.ID {
			t.Errorf("FavBrotherID = %v, want %q", got.FavBrotherID, b.ID)
		}

		// The relation is not symmetric
		gotB, err := core.Cat(ctx, b.ID)
		if err != nil {
			t.Fatalf("Cat() error = %v", err)
		}
		if gotB.HasFavBrother() {
			t.Error("B should not have a favorite brother")
		}
	})

	t.Run("resolves brother", func(t *testing.T) {
		gotA, err := core.Cat(ctx, a.ID)
		if err != nil {
			t.Fatalf("Cat() error = %v", err)
		}
		brother, err := core.FavBrother(ctx, gotA)
		if err != nil {
			t.Fatalf("FavBrother() error = %v", err)
		}
		if brother == nil || brother.ID != b.ID {
			t.Errorf("FavBrother() = %v, want %s", brother, b.ID)
		}
	})

	t.Run("clears with nil", func(t *testing.T) {
		got, err := core.SetFavBrother(ctx, a.ID, nil)
		if err != nil {
			t.Fatalf("SetFavBrother() error = %v", err)
		}
		if got.HasFavBrother() {
			t.Error("FavBrotherID should be cleared")
		}

		gotA, err := core.Cat(ctx, a.ID)
		if err != nil {
			t.Fatalf("Cat() error = %v", err)
		}
		if gotA.HasFavBrother() {
			t.Error("cleared relation should persist")
		}
	})

	t.Run("self rejected", func(t *testing.T) {
		_, err := core.SetFavBrother(ctx, a.ID, &a.ID)
		if !errors.Is(err, ErrSelfBrother) {
			t.Errorf("SetFavBrother() error = %v, want ErrSelfBrother", err)
		}
	})

	t.Run("unknown brother rejected", func(t *testing.T) {
		ghost := "nope1234"
		_, err := core.SetFavBrother(ctx, a.ID, &ghost)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("SetFavBrother() error = %v, want ErrNotFound", err)
		}
	})
}

func TestFavBrotherUnset(t *testing.T) {
	core := setupTestCore(t)
	ctx := context.Background()

	m := createTestMaster(t, core, CatInput{Name: "Loner", Color: "gray"})

	brother, err := core.FavBrother(ctx, &m.Cats[0])
	if err != nil {
		t.Fatalf("FavBrother() error = %v", err)
	}
	if brother != nil {
		t.Errorf("FavBrother() = %v, want nil", brother)
	}
}

func TestAdmirers(t *testing.T) {
	core := setupTestCore(t)
	ctx := context.Background()

	m := createTestMaster(t, core,
		CatInput{Name: "Star", Color: "ginger"},
		CatInput{Name: "Fan1", Color: "black"},
		CatInput{Name: "Fan2", Color: "white"},
	)
	star := m.Cats[0]

	for _, fan := range m.Cats[1:] {
		if _, err := core.SetFavBrother(ctx, fan.ID, &star.ID); err != nil {
			t.Fatalf("SetFavBrother() error = %v", err)
		}
	}

	admirers, err := core.Admirers(ctx, star.ID)
	if err != nil {
		t.Fatalf("Admirers() error = %v", err)
	}
	if len(admirers) != 2 {
		t.Errorf("Admirers() count = %d, want 2", len(admirers))
	}
}

func TestDeleteCat(t *testing.T) {
	core := setupTestCore(t)
	ctx := context.Background()

	m := createTestMaster(t, core,
		CatInput{Name: "Doomed", Color: "black"},
		CatInput{Name: "Mourner", Color: "gray"},
	)
	doomed, mourner := m.Cats[0], m.Cats[1]

	if _, err := core.SetFavBrother(ctx, mourner.ID, &doomed.ID); err != nil {
		t.Fatalf("SetFavBrother() error = %v", err)
	}

	if err := core.DeleteCat(ctx, doomed.ID); err != nil {
		t.Fatalf("DeleteCat() error = %v", err)
	}

	t.Run("record gone", func(t *testing.T) {
		_, err := core.Cat(ctx, doomed.ID)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Cat() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("references cleared", func(t *testing.T) {
		got, err := core.Cat(ctx, mourner.ID)
		if err != nil {
			t.Fatalf("Cat() error = %v", err)
		}
		if got.HasFavBrother() {
			t.Errorf("mourner still references deleted cat: %v", *got.FavBrotherID)
		}
	})

	t.Run("delete unknown", func(t *testing.T) {
		err := core.DeleteCat(ctx, "nonexistent")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("DeleteCat() error = %v, want ErrNotFound", err)
		}
	})
}

func TestSearchCats(t *testing.T) {
	core := setupTestCore(t)
	ctx := context.Background()

	m := createTestMaster(t, core,
		CatInput{Name: "Garfield", Color: "ginger"},
		CatInput{Name: "Azrael", Color: "tuxedo"},
	)

	t.Run("by name", func(t *testing.T) {
		cats, err := core.SearchCats(ctx, "garfield")
		if err != nil {
			t.Fatalf("SearchCats() error = %v", err)
		}
		if len(cats) != 1 || cats[0].Name != "Garfield" {
			t.Errorf("SearchCats() = %v, want just Garfield", cats)
		}
	})

	t.Run("by color field", func(t *testing.T) {
		cats, err := core.SearchCats(ctx, "color:tuxedo")
		if err != nil {
			t.Fatalf("SearchCats() error = %v", err)
		}
		if len(cats) != 1 || cats[0].Name != "Azrael" {
			t.Errorf("SearchCats() = %v, want just Azrael", cats)
		}
	})

	t.Run("no match", func(t *testing.T) {
		cats, err := core.SearchCats(ctx, "dog")
		if err != nil {
			t.Fatalf("SearchCats() error = %v", err)
		}
		if len(cats) != 0 {
			t.Errorf("SearchCats() = %v, want empty", cats)
		}
	})

	t.Run("deleted cats drop out", func(t *testing.T) {
		if err := core.DeleteCat(ctx, m.Cats[0].ID); err != nil {
			t.Fatalf("DeleteCat() error = %v", err)
		}
		cats, err := core.SearchCats(ctx, "garfield")
		if err != nil {
			t.Fatalf("SearchCats() error = %v", err)
		}
		if len(cats) != 0 {
			t.Errorf("SearchCats() = %v, want empty after delete", cats)
		}
	})
}

func TestConfigSwap(t *testing.T) {
	core := setupTestCore(t)
	ctx := context.Background()

	m := createTestMaster(t, core)

	newCfg := config.Default()
	newCfg.Colors = []config.ColorConfig{{Name: "void", Display: "purple"}}
	core.SetConfig(newCfg)

	if _, err := core.CreateCat(ctx, CatInput{Name: "Nyx", Color: "void", MasterID: m.ID}); err != nil {
		t.Errorf("CreateCat() with new color = %v, want nil", err)
	}
	if _, err := core.CreateCat(ctx, CatInput{Name: "Old", Color: "ginger", MasterID: m.ID}); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("CreateCat() with old color = %v, want ErrInvalidColor", err)
	}
}
