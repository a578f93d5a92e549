// Package cat defines the persisted record types for the cat registry.
// Cats belong to a master and may point at another cat as their favorite
// brother. The structs double as the gorm datamodel.
package cat

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Cat is a registered cat. The favorite-brother relation is nullable and
// not symmetric: nothing enforces that the brother points back.
type Cat struct {
	// ID is the unique NanoID identifier.
	ID string `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"not null" json:"name"`
	Color string `gorm:"not null" json:"color"`

	// MasterID is the owning master. Every cat has exactly one.
	MasterID string `gorm:"index;not null" json:"master_id"`

	// FavBrotherID is the optional favorite brother. Nil means none.
	FavBrotherID *string `json:"fav_brother_id,omitempty"`
	FavBrother   *Cat    `gorm:"foreignKey:FavBrotherID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Master owns a collection of cats. The API exposes it as SpecialMaster,
// a projection of the id plus the owned cats; there is no extra state here.
type Master struct {
	ID string `gorm:"primaryKey" json:"id"`

	Cats []Cat `gorm:"foreignKey:MasterID" json:"cats,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasFavBrother returns true if the cat has a favorite brother set.
func (c *Cat) HasFavBrother() bool {
	return c.FavBrotherID != nil && *c.FavBrotherID != ""
}

// namePattern matches valid cat names: letters, numbers, spaces, and a few
// common punctuation characters. Must start with a letter.
var namePattern = regexp.MustCompile(`^[\p{L}][\p{L}\p{N} .'-]*$`)

// ValidateName checks if a cat name is acceptable.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must start with a letter and contain only letters, numbers, spaces, and basic punctuation", name)
	}
	return nil
}

// NormalizeColor converts a color to its canonical form (lowercase, trimmed).
func NormalizeColor(color string) string {
	return strings.ToLower(strings.TrimSpace(color))
}
