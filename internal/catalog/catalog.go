package catalog

import (
	"fmt"
	"strings"
)

// Category is a named, ordered group of cards.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Card is a single flashcard. A card belongs to exactly one category;
// ownership is by membership in the catalog, not a back-reference.
type Card struct {
	ID         string    `json:"id"`
	Value      string    `json:"value"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	Emoji      string    `json:"emoji"`
	Image      string    `json:"image,omitempty"`
	Audio      string    `json:"audio,omitempty"`
	AudioLabel string    `json:"audioLabel,omitempty"`
	Colors     [2]string `json:"colors"`
}

// SpokenText returns the text to synthesize for the card: the audio label,
// falling back to the subtitle, then to "{value} {title}".
func (c Card) SpokenText() string {
	if c.AudioLabel != "" {
		return c.AudioLabel
	}
	if c.Subtitle != "" {
		return c.Subtitle
	}
	return fmt.Sprintf("%s %s", c.Value, c.Title)
}

// Catalog is an immutable, ordered set of categories and their cards.
// Category order defines the global traversal order.
type Catalog struct {
	categories []Category
	cards      map[string][]Card
}

var defaultColors = [2]string{"#fde7ef", "#e9f6ff"}

// New builds a catalog from ordered category definitions and a mapping of
// category id to ordered cards. Structurally invalid entries are dropped
// rather than reported: categories with empty or duplicate ids, cards with
// empty or duplicate ids within their category. Cards missing a color pair
// get calm defaults.
func New(categories []Category, cardsByCategory map[string][]Card) *Catalog {
	c := &Catalog{cards: make(map[string][]Card)}

	seen := make(map[string]bool)
	for _, category := range categories {
		if category.ID == "" || seen[category.ID] {
			continue
		}
		seen[category.ID] = true
		c.categories = append(c.categories, category)

		var cards []Card
		cardSeen := make(map[string]bool)
		for _, card := range cardsByCategory[category.ID] {
			if card.ID == "" || cardSeen[card.ID] {
				continue
			}
			cardSeen[card.ID] = true
			if card.Colors[0] == "" || card.Colors[1] == "" {
				card.Colors = defaultColors
			}
			cards = append(cards, card)
		}
		c.cards[category.ID] = cards
	}

	return c
}

// Categories returns the ordered category definitions.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Category looks up a category definition by id.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, category := range c.categories {
		if category.ID == id {
			return category, true
		}
	}
	return Category{}, false
}

// Cards returns the ordered cards of a category. Unknown ids yield nil.
func (c *Catalog) Cards(categoryID string) []Card {
	return c.cards[categoryID]
}

// Card looks up a card by category and card id.
func (c *Catalog) Card(categoryID, cardID string) (Card, bool) {
	for _, card := range c.cards[categoryID] {
		if card.ID == cardID {
			return card, true
		}
	}
	return Card{}, false
}

// CardCount returns the number of cards in a category (0 for unknown ids).
func (c *Catalog) CardCount(categoryID string) int {
	return len(c.cards[categoryID])
}

// TotalCardCount returns the number of cards across all categories.
func (c *Catalog) TotalCardCount() int {
	total := 0
	for _, cards := range c.cards {
		total += len(cards)
	}
	return total
}

// NonEmptyCategoryIDs returns, in catalog order, the ids of categories with
// at least one card. Empty categories are never navigation targets.
func (c *Catalog) NonEmptyCategoryIDs() []string {
	var ids []string
	for _, category := range c.categories {
		if len(c.cards[category.ID]) > 0 {
			ids = append(ids, category.ID)
		}
	}
	return ids
}

// FirstNonEmptyCategory returns the id of the first category with cards.
func (c *Catalog) FirstNonEmptyCategory() (string, bool) {
	for _, category := range c.categories {
		if len(c.cards[category.ID]) > 0 {
			return category.ID, true
		}
	}
	return "", false
}

// FavoriteKey builds the composite key marking a starred card.
func FavoriteKey(categoryID, cardID string) string {
	return categoryID + ":" + cardID
}

// SplitFavoriteKey splits a composite favorite key back into its parts.
// The card id may itself contain colons; the category id may not.
func SplitFavoriteKey(key string) (categoryID, cardID string, ok bool) {
	i := strings.Index(key, ":")
	if i <= 0 || i == len(key)-1 {
		return "", "", false
	}
	return key[:i], key[i+1:], true
}
