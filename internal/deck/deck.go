// Package deck persists the flashcard collection in the key-value store.
package deck

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/avelis/mnemo/internal/card"
	"github.com/avelis/mnemo/internal/store"
)

// StorageKey is the key-value entry holding every flashcard.
const StorageKey = "cards"

var (
	ErrNotFound  = errors.New("deck: card not found")
	ErrDuplicate = errors.New("deck: card already exists")
)

// Deck is the full card collection, loaded once and written back on
// every mutation.
type Deck struct {
	kv    store.KV
	cards map[string]card.Flashcard
}

// Open loads the deck from the store. A missing entry yields an empty
// deck.
func Open(ctx context.Context, kv store.KV) (*Deck, error) {
	d := &Deck{kv: kv, cards: make(map[string]card.Flashcard)}
	var list []card.Flashcard
	found, err := kv.Load(ctx, StorageKey, &list)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}
	if found {
		for _, c := range list {
			d.cards[c.ID] = c
		}
	}
	return d, nil
}

// Add inserts a new card and persists the deck.
func (d *Deck) Add(ctx context.Context, c card.Flashcard) error {
	if c.ID == "" || c.Front == "" || c.Back == "" {
		return fmt.Errorf("deck: card needs an ID, front, and back")
	}
	if !c.Difficulty.IsValid() {
		return fmt.Errorf("deck: %w %d", card.ErrInvalidDifficulty, c.Difficulty)
	}
	if _, exists := d.cards[c.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, c.ID)
	}
	d.cards[c.ID] = c
	return d.save(ctx)
}

// Put replaces an existing card, typically after a review updated its
// scheduling state.
func (d *Deck) Put(ctx context.Context, c card.Flashcard) error {
	if _, exists := d.cards[c.ID]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, c.ID)
	}
	d.cards[c.ID] = c
	return d.save(ctx)
}

// Remove deletes a card and persists the deck.
func (d *Deck) Remove(ctx context.Context, id string) error {
	if _, exists := d.cards[id]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(d.cards, id)
	return d.save(ctx)
}

// Get returns the card with the given ID.
func (d *Deck) Get(id string) (card.Flashcard, bool) {
	c, ok := d.cards[id]
	return c, ok
}

// Cards returns every card ordered by creation time, then ID.
func (d *Deck) Cards() []card.Flashcard {
	out := make([]card.Flashcard, 0, len(d.cards))
	for _, c := range d.cards {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Subject returns the cards belonging to one subject, in Cards order.
func (d *Deck) Subject(subjectID string) []card.Flashcard {
	var out []card.Flashcard
	for _, c := range d.Cards() {
		if c.SubjectID == subjectID {
			out = append(out, c)
		}
	}
	return out
}

// Len reports the number of cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) save(ctx context.Context) error {
	list := d.Cards()
	if err := d.kv.Save(ctx, StorageKey, list); err != nil {
		return fmt.Errorf("save deck: %w", err)
	}
	return nil
}
