// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package deck implements a flashcard deck over a batch of vocabulary
// entries.
//
// The deck keeps a cursor over two half steps per card: the word and then the
// word with its translation. In quiz mode each step moves one half step so the
// translation is revealed only on the second press. Otherwise each step moves
// a whole card and the translation is always shown.
package deck

import (
	"errors"
	"strings"

	"github.com/k3a/html2text"

	"github.com/ianlewis/go-bgvocab/vocab"
)

// ErrEmpty indicates that a deck has no cards.
var ErrEmpty = errors.New("no words in this range")

// Options are options for a Deck.
type Options struct {
	// Quiz hides the translation until the card is turned.
	Quiz bool

	// Repeat is the number of times the batch is repeated in the deck. Values
	// below 2 include the batch once.
	Repeat int
}

// DefaultOptions are the default deck options.
var DefaultOptions = Options{
	Quiz:   false,
	Repeat: 1,
}

// Card is the face of the card at the deck's cursor.
type Card struct {
	// Position is the 1-based position of the card in the deck.
	Position int

	// Total is the number of cards in the deck.
	Total int

	// Key is the headword without stress marks.
	Key string

	// Stressed is the headword with drawn stress marks.
	Stressed string

	// Translation is the flattened translation. It is empty while the card is
	// not revealed.
	Translation string

	// Revealed is true if the translation is shown.
	Revealed bool
}

// Deck is a cursor over flashcards. Deck is not safe for concurrent use.
type Deck struct {
	cards []*vocab.Entry
	quiz  bool
	pos   int
}

// New returns a new deck over the batch's entries. A nil opts uses
// DefaultOptions.
func New(b *vocab.Batch, opts *Options) (*Deck, error) {
	if b == nil || b.Empty() {
		return nil, ErrEmpty
	}
	if opts == nil {
		opts = &DefaultOptions
	}

	cards := append([]*vocab.Entry(nil), b.Entries...)
	for i := 1; i < opts.Repeat; i++ {
		cards = append(cards, b.Entries...)
	}

	return &Deck{
		cards: cards,
		quiz:  opts.Quiz,
	}, nil
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) step() int {
	if d.quiz {
		return 1
	}
	return 2
}

// Next moves the cursor forward, wrapping around at the end, and returns the
// new current card.
func (d *Deck) Next() Card {
	d.pos = (d.pos + d.step()) % (2 * len(d.cards))
	return d.Current()
}

// Prev moves the cursor back, wrapping around at the start, and returns the
// new current card.
func (d *Deck) Prev() Card {
	if d.pos == 0 {
		d.pos = 2*len(d.cards) - d.step()
	} else {
		d.pos = (d.pos - d.step()) % (2 * len(d.cards))
	}
	return d.Current()
}

// Current returns the card at the cursor.
func (d *Deck) Current() Card {
	i := d.pos / 2
	e := d.cards[i]
	c := Card{
		Position: i + 1,
		Total:    len(d.cards),
		Key:      e.Key,
		Stressed: e.Stressed(),
		Revealed: !d.quiz || d.pos%2 == 1,
	}
	if c.Revealed {
		c.Translation = Flatten(e.Translations)
	}
	return c
}

// Flatten converts HTML translations to plain text, one translation per line.
func Flatten(translations []string) string {
	lines := make([]string, 0, len(translations))
	for _, t := range translations {
		if text := strings.TrimSpace(html2text.HTML2Text(t)); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}
