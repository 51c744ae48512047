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

package vocab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ianlewis/go-bgvocab/internal/index"
	"github.com/ianlewis/go-bgvocab/stress"
)

// MinBatchSize is the smallest batch size that is meaningful for flashcards.
const MinBatchSize = 3

var (
	// ErrBatchSize indicates that a batch size is smaller than MinBatchSize.
	ErrBatchSize = errors.New("invalid batch size")

	// ErrBatchNumber indicates a negative batch number.
	ErrBatchNumber = errors.New("invalid batch number")
)

// Entry is a single vocabulary entry.
type Entry struct {
	// Key is the headword without stress marks, in lowercase.
	Key string

	// Headword is the headword in marker encoding. Each uppercase letter is a
	// stressed letter.
	Headword string

	// Translations are the raw translations in source order. Translations is
	// never empty.
	Translations []string
}

// Stressed returns the headword in lowercase with a stress mark drawn after
// every stressed letter.
func (e *Entry) Stressed() string {
	return stress.Draw(e.Headword)
}

// String implements [fmt.Stringer].
func (e *Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Stressed(), strings.Join(e.Translations, "; "))
}

// Builder accumulates entries while a vocabulary source is read.
type Builder struct {
	entries map[string]*Entry
	order   []*Entry
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		entries: map[string]*Entry{},
	}
}

// Add adds a translation for the given headword. The headword may be in marker
// encoding or carry drawn stress marks. Translations for headwords that map to
// the same key accumulate in the order they are added. Add returns the entry
// for the headword's key. Headwords with an empty key are ignored and nil is
// returned.
func (b *Builder) Add(headword, translation string) *Entry {
	if strings.ContainsRune(headword, stress.Acute) {
		headword = stress.Encode(headword)
	}
	key := stress.Key(headword)
	if key == "" {
		return nil
	}

	if e, ok := b.entries[key]; ok {
		e.Translations = append(e.Translations, translation)
		return e
	}

	e := &Entry{
		Key:          key,
		Headword:     headword,
		Translations: []string{translation},
	}
	b.entries[key] = e
	b.order = append(b.order, e)
	return e
}

// Len returns the number of unique keys added so far.
func (b *Builder) Len() int {
	return len(b.order)
}

// Build returns the vocabulary sorted by key with the first skip entries
// removed.
func (b *Builder) Build(skip int) *Vocabulary {
	// Keys are already chill.
	idx := index.New(b.order, entryKey, strings.Compare)
	return &Vocabulary{
		idx: idx.Drop(skip),
	}
}

func entryKey(e *Entry) string {
	return e.Key
}

// Vocabulary is an immutable, sorted set of entries with unique keys.
type Vocabulary struct {
	idx *index.Index[*Entry]
}

// New returns a vocabulary containing the given entries. Entries that share a
// key are merged.
func New(entries []*Entry) *Vocabulary {
	b := NewBuilder()
	for _, e := range entries {
		for _, t := range e.Translations {
			b.Add(e.Headword, t)
		}
	}
	return b.Build(0)
}

// Len returns the number of entries.
func (v *Vocabulary) Len() int {
	return v.idx.Len()
}

// Entries returns all entries sorted by key. The returned slice must not be
// modified.
func (v *Vocabulary) Entries() []*Entry {
	return v.idx.All()
}

// Keys returns all keys in sorted order.
func (v *Vocabulary) Keys() []string {
	return keys(v.idx.All())
}

// Lookup returns the entry for the given word or nil if none exists. Stress
// marks and case in word are ignored.
func (v *Vocabulary) Lookup(word string) *Entry {
	entries := v.idx.Search(stress.Key(word))
	if len(entries) == 0 {
		return nil
	}
	return entries[0]
}

// Window returns the number-th window of size entries, that is the entries
// after skipping number*size of them, at most size of them. The window is
// empty when it lies past the end of the vocabulary or when size is not
// positive. Window does not enforce MinBatchSize.
func (v *Vocabulary) Window(number, size int) []*Entry {
	if size <= 0 || number < 0 {
		return nil
	}
	// number*size could overflow for very large batch numbers.
	if number > v.Len()/size {
		return nil
	}
	return v.idx.Window(number*size, size)
}

// Batch returns the number-th batch of size entries. A batch past the end of
// the vocabulary is empty rather than an error.
func (v *Vocabulary) Batch(number, size int) (*Batch, error) {
	if size < MinBatchSize {
		return nil, fmt.Errorf("%w: %d: must be at least %d", ErrBatchSize, size, MinBatchSize)
	}
	if number < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBatchNumber, number)
	}

	return &Batch{
		Number:  number,
		Size:    size,
		Entries: v.Window(number, size),
	}, nil
}

// Batches returns the number of batches of the given size needed to cover the
// vocabulary.
func (v *Vocabulary) Batches(size int) (int, error) {
	if size < MinBatchSize {
		return 0, fmt.Errorf("%w: %d: must be at least %d", ErrBatchSize, size, MinBatchSize)
	}
	return (v.Len() + size - 1) / size, nil
}

// Batch is a window over a vocabulary's sorted entries.
type Batch struct {
	// Number is the zero-based batch number.
	Number int

	// Size is the requested batch size. The last batch may hold fewer
	// entries.
	Size int

	// Entries are the entries in the batch.
	Entries []*Entry
}

// Empty returns true if the batch holds no entries.
func (b *Batch) Empty() bool {
	return len(b.Entries) == 0
}

// Keys returns the keys of the entries in the batch.
func (b *Batch) Keys() []string {
	return keys(b.Entries)
}

func keys(entries []*Entry) []string {
	k := make([]string, 0, len(entries))
	for _, e := range entries {
		k = append(k, e.Key)
	}
	return k
}
