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

// Package tui implements the flashcard terminal user interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/ianlewis/go-bgvocab/deck"
)

// View shows a deck one card at a time.
type View struct {
	app  *tview.Application
	root *tview.Flex
	deck *deck.Deck

	word        *tview.TextView
	translation *tview.TextView
	help        *tview.TextView
}

// New returns a View over the deck. vocabSize is the size of the whole
// vocabulary and is shown in the help pane.
func New(d *deck.Deck, vocabSize int) *View {
	v := &View{
		app:         tview.NewApplication(),
		deck:        d,
		word:        newPane(""),
		translation: newPane(""),
		help:        newPane("Help"),
	}

	v.help.SetText(helpText(vocabSize))

	v.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(v.word, 0, 1, false).
		AddItem(v.translation, 0, 5, false).
		AddItem(v.help, 0, 3, false)

	v.app.SetInputCapture(v.handleKey)
	v.render(d.Current())

	return v
}

func newPane(title string) *tview.TextView {
	tv := tview.NewTextView().
		SetWrap(true).
		SetWordWrap(true)
	tv.SetBorder(true)
	tv.SetTitle(title)
	return tv
}

func helpText(vocabSize int) string {
	return strings.Join([]string{
		"",
		fmt.Sprintf(" Vocabulary size: %d words", vocabSize),
		"",
		" Press:",
		"  <Enter> to see the next word",
		"  <Backspace> to see the previous word",
		"  q to exit",
	}, "\n")
}

// Run runs the interface until the user quits. A nil screen uses the
// terminal.
func (v *View) Run(screen tcell.Screen) error {
	if screen != nil {
		v.app.SetScreen(screen)
	}
	if err := v.app.SetRoot(v.root, true).Run(); err != nil {
		return fmt.Errorf("running flashcards: %w", err)
	}
	return nil
}

// Stop stops the interface.
func (v *View) Stop() {
	v.app.Stop()
}

func (v *View) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEnter:
		v.render(v.deck.Next())
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.render(v.deck.Prev())
		return nil
	case tcell.KeyEsc:
		v.app.Stop()
		return nil
	case tcell.KeyRune:
		if event.Rune() == 'q' {
			v.app.Stop()
			return nil
		}
	}
	return event
}

func (v *View) render(c deck.Card) {
	v.word.SetText(fmt.Sprintf(" [%d/%d] \n\n %s\n", c.Position, c.Total, c.Stressed))
	v.translation.SetText("\n " + strings.ReplaceAll(c.Translation, "\n", "\n "))
}
