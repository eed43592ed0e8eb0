// Package drill runs retyping sessions over passages loaded from TOML books.
package drill

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
)

//go:embed passages.toml
var bundled string

var ErrNoPassages = errors.New("drill: book has no passages")

// Passage is one text to retype. Layout optionally names the keyboard
// layout the passage expects.
type Passage struct {
	Title  string `toml:"title"`
	Text   string `toml:"text"`
	Layout string `toml:"layout"`
}

// Lines returns the passage split into target lines.
func (p Passage) Lines() []string {
	return strings.Split(p.Target(), "\n")
}

// Target is the text as the tracker grades it: surrounding blank lines and
// trailing spaces are dropped.
func (p Passage) Target() string {
	lines := strings.Split(strings.Trim(p.Text, "\r\n"), "\n")
	lines = lo.Map(lines, func(line string, _ int) string {
		return strings.TrimRight(line, " \t\r")
	})
	return strings.Join(lines, "\n")
}

type Book struct {
	Passages []Passage `toml:"passage"`
}

// ParseBook decodes a book and rejects passages with no text.
func ParseBook(data string) (*Book, error) {
	var book Book
	if _, err := toml.Decode(data, &book); err != nil {
		return nil, fmt.Errorf("drill: parse book: %w", err)
	}
	if len(book.Passages) == 0 {
		return nil, ErrNoPassages
	}
	for i, p := range book.Passages {
		if strings.TrimSpace(p.Text) == "" {
			return nil, fmt.Errorf("drill: passage %d (%q) has no text", i+1, p.Title)
		}
		if p.Title == "" {
			book.Passages[i].Title = fmt.Sprintf("passage %d", i+1)
		}
	}
	return &book, nil
}

// LoadBook reads a book from path. An empty path yields the bundled book.
func LoadBook(path string) (*Book, error) {
	if path == "" {
		return DefaultBook(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("drill: read book: %w", err)
	}
	return ParseBook(string(data))
}

func DefaultBook() *Book {
	book, err := ParseBook(bundled)
	if err != nil {
		panic(err)
	}
	return book
}

// Find looks a passage up by title, ignoring case.
func (b *Book) Find(title string) (Passage, bool) {
	return lo.Find(b.Passages, func(p Passage) bool {
		return strings.EqualFold(p.Title, strings.TrimSpace(title))
	})
}

// At returns passage i, wrapping around the book.
func (b *Book) At(i int) Passage {
	n := len(b.Passages)
	return b.Passages[((i%n)+n)%n]
}

func (b *Book) Titles() []string {
	return lo.Map(b.Passages, func(p Passage, _ int) string { return p.Title })
}
