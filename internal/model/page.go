package model

import "fmt"

// Page is a 1-based page index within a fixed-size sequence of pages. The
// zero value is invalid; construct pages with NewPage.
type Page struct {
	Number int
	Count  int
}

// NewPage returns the page numbered number out of count total pages. It
// rejects numbers outside [1, count].
func NewPage(number, count int) (Page, error) {
	if count < 1 {
		return Page{}, fmt.Errorf("page count must be at least 1, got %d", count)
	}

	if number < 1 || number > count {
		return Page{}, fmt.Errorf("page number %d outside [1, %d]", number, count)
	}

	return Page{Number: number, Count: count}, nil
}

// SinglePage is the whole sequence as one page.
func SinglePage() Page {
	return Page{Number: 1, Count: 1}
}

// IsFirst reports whether p is the first page.
func (p Page) IsFirst() bool { return p.Number == 1 }

// IsLast reports whether p is the last page.
func (p Page) IsLast() bool { return p.Number == p.Count }

// Index is the 0-based position of the page.
func (p Page) Index() int { return p.Number - 1 }

func (p Page) String() string {
	return fmt.Sprintf("%d/%d", p.Number, p.Count)
}
