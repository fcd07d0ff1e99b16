// Package search provides paginated user lookup, either from the embedded
// directory or over HTTP against the users API.
package search

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

//go:embed users.json
var usersJSON []byte

// DefaultPageSize is used when a caller asks for a page size of zero or less.
const DefaultPageSize = 10

// ErrInvalidPage is returned for page numbers below 1.
var ErrInvalidPage = errors.New("search: page numbers start at 1")

// Item is one search hit as shown in a list.
type Item struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// User is a directory entry.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	VehicleModel string `json:"vehicleModel"`
}

// Item returns the list representation of u.
func (u User) Item() Item {
	return Item{Label: u.Name, Value: u.ID}
}

// Page is one page of search results.
type Page struct {
	Data    []Item
	HasMore bool
	Total   int
}

// Searcher finds users by name, one page at a time.
type Searcher interface {
	Search(ctx context.Context, term string, page, pageSize int) (Page, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// Directory is an in-memory, read-only user list.
type Directory struct {
	users []User
}

// LoadDirectory returns the directory embedded in the binary.
func LoadDirectory() (*Directory, error) {
	var doc struct {
		Users []User `json:"users"`
	}
	if err := json.Unmarshal(usersJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse embedded users: %w", err)
	}
	return NewDirectory(doc.Users), nil
}

// NewDirectory creates a directory over a copy of users.
func NewDirectory(users []User) *Directory {
	return &Directory{users: append([]User(nil), users...)}
}

// Len returns the number of users in the directory.
func (d *Directory) Len() int {
	return len(d.users)
}

func (d *Directory) matching(term string) []User {
	if term == "" {
		return d.users
	}
	needle := strings.ToLower(term)
	var out []User
	for _, u := range d.users {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			out = append(out, u)
		}
	}
	return out
}

// Count returns how many users have term in their name, ignoring case.
func (d *Directory) Count(term string) int {
	return len(d.matching(term))
}

// Slice returns up to limit matches starting at offset start.
func (d *Directory) Slice(term string, start, limit int) []Item {
	users := d.matching(term)
	if start < 0 {
		start = 0
	}
	if start >= len(users) || limit <= 0 {
		return []Item{}
	}
	end := min(start+limit, len(users))

	items := make([]Item, 0, end-start)
	for _, u := range users[start:end] {
		items = append(items, u.Item())
	}
	return items
}

// Get returns the user with id, or nil.
func (d *Directory) Get(id string) *User {
	for i := range d.users {
		if d.users[i].ID == id {
			u := d.users[i]
			return &u
		}
	}
	return nil
}

// Search returns page (1-based) of the users matching term.
func (d *Directory) Search(ctx context.Context, term string, page, pageSize int) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{Data: []Item{}}, err
	}
	if page < 1 {
		return Page{Data: []Item{}}, ErrInvalidPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	start := (page - 1) * pageSize
	total := d.Count(term)
	return Page{
		Data:    d.Slice(term, start, pageSize),
		HasMore: start+pageSize < total,
		Total:   total,
	}, nil
}

// GetByID returns the user with id, or nil when there is none.
func (d *Directory) GetByID(ctx context.Context, id string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.Get(id), nil
}
