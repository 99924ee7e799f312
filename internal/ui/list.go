package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/hrtools/internal/models"
)

var _ list.Item = personItem{}

// personItem wraps [models.Person] to implement [list.Item].
type personItem struct {
	person    models.Person
	duplicate bool
}

func (i personItem) FilterValue() string { return i.person.Name }
func (i personItem) Title() string       { return i.person.Name }
func (i personItem) Description() string {
	if i.duplicate {
		return styles.dup.Render("duplicate")
	}
	return styles.help.Render(shortID(i.person.ID))
}

// personItems pairs each person with its duplicate flag.
func personItems(people []models.Person, dupes []bool) []list.Item {
	items := make([]list.Item, len(people))
	for i, p := range people {
		items[i] = personItem{person: p, duplicate: i < len(dupes) && dupes[i]}
	}
	return items
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
