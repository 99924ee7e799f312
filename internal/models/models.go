package models

// Person is a roster entry. ID is unique within a roster; Name may repeat.
type Person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Group is a generated chunk of the roster.
type Group struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []Person `json:"members"`
}

// Mode selects the active tool.
type Mode int

const (
	DrawMode Mode = iota
	GroupMode
)

func (m Mode) String() string {
	switch m {
	case DrawMode:
		return "draw"
	case GroupMode:
		return "group"
	default:
		return ""
	}
}

// Names returns the display names of people in order.
func Names(people []Person) []string {
	names := make([]string, len(people))
	for i, p := range people {
		names[i] = p.Name
	}
	return names
}
