package main

// Story is the full document skein operates on: the ordered storyline
// list, the event/type/connection collections and the era ordering.
// The layout engine only ever reads it; mutations go through Commands.
type Story struct {
	Title       string       `yaml:"title,omitempty"`
	Eras        []string     `yaml:"eras,omitempty"`
	Storylines  []Storyline  `yaml:"storylines,omitempty"`
	Types       []EventType  `yaml:"types,omitempty"`
	Events      []Event      `yaml:"events,omitempty"`
	Connections []Connection `yaml:"connections,omitempty"`
}

type Storyline struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}

type EventType struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}

// Event carries a raw date string in one of three forms (BC, Gregorian,
// custom era). Events missing a storyline, type or date stay in the
// document but are excluded from layout.
type Event struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Date        string   `yaml:"date,omitempty"`
	StorylineID string   `yaml:"storyline,omitempty"`
	TypeID      string   `yaml:"type,omitempty"`
	Characters  []string `yaml:"characters,omitempty"`
}

// Connection is a directed causal link between two events. Self-loops
// and duplicates are legal data; the router tolerates both.
type Connection struct {
	ID    string `yaml:"id"`
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label string `yaml:"label,omitempty"`
}

// Rect is an event's computed geometry in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Column is a day-column's horizontal band.
type Column struct {
	X, W float64
}

// Lane is a storyline's vertical band.
type Lane struct {
	Y, H float64
}

// Layout is the output of one ComputeLayout pass: every map is derived
// fresh each time, so callers may hold on to a Layout while the story
// changes underneath.
type Layout struct {
	Events    map[string]Rect   // event id -> rectangle
	Columns   map[string]Column // day key -> column band
	Lanes     map[string]Lane   // storyline id -> lane band
	Days      []string          // unique day keys in chronological order
	DayDates  map[string]string // day key -> representative raw date
	EventDays map[string]string // event id -> day key
	Width     float64
	Height    float64
}

// RoutedPath is a routed connection: an SVG cubic path plus its resolved
// endpoint and control coordinates on the two event rectangles.
type RoutedPath struct {
	Path           string
	X1, Y1, X2, Y2 float64
	CX1, CY1       float64
	CX2, CY2       float64
	SameDay        bool
}

// DropTarget names the (storyline, date) cell a drag gesture would land
// an event in.
type DropTarget struct {
	StorylineID string
	Date        string
}
