package content

// The five site collections. Every record is a plain value; updates always
// replace the whole collection snapshot in the store.

type Leader struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Course string `json:"course"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Image  string `json:"image"`
	Quote  string `json:"quote"`
}

type GalleryImage struct {
	ID          string `json:"id"`
	Src         string `json:"src"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type Member struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Course     string `json:"course"`
	Year       string `json:"year"`
	JoinedDate string `json:"joined_date"` // "2006-01-02"
}

type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // "2006-01-02", no time zone
	Time        string `json:"time"` // free-text range, e.g. "6:00 PM - 8:00 PM"
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"` // optional banner; text card when empty
	IsRecurring bool   `json:"is_recurring"`
	// Only meaningful when IsRecurring is true, e.g. "Every Sunday"
	RecurringPattern string `json:"recurring_pattern,omitempty"`
}

type Scripture struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Text      string `json:"text"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"` // RFC3339
}
