package entity

// Book is a single shelf entry. Two books are the same book when every field
// matches; ISBN is the key used by remove and update.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}
