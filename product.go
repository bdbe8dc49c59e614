package freelearn

// Placeholder is the fallback value of every Product field that could not
// be extracted from the page.
const Placeholder = "Not available"

// Fragment is the product snippet located inside a fetched page.
// A nil Fragment, or one with empty HTML, marks the snippet as absent.
type Fragment struct {
	// HTML is the serialized inner container, including its own tag.
	HTML string
}

// Found reports whether the fragment holds a located snippet.
func (f *Fragment) Found() bool {
	return f != nil && f.HTML != ""
}

// Product holds the fields extracted from a Fragment.
// All fields are always populated, either with content or with Placeholder.
type Product struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear string `json:"publicationYear"`
	Description     string `json:"description"`
}

// NewProduct returns a Product with every field set to Placeholder.
func NewProduct() *Product {
	return &Product{
		Title:           Placeholder,
		Author:          Placeholder,
		PublicationYear: Placeholder,
		Description:     Placeholder,
	}
}

// Locator finds the product snippet in a raw page.
type Locator interface {
	// Locate parses rawHTML and returns the inner product container.
	// Malformed markup is never an error; when the snippet cannot be found
	// the returned Fragment reports Found() == false.
	Locate(rawHTML string) *Fragment
}

// Extractor extracts typed product fields from a located snippet.
type Extractor interface {
	// Extract returns the product fields found in f. Fields whose element is
	// missing keep Placeholder. An absent fragment yields NewProduct().
	Extract(f *Fragment) *Product
}
