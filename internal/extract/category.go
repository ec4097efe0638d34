package extract

// Category identifies one of the five kinds of tokens a document is broken into.
type Category int

const (
	// Sentences are sentence spans
	Sentences Category = iota
	// Words are letter-initial word spans
	Words
	// Numbers are plain numbers
	Numbers
	// Amounts are currency amounts
	Amounts
	// Dates are calendar dates
	Dates
)

// Categories lists every category in report order.
var Categories = []Category{Sentences, Words, Numbers, Amounts, Dates}

// String returns the name used for the category in reports and message keys.
func (c Category) String() string {
	switch c {
	case Sentences:
		return "sentences"
	case Words:
		return "words"
	case Numbers:
		return "numbers"
	case Amounts:
		return "amounts"
	case Dates:
		return "dates"
	default:
		return "unknown"
	}
}
