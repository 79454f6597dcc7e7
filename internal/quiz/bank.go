package quiz

// DefaultOptionsPerQuestion is the option count used when a bank does not set one.
const DefaultOptionsPerQuestion = 4

// Option is a single answer choice. Picking it awards Points to Category.
type Option struct {
	Text     string
	Category Category
	Points   int
}

// Question is a prompt with a fixed number of options.
type Question struct {
	Prompt  string
	Options []Option
}

// Profile holds the result-screen copy for a category.
type Profile struct {
	Tagline     string
	Description string
}

// Bank is the static quiz content a session is driven from.
type Bank struct {
	Title              string
	Subtitle           string
	OptionsPerQuestion int
	Questions          []Question
	Profiles           map[Category]Profile
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.Questions)
}

// Question returns the question at index i.
func (b *Bank) Question(i int) (Question, bool) {
	if i < 0 || i >= len(b.Questions) {
		return Question{}, false
	}
	return b.Questions[i], true
}

// HasOption reports whether opt is one of the options of the question at index i.
func (b *Bank) HasOption(i int, opt Option) bool {
	q, ok := b.Question(i)
	if !ok {
		return false
	}
	for _, o := range q.Options {
		if o == opt {
			return true
		}
	}
	return false
}

// Profile returns the profile copy for c, or a bare one named after c.
func (b *Bank) Profile(c Category) Profile {
	if p, ok := b.Profiles[c]; ok {
		return p
	}
	return Profile{Tagline: c.String()}
}
