// Package signs implements the lexical sign resolver: a fixed dictionary of
// sign descriptors, free-text tokenization, and the timed reveal animation
// driving the translator.
package signs

// Category tags a descriptor for grouping in the sign library.
type Category string

const (
	CategoryGreeting  Category = "greeting"
	CategoryCourtesy  Category = "courtesy"
	CategoryPronoun   Category = "pronoun"
	CategoryNoun      Category = "noun"
	CategoryVerb      Category = "verb"
	CategoryAdjective Category = "adjective"
	CategoryResponse  Category = "response"
	CategoryEmotion   Category = "emotion"
	CategoryNumber    Category = "number"
	CategoryIndian    Category = "indian"
)

// CategoryLabels maps categories to their display labels, in presentation
// order.
var CategoryLabels = []struct {
	Category Category
	Label    string
}{
	{CategoryGreeting, "👋 Greetings"},
	{CategoryCourtesy, "🙏 Courtesy"},
	{CategoryPronoun, "👤 Pronouns"},
	{CategoryNoun, "📦 Nouns"},
	{CategoryVerb, "🏃 Verbs"},
	{CategoryAdjective, "⭐ Adjectives"},
	{CategoryResponse, "💬 Responses"},
	{CategoryEmotion, "😊 Emotions"},
	{CategoryNumber, "🔢 Numbers"},
	{CategoryIndian, "🇮🇳 Indian Signs"},
}

// Descriptor describes how to depict the sign for a single word.
type Descriptor struct {
	Key         string   `json:"key"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
	Category    Category `json:"category"`
	Glyph       string   `json:"glyph"`
}

// Dictionary is an immutable lookup table from normalized keys to
// descriptors. Declaration order is preserved because the substring fallback
// accepts the first matching key.
type Dictionary struct {
	keys    []string
	entries map[string]Descriptor
}

// NewDictionary builds a dictionary from descriptors in declaration order.
// Later duplicates of a key are ignored.
func NewDictionary(descriptors []Descriptor) *Dictionary {
	d := &Dictionary{
		entries: make(map[string]Descriptor, len(descriptors)),
	}
	for _, desc := range descriptors {
		if _, exists := d.entries[desc.Key]; exists {
			continue
		}
		d.keys = append(d.keys, desc.Key)
		d.entries[desc.Key] = desc
	}
	return d
}

// Len returns the number of descriptors.
func (d *Dictionary) Len() int {
	return len(d.keys)
}

// Get returns the descriptor for an exact normalized key.
func (d *Dictionary) Get(key string) (Descriptor, bool) {
	desc, ok := d.entries[key]
	return desc, ok
}

// All returns the descriptors in declaration order.
func (d *Dictionary) All() []Descriptor {
	all := make([]Descriptor, 0, len(d.keys))
	for _, key := range d.keys {
		all = append(all, d.entries[key])
	}
	return all
}

// ByCategory groups descriptors by category, preserving declaration order
// within each group.
func (d *Dictionary) ByCategory() map[Category][]Descriptor {
	grouped := make(map[Category][]Descriptor)
	for _, key := range d.keys {
		desc := d.entries[key]
		grouped[desc.Category] = append(grouped[desc.Category], desc)
	}
	return grouped
}

// Default returns the built-in sign dictionary.
func Default() *Dictionary {
	return NewDictionary(defaultDescriptors)
}

var defaultDescriptors = []Descriptor{
	{
		Key:         "hello",
		Description: "Raise your dominant hand to your forehead, then move it away in a small arc",
		Steps:       []string{"Raise hand to forehead", "Move hand away with small wave"},
		Category:    CategoryGreeting,
		Glyph:       "👋",
	},
	{
		Key:         "hi",
		Description: "Wave your hand from side to side",
		Steps:       []string{"Raise hand up", "Wave from side to side"},
		Category:    CategoryGreeting,
		Glyph:       "👋",
	},
	{
		Key:         "thank",
		Description: "Touch fingertips to chin, then move hand forward and down",
		Steps:       []string{"Touch fingertips to chin", "Move hand forward and down"},
		Category:    CategoryCourtesy,
		Glyph:       "🙏",
	},
	{
		Key:         "thanks",
		Description: "Touch fingertips to chin, then move hand forward and down",
		Steps:       []string{"Touch fingertips to chin", "Move hand forward and down"},
		Category:    CategoryCourtesy,
		Glyph:       "🙏",
	},
	{
		Key:         "you",
		Description: "Point index finger toward the person you are addressing",
		Steps:       []string{"Point index finger forward"},
		Category:    CategoryPronoun,
		Glyph:       "👤",
	},
	{
		Key:         "please",
		Description: "Place flat hand on chest and move in circular motion",
		Steps:       []string{"Place hand on chest", "Move in circular motion"},
		Category:    CategoryCourtesy,
		Glyph:       "🙏",
	},
	{
		Key:         "water",
		Description: "Make \"W\" handshape and tap side of mouth twice",
		Steps:       []string{"Form \"W\" with three fingers", "Tap side of mouth twice"},
		Category:    CategoryNoun,
		Glyph:       "💧",
	},
	{
		Key:         "eat",
		Description: "Bring fingertips to mouth as if eating",
		Steps:       []string{"Form loose fist", "Bring to mouth repeatedly"},
		Category:    CategoryVerb,
		Glyph:       "🍽️",
	},
	{
		Key:         "food",
		Description: "Bring fingertips to mouth as if eating",
		Steps:       []string{"Form loose fist", "Bring to mouth repeatedly"},
		Category:    CategoryNoun,
		Glyph:       "🍽️",
	},
	{
		Key:         "good",
		Description: "Place flat hand near mouth, then move down to other hand",
		Steps:       []string{"Place hand near mouth", "Move down to other palm"},
		Category:    CategoryAdjective,
		Glyph:       "👍",
	},
	{
		Key:         "bad",
		Description: "Place fingertips at mouth, then flip hand down",
		Steps:       []string{"Touch fingertips to mouth", "Flip hand downward"},
		Category:    CategoryAdjective,
		Glyph:       "👎",
	},
	{
		Key:         "yes",
		Description: "Make fist and nod it up and down like nodding head",
		Steps:       []string{"Make a fist", "Nod up and down"},
		Category:    CategoryResponse,
		Glyph:       "✅",
	},
	{
		Key:         "no",
		Description: "Extend index and middle finger, then close them",
		Steps:       []string{"Extend index and middle finger", "Close fingers together"},
		Category:    CategoryResponse,
		Glyph:       "❌",
	},
	{
		Key:         "love",
		Description: "Cross arms over chest in hugging motion",
		Steps:       []string{"Cross arms over chest", "Squeeze gently"},
		Category:    CategoryEmotion,
		Glyph:       "❤️",
	},
	{
		Key:         "help",
		Description: "Place one fist on opposite palm and lift together",
		Steps:       []string{"Place fist on palm", "Lift both hands together"},
		Category:    CategoryVerb,
		Glyph:       "🤝",
	},
	{
		Key:         "sorry",
		Description: "Make fist and rub it in circular motion on chest",
		Steps:       []string{"Make a fist", "Rub in circular motion on chest"},
		Category:    CategoryCourtesy,
		Glyph:       "😔",
	},
	{
		Key:         "friend",
		Description: "Hook index fingers together, then reverse",
		Steps:       []string{"Hook index fingers together", "Reverse the hook"},
		Category:    CategoryNoun,
		Glyph:       "👫",
	},
	{
		Key:         "family",
		Description: "Make \"F\" handshape and move in circle",
		Steps:       []string{"Make \"F\" handshape", "Move in circle"},
		Category:    CategoryNoun,
		Glyph:       "👨‍👩‍👧‍👦",
	},
	{
		Key:         "home",
		Description: "Touch fingertips to mouth, then to cheek",
		Steps:       []string{"Touch fingertips to mouth", "Move to cheek"},
		Category:    CategoryNoun,
		Glyph:       "🏠",
	},
	{
		Key:         "work",
		Description: "Make fists and tap wrists together",
		Steps:       []string{"Make both fists", "Tap wrists together"},
		Category:    CategoryVerb,
		Glyph:       "💼",
	},
	{
		Key:         "school",
		Description: "Clap hands together twice",
		Steps:       []string{"Clap hands together", "Repeat clapping motion"},
		Category:    CategoryNoun,
		Glyph:       "🏫",
	},
	{
		Key:         "book",
		Description: "Open palms like opening a book",
		Steps:       []string{"Place palms together", "Open like a book"},
		Category:    CategoryNoun,
		Glyph:       "📚",
	},
	{
		Key:         "car",
		Description: "Pretend to steer a steering wheel",
		Steps:       []string{"Grip imaginary steering wheel", "Turn left and right"},
		Category:    CategoryNoun,
		Glyph:       "🚗",
	},
	{
		Key:         "money",
		Description: "Tap back of one hand with other palm",
		Steps:       []string{"Place one palm up", "Tap with other hand"},
		Category:    CategoryNoun,
		Glyph:       "💰",
	},
	{
		Key:         "one",
		Description: "Hold up index finger",
		Steps:       []string{"Extend index finger upward"},
		Category:    CategoryNumber,
		Glyph:       "1️⃣",
	},
	{
		Key:         "two",
		Description: "Hold up index and middle finger in V shape",
		Steps:       []string{"Extend index and middle finger"},
		Category:    CategoryNumber,
		Glyph:       "2️⃣",
	},
	{
		Key:         "three",
		Description: "Hold up thumb, index, and middle finger",
		Steps:       []string{"Extend thumb, index, and middle finger"},
		Category:    CategoryNumber,
		Glyph:       "3️⃣",
	},
	{
		Key:         "four",
		Description: "Hold up four fingers, thumb tucked",
		Steps:       []string{"Extend four fingers, thumb down"},
		Category:    CategoryNumber,
		Glyph:       "4️⃣",
	},
	{
		Key:         "five",
		Description: "Hold up all five fingers spread apart",
		Steps:       []string{"Extend all five fingers"},
		Category:    CategoryNumber,
		Glyph:       "5️⃣",
	},
	{
		Key:         "namaste",
		Description: "Press palms together in front of chest and bow slightly",
		Steps:       []string{"Press palms together", "Bow head slightly"},
		Category:    CategoryIndian,
		Glyph:       "🙏",
	},
	{
		Key:         "dhanyawad",
		Description: "Similar to thank you - touch fingertips to chin, move forward",
		Steps:       []string{"Touch fingertips to chin", "Move hand forward and down"},
		Category:    CategoryIndian,
		Glyph:       "🙏",
	},
	{
		Key:         "guru",
		Description: "Place hand over heart, then extend forward with respect",
		Steps:       []string{"Place hand over heart", "Extend forward respectfully"},
		Category:    CategoryIndian,
		Glyph:       "🧘",
	},
	{
		Key:         "chai",
		Description: "Pretend to hold and sip from a small cup",
		Steps:       []string{"Hold imaginary small cup", "Bring to mouth to sip"},
		Category:    CategoryIndian,
		Glyph:       "☕",
	},
	{
		Key:         "roti",
		Description: "Make circular motions with palms as if making bread",
		Steps:       []string{"Place palms flat", "Move in circular motions"},
		Category:    CategoryIndian,
		Glyph:       "🫓",
	},
}
