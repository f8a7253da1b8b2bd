package domain

// DictionaryCategory groups glossary entries.
type DictionaryCategory string

const (
	DictionaryCategoryBilling     DictionaryCategory = "billing"
	DictionaryCategoryPayments    DictionaryCategory = "payments"
	DictionaryCategoryBookkeeping DictionaryCategory = "bookkeeping"
)

// DictionaryEntry is one term of the reference glossary served to clients.
type DictionaryEntry struct {
	Term       string             `json:"term"`
	Definition string             `json:"definition"`
	Category   DictionaryCategory `json:"category"`
	Related    []string           `json:"related,omitempty"`
}
