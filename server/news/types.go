package news

// Origin identifies which retrieval path produced a record.
type Origin string

const (
	// OriginSerper marks records fetched from the Serper news API
	OriginSerper Origin = "Serper/Google"

	// OriginDuckDuckGo marks records fetched from the credential-free DuckDuckGo fallback
	OriginDuckDuckGo Origin = "DuckDuckGo"

	// OriginPlaceholder marks statically generated records used when all
	// real retrieval paths fail
	OriginPlaceholder Origin = "Mock Data"
)

// Record represents one retrieved news article, normalized across providers.
// Records are immutable once created and live for the duration of a single
// search call.
type Record struct {
	// Title is the article headline
	Title string `json:"title"`

	// Snippet is a bounded-length text excerpt from the article body
	Snippet string `json:"snippet"`

	// Link is the article URL
	Link string `json:"link"`

	// Source is the publisher or outlet name
	Source string `json:"source"`

	// Published is a free-text timestamp or recency label (e.g. "3 hours ago")
	Published string `json:"published"`

	// Origin identifies the retrieval path that produced this record
	Origin Origin `json:"origin"`
}
