package vo

// FetchResult is one snapshot of a page, either the raw HTTP response or
// the JS-rendered response delivered by the remote renderer.
type FetchResult struct {
	HTML       string
	FinalURL   string
	StatusCode int
}

type Heading struct {
	Level    int
	Text     string
	AnchorID string
}

type Image struct {
	Src string
	Alt string
}

type Link struct {
	Href string
	Text string
}

// ParsedPage is the normalized fact set extracted from one HTML document.
// It is a pure function of the HTML, extraction never does I/O.
type ParsedPage struct {
	Title        string
	Description  string
	CanonicalURL string
	Noindex      bool

	OGTitle       string
	OGDescription string
	OGURL         string
	OGImage       string

	Headings       []Heading
	PrimaryHeading string
	Level1Headings []string

	Images []Image
	Links  []Link

	// StructuredData holds every JSON-LD object that parsed, in document
	// order. Malformed blocks are dropped, not errors.
	StructuredData []map[string]interface{}

	// BodyText is the collapsed text of the main content container.
	BodyText string

	// element counts used by structure and accessibility checks
	ListCount       int
	TableCount      int
	NavCount        int
	InputCount      int
	LabelCount      int
	VideoCount      int
	CaptionedVideos int
}
