package vo

type Address struct {
	Street   string `json:"street,omitempty"`
	Locality string `json:"locality,omitempty"`
	Region   string `json:"region,omitempty"`
	Postal   string `json:"postal,omitempty"`
	Country  string `json:"country,omitempty"`
}

type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DerivedFacts are secondary business facts inferred from a ParsedPage.
// All of them are heuristic and may be empty on ambiguous input.
type DerivedFacts struct {
	Brand    string   `json:"brand,omitempty"`
	Locality string   `json:"locality,omitempty"`
	Address  *Address `json:"address,omitempty"`
	Geo      *Geo     `json:"geo,omitempty"`
}
