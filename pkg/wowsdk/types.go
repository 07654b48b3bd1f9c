package wowsdk

// tokenResponse is the OAuth2 token endpoint response. Only the fields
// the credential manager needs are decoded.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Realm describes one entry in the realm status response. This is the
// only resource shape the library decodes itself; it is needed for the
// name-to-slug mapping.
type Realm struct {
	Type        string `json:"type"`
	Population  string `json:"population"`
	Queue       bool   `json:"queue"`
	Status      bool   `json:"status"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Battlegroup string `json:"battlegroup"`
	Locale      string `json:"locale"`
	Timezone    string `json:"timezone"`
}

// AuctionFile points at a signed, short-lived auction dump URL returned
// by the auction metadata endpoint.
type AuctionFile struct {
	URL          string `json:"url"`
	LastModified int64  `json:"lastModified"`
}
