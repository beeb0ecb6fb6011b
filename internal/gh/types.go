package gh

// prJSON is the subset of the pulls endpoint response we need
type prJSON struct {
	Head *refJSON `json:"head"`
	Base *refJSON `json:"base"`
}

type refJSON struct {
	Ref string `json:"ref"`
	SHA string `json:"sha"`
}

// Options configures how the client reaches GitHub
type Options struct {
	Curl   string // curl executable
	APIURL string // REST API root, e.g. https://api.github.com
	WebURL string // web root used for patch downloads, e.g. https://github.com
	Token  string // optional bearer token
}
