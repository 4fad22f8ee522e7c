package api

import "net/url"

// Candidate is one external catalog search result.
type Candidate struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// SearchCatalog queries the external catalog through the API.
func (c *Client) SearchCatalog(query string) ([]Candidate, error) {
	var results []Candidate
	u := c.url("search") + "?q=" + url.QueryEscape(query)
	if err := c.doJSON("GET", u, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}
