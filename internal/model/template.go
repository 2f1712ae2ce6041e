package model

// Template is a candidate website template returned by the search backend.
type Template struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Features    []string `json:"features"`
}

// TemplateResults is the search endpoint response body.
type TemplateResults struct {
	Templates []Template `json:"templates"`
}

// Normalize replaces nil slices with empty ones so the results always
// encode as arrays. Order is left untouched.
func (r *TemplateResults) Normalize() {
	if r.Templates == nil {
		r.Templates = []Template{}
	}
	for i := range r.Templates {
		if r.Templates[i].Features == nil {
			r.Templates[i].Features = []string{}
		}
	}
}
