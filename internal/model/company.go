package model

// CompanyProfile is the user-submitted description of the business looking
// for templates. It is created per submission and never stored.
//
// All four keys are always serialized, including empty optional fields.
type CompanyProfile struct {
	Name           string `json:"name" form:"name"`
	Industry       string `json:"industry" form:"industry"`
	Description    string `json:"description" form:"description"`
	TargetAudience string `json:"target_audience" form:"target_audience"`
}
