package models

// Exercise is a catalog record. The catalog has no stable id, so Identity
// (name, falling back to title) is what favorites compare on.
type Exercise struct {
	Name         string `json:"name,omitempty"`
	Title        string `json:"title,omitempty"`
	Type         string `json:"type,omitempty"`
	Muscle       string `json:"muscle,omitempty"`
	Equipment    string `json:"equipment,omitempty"`
	Difficulty   string `json:"difficulty,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Description  string `json:"description,omitempty"`
}

func (e Exercise) Identity() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Title
}
