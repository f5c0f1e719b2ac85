package model

// Step is a planning step an action can be linked to. Owned by the
// goal-planning surface; this core only reads it.
type Step struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	GoalID string `json:"goalId,omitempty"`
}

// Sphere is a life area an action can be tagged with. Read-only here.
type Sphere struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Document is the single persisted state object. Every mutation produces
// a new document which the store rewrites wholesale. Collections may be
// nil until first use; nil is treated as empty everywhere.
type Document struct {
	Actions           []Action      `json:"actions"`
	Steps             []Step        `json:"steps"`
	Spheres           []Sphere      `json:"spheres"`
	FinanceCategories []Category    `json:"financeCategories"`
	Funds             []Fund        `json:"funds"`
	Transactions      []Transaction `json:"transactions"`
}

// FindCategory returns the category with the given id, if present.
func (d Document) FindCategory(id string) (Category, bool) {
	for _, c := range d.FinanceCategories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FindFund returns the fund with the given id, if present.
func (d Document) FindFund(id string) (Fund, bool) {
	for _, f := range d.Funds {
		if f.ID == id {
			return f, true
		}
	}
	return Fund{}, false
}

// FindStep returns the step with the given id, if present.
func (d Document) FindStep(id string) (Step, bool) {
	for _, s := range d.Steps {
		if s.ID == id {
			return s, true
		}
	}
	return Step{}, false
}
