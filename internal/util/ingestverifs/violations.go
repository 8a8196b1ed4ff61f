package ingestverifs

type Violations map[int]*Violation

type Violation struct {
	Rejection
	Name string `json:"name"`
}

type Rejection struct {
	Message string `json:"message"`
}
