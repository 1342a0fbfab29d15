package models

// Branch represents an academic branch in the catalog
type Branch struct {
	ID   int64  `json:"id" example:"1"`
	Code string `json:"branchCode" example:"CSE"`
	Name string `json:"branchName" example:"Computer Science and Engineering"`
}
