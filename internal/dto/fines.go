package dto

type FineResponseDTO struct {
	ID             int     `json:"id" example:"3"`
	LoanID         int     `json:"loan_id" example:"12"`
	Borrower       string  `json:"borrower_id" example:"2023630123"`
	Name           string  `json:"name" example:"Ana Sánchez"`
	Email          string  `json:"email" example:"ana@example.com"`
	Title          string  `json:"title" example:"Pedro Páramo"`
	DueDate        string  `json:"due_date" example:"2024-01-04"`
	DelinquentDays int     `json:"delinquent_days" example:"2"`
	Amount         float64 `json:"amount" example:"10"`
	Status         string  `json:"status" example:"PENDING"`
}

type SettleFineRequestDTO struct {
	ID int `json:"id" example:"3"`
}
