package dto

type BookRefDTO struct {
	Title string `json:"title" example:"Pedro Páramo"`
	ISBN  string `json:"isbn" example:"978-607-11-0255-2"`
}

type CheckoutRequestDTO struct {
	Kind     string `json:"kind" example:"student"`
	Name     string `json:"name" example:"Ana Sánchez"`
	ID       string `json:"id" example:"2023630123"`
	Group    string `json:"group" example:"5IM03"`
	Email    string `json:"email" example:"ana@example.com"`
	Title    string `json:"title" example:"Pedro Páramo"`
	ISBN     string `json:"isbn" example:"978-607-11-0255-2"`
	LoanDays int    `json:"loan_days" example:"3"`
}

type LoanResponseDTO struct {
	ID        int        `json:"id" example:"12"`
	Kind      string     `json:"kind" example:"student"`
	Name      string     `json:"name" example:"Ana Sánchez"`
	Borrower  string     `json:"borrower_id" example:"2023630123"`
	Group     string     `json:"group" example:"5IM03"`
	Email     string     `json:"email" example:"ana@example.com"`
	Book      BookRefDTO `json:"book"`
	StartDate string     `json:"start_date" example:"2024-01-01"`
	DueDate   string     `json:"due_date" example:"2024-01-04"`
	Status    string     `json:"status" example:"ACTIVE"`
	CreatedAt string     `json:"created_at" example:"2024-01-01T09:30:00-06:00"`
}

type PendingReturnDTO struct {
	LoanResponseDTO
	DaysLate   int     `json:"days_late" example:"2"`
	FineAmount float64 `json:"fine_amount" example:"10"`
}

type ReturnRequestDTO struct {
	LoanID    int    `json:"loan_id,omitempty" example:"12"`
	ISBN      string `json:"isbn,omitempty" example:"978-607-11-0255-2"`
	Title     string `json:"title,omitempty" example:"Pedro Páramo"`
	Borrower  string `json:"borrower_id,omitempty" example:"2023630123"`
	StartDate string `json:"start_date,omitempty" example:"2024-01-01"`
}
