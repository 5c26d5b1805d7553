package domain

import "time"

// Borrower kinds. The front end registers students by boleta and staff by
// employee number; loans carry the kind so lookups know which registry to hit.
const (
	BorrowerStudent string = "student"
	BorrowerStaff   string = "staff"
)

// Loan statuses. Returned is realized as deletion of the row, not a stored
// value: the system keeps exactly one mutable lifecycle record per checkout.
const (
	LoanActive  string = "ACTIVE"
	LoanOverdue string = "OVERDUE"
)

type Loan struct {
	ID           int       `db:"id"`
	BorrowerKind string    `db:"borrower_kind"`
	BorrowerID   string    `db:"borrower_id"`
	BorrowerName string    `db:"borrower_name"`
	Group        string    `db:"group_name"`
	Email        string    `db:"email"`
	Title        string    `db:"title"`
	Code         string    `db:"catalog_code"`
	StartDate    time.Time `db:"start_date"`
	DueDate      time.Time `db:"due_date"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

// Fine statuses.
const (
	FinePending string = "PENDING"
	FinePaid    string = "PAID"
)

type Fine struct {
	ID             int        `db:"id"`
	LoanID         int        `db:"loan_id"`
	BorrowerID     string     `db:"borrower_id"`
	BorrowerName   string     `db:"borrower_name"`
	Email          string     `db:"email"`
	ItemTitle      string     `db:"item_title"`
	DueDate        time.Time  `db:"due_date"`
	DelinquentDays int        `db:"delinquent_days"`
	Amount         float64    `db:"amount"`
	Status         string     `db:"status"`
	CreatedAt      time.Time  `db:"created_at"`
	PaidAt         *time.Time `db:"paid_at"`
}

// ReturnRecord mirrors a loan into the returns ledger for the front end's
// pending-returns table. Rows referencing a loan are cascaded away when the
// loan is returned or its fine settled.
type ReturnRecord struct {
	ID         int       `db:"id"`
	LoanID     int       `db:"loan_id"`
	BorrowerID string    `db:"borrower_id"`
	Title      string    `db:"title"`
	Code       string    `db:"catalog_code"`
	DueDate    time.Time `db:"due_date"`
	CreatedAt  time.Time `db:"created_at"`
}

// Document is a semi-structured record as the upstream spreadsheets produced
// it: key spellings vary (accents, case, embedded newlines) and values nest
// arbitrarily. Readers go through pkg/fields instead of indexing keys directly.
type Document map[string]any

type InventoryItem struct {
	ID  int      `db:"id"`
	Doc Document `db:"doc"`
}

type Person struct {
	ID   int      `db:"id"`
	Kind string   `db:"kind"`
	Doc  Document `db:"doc"`
}

type Observation struct {
	Text string `json:"texto"`
	Date string `json:"fecha"`
}

// SiteEntry is one check-in at the library site.
type SiteEntry struct {
	ID           int           `db:"id"`
	Kind         string        `db:"kind"`
	Name         string        `db:"name"`
	BorrowerID   string        `db:"borrower_id"`
	Group        string        `db:"group_name"`
	Load         string        `db:"schedule_load"`
	Email        string        `db:"email"`
	Shift        string        `db:"shift"`
	Occupation   string        `db:"occupation"`
	Date         string        `db:"entry_date"`
	EntryTime    string        `db:"entry_time"`
	Observations []Observation `db:"observations"`
	Deleted      bool          `db:"deleted"`
	Restarted    bool          `db:"restarted"`
	CreatedAt    time.Time     `db:"created_at"`
}

// SiteSummary is the month-end aggregate that replaces raw site entries once
// they age past the retention window.
type SiteSummary struct {
	ID        int       `db:"id"`
	Month     string    `db:"month"`
	Shift     string    `db:"shift"`
	Kind      string    `db:"kind"`
	Entries   int       `db:"entries"`
	CreatedAt time.Time `db:"created_at"`
}

// Chess session statuses.
const (
	ChessActive   string = "active"
	ChessFinished string = "finished"
)

type ChessSession struct {
	ID        int        `db:"id"`
	UserID    string     `db:"user_id"`
	Name      string     `db:"name"`
	Kind      string     `db:"kind"`
	Status    string     `db:"status"`
	StartedAt time.Time  `db:"started_at"`
	EndedAt   *time.Time `db:"ended_at"`
	CreatedAt time.Time  `db:"created_at"`
}

// Dashboard aggregates shown on the front end's landing page.
type Dashboard struct {
	LoansToday     int `json:"loans_today"`
	ShelfAvailable int `json:"shelf_available"`
	OverdueReturns int `json:"overdue_returns"`
	Students       int `json:"students"`
}
