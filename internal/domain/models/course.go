package models

import "time"

// CourseStatus represents the DAO approval state of a submitted course.
type CourseStatus string

const (
	CourseStatusPending  CourseStatus = "pending"
	CourseStatusApproved CourseStatus = "approved"
)

// Course is a marketplace course. Built-in catalog entries and DAO-approved
// submissions from the replica are merged into one list for display.
type Course struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Title         string       `gorm:"not null" json:"title"`
	Description   string       `json:"description"`
	Instructor    string       `json:"instructor"`
	PriceETH      string       `gorm:"column:price" json:"price"`
	WalletAddress string       `gorm:"type:varchar(42)" json:"wallet_address"`
	Status        CourseStatus `gorm:"type:varchar(16);default:'pending'" json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
}

func (Course) TableName() string {
	return "courses"
}

// Purchase records a completed course payment in the local ledger. The
// ledger is a convenience side-store keyed by wallet address; it carries no
// consistency guarantee against chain or replica state.
type Purchase struct {
	CourseTitle string    `json:"course_title"`
	Instructor  string    `json:"instructor"`
	PriceETH    string    `json:"price"`
	TxHash      string    `json:"tx_hash"`
	PurchasedAt time.Time `json:"purchased_at"`
}
