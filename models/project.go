package models

// Project represents one production-pipeline record: a shot handed out to an
// assignee together with its billing and management details. JSON field names
// mirror the wire format the frontend already speaks.
type Project struct {
	ID uint `json:"id" gorm:"primaryKey"`

	// Project details
	Proj    string  `json:"proj" gorm:"size:255"`    // project name
	Company string  `json:"company" gorm:"size:255"` // client company
	Order   string  `json:"order" gorm:"size:255"`   // engagement type
	Assign  string  `json:"assign" gorm:"size:255"`  // assignee
	Shot    string  `json:"shot" gorm:"size:255"`    // shot name
	PerPay  float64 `json:"perpay"`                  // unit price
	Count   int     `json:"count"`

	// Billing details. AllPay is supplied by the caller, never recalculated
	// server-side.
	InPay     float64 `json:"inpay"`
	InPayYa   string  `json:"inpayya" gorm:"size:50"`  // incoming payment status
	OutPayYa  string  `json:"outpayya" gorm:"size:50"` // outgoing payment status
	OutPay    float64 `json:"outpay"`
	AllPay    float64 `json:"allpay"`
	InPayFor  string  `json:"inpayfor" gorm:"size:255"`  // incoming currency code
	OutPayFor string  `json:"outpayfor" gorm:"size:255"` // outgoing currency code

	// Management details. End is null while the shot is unfinished; no
	// ordering between Start and End is enforced.
	Note  string     `json:"note" gorm:"size:255"`
	Tag   string     `json:"tag" gorm:"size:50"`
	Start Timestamp  `json:"start" gorm:"type:datetime;not null"`
	End   *Timestamp `json:"end" gorm:"type:datetime"`
}

// TableName keeps the table name the schema was created with.
func (Project) TableName() string {
	return "projects"
}
