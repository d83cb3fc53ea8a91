package dto

import (
	"github.com/shottrack/models"
)

// ProjectRequest carries the full set of project fields for create and
// update. Updates replace every field; there are no partial updates. Text
// fields such as currency codes and status flags are free text on purpose —
// the store accepts whatever the caller sends.
type ProjectRequest struct {
	Proj      string            `json:"proj"`
	Company   string            `json:"company"`
	Order     string            `json:"order"`
	Assign    string            `json:"assign"`
	Shot      string            `json:"shot"`
	PerPay    float64           `json:"perpay"`
	Count     int               `json:"count"`
	InPay     float64           `json:"inpay"`
	InPayYa   string            `json:"inpayya"`
	OutPayYa  string            `json:"outpayya"`
	OutPay    float64           `json:"outpay"`
	AllPay    float64           `json:"allpay"`
	InPayFor  string            `json:"inpayfor"`
	OutPayFor string            `json:"outpayfor"`
	Note      string            `json:"note"`
	Tag       string            `json:"tag"`
	Start     models.Timestamp  `json:"start" binding:"required"`
	End       *models.Timestamp `json:"end"`
}

// ToModel maps the request payload to a project entity. The ID is left for
// the store (create) or the caller (update) to set.
func (r ProjectRequest) ToModel() models.Project {
	return models.Project{
		Proj:      r.Proj,
		Company:   r.Company,
		Order:     r.Order,
		Assign:    r.Assign,
		Shot:      r.Shot,
		PerPay:    r.PerPay,
		Count:     r.Count,
		InPay:     r.InPay,
		InPayYa:   r.InPayYa,
		OutPayYa:  r.OutPayYa,
		OutPay:    r.OutPay,
		AllPay:    r.AllPay,
		InPayFor:  r.InPayFor,
		OutPayFor: r.OutPayFor,
		Note:      r.Note,
		Tag:       r.Tag,
		Start:     r.Start,
		End:       r.End,
	}
}
