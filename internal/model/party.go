package model

// PartyKind selects between the two structurally identical contact tables.
type PartyKind string

const (
	KindSupplier PartyKind = "supplier"
	KindCustomer PartyKind = "customer"
)

func (k PartyKind) Valid() bool {
	return k == KindSupplier || k == KindCustomer
}

func (k PartyKind) Table() string {
	if k == KindSupplier {
		return "suppliers"
	}
	return "customers"
}

// Party is the shared shape of suppliers and customers. Repositories pick
// the table through PartyKind; the struct itself has no table of its own.
type Party struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	ContactPerson string `gorm:"type:varchar(100)" json:"contact_person"`
	Phone         string `gorm:"type:varchar(50)" json:"phone"`
	Email         string `gorm:"type:varchar(100)" json:"email" validate:"omitempty,email"`
	Address       string `gorm:"type:varchar(255)" json:"address"`
}
