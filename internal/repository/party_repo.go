package repository

import (
	"stocktrack/internal/model"

	"gorm.io/gorm"
)

// PartyRepository serves both contact tables; every call dispatches on the
// kind to pick the suppliers or customers relation.
type PartyRepository interface {
	Create(kind model.PartyKind, party *model.Party) error
	Update(kind model.PartyKind, party *model.Party) error
	Delete(kind model.PartyKind, id uint) (int64, error)
	FindAll(kind model.PartyKind) ([]model.Party, error)
	FindByID(kind model.PartyKind, id uint) (*model.Party, error)
}

type partyRepo struct {
	db *gorm.DB
}

func NewPartyRepo(db *gorm.DB) PartyRepository {
	return &partyRepo{db}
}

func (r *partyRepo) Create(kind model.PartyKind, party *model.Party) error {
	return r.db.Table(kind.Table()).Create(party).Error
}

func (r *partyRepo) Update(kind model.PartyKind, party *model.Party) error {
	return r.db.Table(kind.Table()).Save(party).Error
}

// Delete reports the affected row count so the service can distinguish a
// missing id from a successful removal.
func (r *partyRepo) Delete(kind model.PartyKind, id uint) (int64, error) {
	res := r.db.Table(kind.Table()).Where("id = ?", id).Delete(&model.Party{})
	return res.RowsAffected, res.Error
}

func (r *partyRepo) FindAll(kind model.PartyKind) ([]model.Party, error) {
	var parties []model.Party
	err := r.db.Table(kind.Table()).Find(&parties).Error
	return parties, err
}

func (r *partyRepo) FindByID(kind model.PartyKind, id uint) (*model.Party, error) {
	var party model.Party
	err := r.db.Table(kind.Table()).First(&party, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &party, nil
}
