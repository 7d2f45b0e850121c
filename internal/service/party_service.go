package service

import (
	"errors"

	"stocktrack/internal/apperr"
	"stocktrack/internal/model"
	"stocktrack/internal/repository"
	"stocktrack/pkg/validator"

	"gorm.io/gorm"
)

// PartyService covers suppliers and customers with one implementation; the
// kind picks the backing relation. Deleting a party that existing orders
// still reference is deliberately not blocked.
type PartyService interface {
	CreateParty(kind model.PartyKind, party *model.Party) (uint, error)
	UpdateParty(kind model.PartyKind, id uint, party *model.Party) error
	DeleteParty(kind model.PartyKind, id uint) error
	GetParty(kind model.PartyKind, id uint) (*model.Party, error)
	ListParties(kind model.PartyKind) ([]model.Party, error)
}

type partyService struct {
	parties repository.PartyRepository
}

func NewPartyService(parties repository.PartyRepository) PartyService {
	return &partyService{parties: parties}
}

func validateParty(kind model.PartyKind, party *model.Party) error {
	if !kind.Valid() {
		return apperr.Validation("kind", "must be supplier or customer")
	}
	if errs := validator.ValidateStruct(party); len(errs) > 0 {
		return apperr.Validation(errs[0].FailedField, "failed on tag '"+errs[0].Tag+"'")
	}
	return nil
}

func (s *partyService) CreateParty(kind model.PartyKind, party *model.Party) (uint, error) {
	if err := validateParty(kind, party); err != nil {
		return 0, err
	}
	party.ID = 0
	if err := s.parties.Create(kind, party); err != nil {
		return 0, apperr.Persistence(err)
	}
	return party.ID, nil
}

func (s *partyService) UpdateParty(kind model.PartyKind, id uint, party *model.Party) error {
	if err := validateParty(kind, party); err != nil {
		return err
	}
	existing, err := s.parties.FindByID(kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return apperr.Persistence(err)
	}

	existing.Name = party.Name
	existing.ContactPerson = party.ContactPerson
	existing.Phone = party.Phone
	existing.Email = party.Email
	existing.Address = party.Address

	if err := s.parties.Update(kind, existing); err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

func (s *partyService) DeleteParty(kind model.PartyKind, id uint) error {
	if !kind.Valid() {
		return apperr.Validation("kind", "must be supplier or customer")
	}
	affected, err := s.parties.Delete(kind, id)
	if err != nil {
		return apperr.Persistence(err)
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *partyService) GetParty(kind model.PartyKind, id uint) (*model.Party, error) {
	if !kind.Valid() {
		return nil, apperr.Validation("kind", "must be supplier or customer")
	}
	party, err := s.parties.FindByID(kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence(err)
	}
	return party, nil
}

func (s *partyService) ListParties(kind model.PartyKind) ([]model.Party, error) {
	if !kind.Valid() {
		return nil, apperr.Validation("kind", "must be supplier or customer")
	}
	parties, err := s.parties.FindAll(kind)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return parties, nil
}
