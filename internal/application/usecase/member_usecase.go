package usecase

import (
	"context"

	"github.com/clairefro/flc-wix/internal/application/dto"
	"github.com/clairefro/flc-wix/internal/domain"
	"github.com/clairefro/flc-wix/internal/domain/repository"
	"github.com/clairefro/flc-wix/pkg/b64"
)

// MemberUseCase datos del miembro autenticado.
type MemberUseCase struct {
	contacts repository.ContactRepository
}

// NewMemberUseCase construye el caso de uso.
func NewMemberUseCase(contacts repository.ContactRepository) *MemberUseCase {
	return &MemberUseCase{contacts: contacts}
}

// Address devuelve la primera dirección del contacto del miembro, unida con ", " y codificada en base64.
// Sin direcciones devuelve "". ErrMemberNotFound si el miembro no tiene contacto.
func (uc *MemberUseCase) Address(ctx context.Context, memberID string) (*dto.AddressResponse, error) {
	if memberID == "" {
		return nil, domain.ErrUnauthorized
	}
	contact, err := uc.contacts.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrMemberNotFound
	}
	if len(contact.Addresses) == 0 {
		return &dto.AddressResponse{Address: ""}, nil
	}
	return &dto.AddressResponse{Address: b64.Encode(contact.Addresses[0].Joined())}, nil
}

// DecodeBase64 revierte la codificación usada por Address.
func DecodeBase64(in dto.Base64Request) (*dto.Base64Response, error) {
	out, err := b64.Decode(in.Value)
	if err != nil {
		return nil, err
	}
	return &dto.Base64Response{Value: out}, nil
}
