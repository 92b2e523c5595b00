package b2b

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stoyanovb/gradina-api/internal/application/dto"
	"github.com/stoyanovb/gradina-api/internal/application/notify"
	"github.com/stoyanovb/gradina-api/internal/domain"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/domain/pricing"
	"github.com/stoyanovb/gradina-api/internal/domain/repository"
	"github.com/stoyanovb/gradina-api/pkg/jwt"
)

// CompanyUseCase is the B2B partner lifecycle: self-registration, the
// admin approval workflow and the status-gated login.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
	policy      pricing.Policy
	notifier    Notifier
	jwtCfg      JWTConfig
}

// NewCompanyUseCase constructs the use case. The pricing policy is the
// same value the catalog and order pipeline use.
func NewCompanyUseCase(
	companyRepo repository.CompanyRepository,
	policy pricing.Policy,
	notifier Notifier,
	jwtCfg JWTConfig,
) *CompanyUseCase {
	return &CompanyUseCase{
		companyRepo: companyRepo,
		policy:      policy,
		notifier:    notifier,
		jwtCfg:      jwtCfg,
	}
}

// Register creates a pending partner account from self-registration.
func (uc *CompanyUseCase) Register(ctx context.Context, in dto.RegisterCompanyRequest) (*entity.Company, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.EIK = strings.TrimSpace(in.EIK)
	if in.CompanyName == "" || in.EIK == "" || in.MOL == "" || in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrValidation
	}
	if existing, err := uc.companyRepo.GetByEIK(in.EIK); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, err := uc.companyRepo.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	company := &entity.Company{
		ID:           uuid.New().String(),
		CompanyName:  in.CompanyName,
		EIK:          in.EIK,
		MOL:          in.MOL,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		PasswordHash: string(hash),
		Status:       entity.CompanyPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

// Login verifies credentials and gates on the approval status. The three
// status rejections stay distinct from each other and from a bad password.
func (uc *CompanyUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.B2BLoginResponse, error) {
	company, err := uc.companyRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	switch company.Status {
	case entity.CompanyApproved:
	case entity.CompanyPending:
		return nil, domain.ErrCompanyPending
	case entity.CompanyRejected:
		return nil, domain.ErrCompanyRejected
	case entity.CompanySuspended:
		return nil, domain.ErrCompanySuspended
	default:
		return nil, domain.ErrUnauthorized
	}

	tier := ""
	if company.Tier != nil {
		tier = string(*company.Tier)
	}
	discount := company.DiscountPercent.String()
	token, err := jwt.Generate(uc.jwtCfg.Secret, company.ID, jwt.RoleB2B, tier, discount, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.B2BLoginResponse{
		Token:           token,
		CompanyName:     company.CompanyName,
		Tier:            tier,
		DiscountPercent: discount,
	}, nil
}

// Approve moves a company to approved with the given tier and fixes its
// discount and payment terms from the tier policy. ApprovedAt is stamped
// on the first approval only; reactivation keeps the original date.
func (uc *CompanyUseCase) Approve(ctx context.Context, companyID string, tier entity.Tier, notes string) (*entity.Company, error) {
	if !tier.Valid() {
		return nil, domain.ErrValidation
	}
	company, err := uc.load(companyID)
	if err != nil {
		return nil, err
	}
	previous := company.Status
	if !previous.CanTransitionTo(entity.CompanyApproved) {
		return nil, domain.ErrIllegalTransition
	}

	now := time.Now()
	t := tier
	company.Status = entity.CompanyApproved
	company.Tier = &t
	company.DiscountPercent = uc.policy.DiscountFor(tier)
	company.PaymentTermsDays = uc.policy.PaymentTermsFor(tier)
	if company.ApprovedAt == nil {
		company.ApprovedAt = &now
	}
	if notes != "" {
		company.Notes = notes
	}
	company.UpdatedAt = now

	if err := uc.companyRepo.UpdateStatus(company, previous); err != nil {
		return nil, err
	}
	uc.notifier.Enqueue(notify.Event{
		Kind:        notify.EventCompanyApproved,
		Recipient:   company.Email,
		CompanyName: company.CompanyName,
		Tier:        tier,
	})
	return company, nil
}

// Reject declines a pending registration.
func (uc *CompanyUseCase) Reject(ctx context.Context, companyID string) (*entity.Company, error) {
	return uc.moveTo(companyID, entity.CompanyRejected)
}

// Suspend blocks an approved account.
func (uc *CompanyUseCase) Suspend(ctx context.Context, companyID string) (*entity.Company, error) {
	return uc.moveTo(companyID, entity.CompanySuspended)
}

// Reactivate returns a rejected or suspended account to approved. It is an
// alias for Approve and still requires a tier (the account may never have
// had one, or the admin may change it on the way back).
func (uc *CompanyUseCase) Reactivate(ctx context.Context, companyID string, tier entity.Tier, notes string) (*entity.Company, error) {
	return uc.Approve(ctx, companyID, tier, notes)
}

// List returns companies, optionally filtered by status.
func (uc *CompanyUseCase) List(ctx context.Context, status entity.CompanyStatus, limit, offset int) ([]entity.Company, error) {
	if status != "" && !status.Valid() {
		return nil, domain.ErrValidation
	}
	return uc.companyRepo.List(status, limit, offset)
}

// GetByID loads one company.
func (uc *CompanyUseCase) GetByID(ctx context.Context, companyID string) (*entity.Company, error) {
	return uc.load(companyID)
}

// Delete removes a company account (admin only). Historic orders keep a
// dangling company reference and must stay readable.
func (uc *CompanyUseCase) Delete(ctx context.Context, companyID string) error {
	if _, err := uc.load(companyID); err != nil {
		return err
	}
	return uc.companyRepo.Delete(companyID)
}

func (uc *CompanyUseCase) moveTo(companyID string, target entity.CompanyStatus) (*entity.Company, error) {
	company, err := uc.load(companyID)
	if err != nil {
		return nil, err
	}
	previous := company.Status
	if !previous.CanTransitionTo(target) {
		return nil, domain.ErrIllegalTransition
	}
	company.Status = target
	company.UpdatedAt = time.Now()
	if err := uc.companyRepo.UpdateStatus(company, previous); err != nil {
		return nil, err
	}
	return company, nil
}

func (uc *CompanyUseCase) load(companyID string) (*entity.Company, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}
