package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/logger"
	"homelet-backend/internal/repository"
	"homelet-backend/internal/utils"
)

type orderService struct {
	orderRepo repository.OrderRepository
	houseRepo repository.HouseRepository
	userRepo  repository.UserRepository
	emailSvc  EmailService
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	houseRepo repository.HouseRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		houseRepo: houseRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
	}
}

const dateLayout = "2006-01-02"

func (s *orderService) CreateOrder(ctx context.Context, actor *domain.User, houseID int64, startDate, endDate string) (*domain.RentalOrder, error) {
	if startDate == "" || endDate == "" {
		return nil, domain.NewValidation("both start date and end date are required")
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, domain.NewValidation("invalid start date %q", startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, domain.NewValidation("invalid end date %q", endDate)
	}
	if end.Before(start) {
		return nil, domain.NewValidation("end date must not be before start date")
	}

	house, err := s.houseRepo.GetByID(ctx, houseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("house %d not found", houseID)
		}
		return nil, err
	}
	if house.OwnerID == 0 {
		return nil, domain.NewValidation("house has no landlord")
	}

	// Early read-only check so most conflicts fail before the lock; the
	// repository repeats it under the per-house lock to close the race.
	overlapping, err := s.orderRepo.HasOverlapping(ctx, houseID, startDate, endDate, domain.CreationBlockingStatuses)
	if err != nil {
		return nil, err
	}
	if overlapping {
		return nil, domain.NewConflict("house is already booked for the selected dates")
	}

	deposit := house.RentPriceCents
	if house.DepositCents != nil {
		deposit = *house.DepositCents
	}

	totalRent, err := utils.CalculateLeaseCost(startDate, endDate, house.RentPriceCents)
	if err != nil {
		return nil, domain.NewValidation("invalid lease term: %v", err)
	}

	order := &domain.RentalOrder{
		HouseID:           houseID,
		TenantID:          actor.ID,
		LandlordID:        house.OwnerID,
		StartDate:         startDate,
		EndDate:           endDate,
		MonthlyRentCents:  house.RentPriceCents,
		DepositCents:      deposit,
		TotalRentCents:    totalRent,
		Status:            domain.OrderStatusPending,
		TerminationStatus: domain.TerminationNone,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrBookingConflict) {
			return nil, domain.NewConflict("house is already booked for the selected dates")
		}
		return nil, err
	}

	// Notify the landlord, best-effort.
	landlord, _ := s.userRepo.GetByID(ctx, house.OwnerID)
	if landlord != nil && landlord.Email != "" {
		if err := s.emailSvc.SendOrderCreatedNotification(ctx, landlord.Email, actor.FullName, house.Title); err != nil {
			logger.Warn("failed to send order created notification", "order_id", order.ID, "error", err)
		}
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !domain.IsParticipant(actor, order) {
		return nil, domain.NewAuthorization("no access to this order")
	}
	return order, nil
}

func (s *orderService) ListForTenant(ctx context.Context, actor *domain.User, page, pageSize int32) ([]domain.RentalOrder, int64, error) {
	return s.orderRepo.ListByTenant(ctx, actor.ID, page, pageSize)
}

func (s *orderService) ListForLandlord(ctx context.Context, actor *domain.User, page, pageSize int32) ([]domain.RentalOrder, int64, error) {
	return s.orderRepo.ListByLandlord(ctx, actor.ID, page, pageSize)
}

func (s *orderService) ListAll(ctx context.Context, page, pageSize int32) ([]domain.RentalOrder, int64, error) {
	return s.orderRepo.ListAll(ctx, page, pageSize)
}

func (s *orderService) CancelOrder(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !domain.IsTenantOf(actor, order) {
		return nil, domain.NewAuthorization("only the tenant may cancel this order")
	}
	applied, err := s.orderRepo.TransitionStatus(ctx, orderID, domain.OrderStatusPending, domain.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, domain.NewConflict("only a pending order can be cancelled")
	}
	return s.getOrder(ctx, orderID)
}

func (s *orderService) ConfirmOrder(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !domain.IsLandlordOf(actor, order) {
		return nil, domain.NewAuthorization("only the landlord may confirm this order")
	}
	applied, err := s.orderRepo.TransitionStatus(ctx, orderID, domain.OrderStatusPending, domain.OrderStatusConfirmed)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, domain.NewConflict("only a pending order can be confirmed")
	}

	tenant, _ := s.userRepo.GetByID(ctx, order.TenantID)
	house, _ := s.houseRepo.GetByID(ctx, order.HouseID)
	if tenant != nil && tenant.Email != "" && house != nil {
		if err := s.emailSvc.SendOrderConfirmedNotification(ctx, tenant.Email, house.Title); err != nil {
			logger.Warn("failed to send order confirmed notification", "order_id", orderID, "error", err)
		}
	}

	return s.getOrder(ctx, orderID)
}

func (s *orderService) ActivateOrder(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !domain.IsLandlordOf(actor, order) {
		return nil, domain.NewAuthorization("only the landlord may activate this order")
	}
	applied, err := s.orderRepo.TransitionStatus(ctx, orderID, domain.OrderStatusConfirmed, domain.OrderStatusActive)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, domain.NewConflict("only a confirmed order can be activated")
	}
	return s.getOrder(ctx, orderID)
}

func (s *orderService) UploadContract(ctx context.Context, actor *domain.User, orderID int64, contractURL string) (*domain.RentalOrder, error) {
	if contractURL == "" {
		return nil, domain.NewValidation("contract url is required")
	}
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !domain.IsLandlordOf(actor, order) {
		return nil, domain.NewAuthorization("only the landlord may attach a contract")
	}
	if err := s.orderRepo.SetContractURL(ctx, orderID, contractURL); err != nil {
		return nil, err
	}
	return s.getOrder(ctx, orderID)
}

func (s *orderService) DownloadContract(ctx context.Context, actor *domain.User, orderID int64) (string, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	if !domain.IsParticipant(actor, order) {
		return "", domain.NewAuthorization("no access to this order's contract")
	}
	return order.ContractURL, nil
}

func (s *orderService) RequestTermination(ctx context.Context, actor *domain.User, orderID int64, reason string) (*domain.RentalOrder, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanRequestTermination(actor, order) {
		return nil, domain.NewAuthorization("only the tenant or the landlord may request termination")
	}
	if order.Closed() {
		return nil, domain.NewConflict("order is already closed")
	}
	if order.TerminationStatus == domain.TerminationRequested {
		return nil, domain.NewConflict("a termination request is already pending")
	}
	applied, err := s.orderRepo.RequestTermination(ctx, orderID, actor.ID, reason)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, domain.NewConflict("a termination request is already pending")
	}

	s.notifyCounterpart(ctx, actor, order, reason)

	return s.getOrder(ctx, orderID)
}

func (s *orderService) ApproveTermination(ctx context.Context, actor *domain.User, orderID int64, feedback string) (*domain.RentalOrder, error) {
	return s.resolveTermination(ctx, actor, orderID, true, feedback)
}

func (s *orderService) RejectTermination(ctx context.Context, actor *domain.User, orderID int64, feedback string) (*domain.RentalOrder, error) {
	return s.resolveTermination(ctx, actor, orderID, false, feedback)
}

func (s *orderService) resolveTermination(ctx context.Context, actor *domain.User, orderID int64, approve bool, feedback string) (*domain.RentalOrder, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.TerminationStatus != domain.TerminationRequested {
		return nil, domain.NewConflict("no pending termination request")
	}
	if !domain.CanResolveTermination(actor, order) {
		return nil, domain.NewAuthorization("the requester cannot resolve their own termination request")
	}
	applied, err := s.orderRepo.ResolveTermination(ctx, orderID, actor.ID, approve, feedback)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, domain.NewConflict("no pending termination request")
	}

	if order.TerminationRequesterID != nil {
		requester, _ := s.userRepo.GetByID(ctx, *order.TerminationRequesterID)
		house, _ := s.houseRepo.GetByID(ctx, order.HouseID)
		if requester != nil && requester.Email != "" && house != nil {
			if err := s.emailSvc.SendTerminationResolvedNotification(ctx, requester.Email, house.Title, approve, feedback); err != nil {
				logger.Warn("failed to send termination resolved notification", "order_id", orderID, "error", err)
			}
		}
	}

	return s.getOrder(ctx, orderID)
}

func (s *orderService) HasBookingConflict(ctx context.Context, houseID int64, startDate, endDate string, statuses []domain.OrderStatus) (bool, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return false, domain.NewValidation("invalid start date %q", startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return false, domain.NewValidation("invalid end date %q", endDate)
	}
	if end.Before(start) {
		return false, domain.NewValidation("end date must not be before start date")
	}
	return s.orderRepo.HasOverlapping(ctx, houseID, startDate, endDate, statuses)
}

func (s *orderService) getOrder(ctx context.Context, orderID int64) (*domain.RentalOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("order %d not found", orderID)
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) notifyCounterpart(ctx context.Context, requester *domain.User, order *domain.RentalOrder, reason string) {
	counterpartID := order.LandlordID
	if requester.ID == order.LandlordID {
		counterpartID = order.TenantID
	}
	counterpart, _ := s.userRepo.GetByID(ctx, counterpartID)
	house, _ := s.houseRepo.GetByID(ctx, order.HouseID)
	if counterpart != nil && counterpart.Email != "" && house != nil {
		if err := s.emailSvc.SendTerminationRequestedNotification(ctx, counterpart.Email, requester.FullName, house.Title, reason); err != nil {
			logger.Warn("failed to send termination requested notification", "order_id", order.ID, "error", err)
		}
	}
}
