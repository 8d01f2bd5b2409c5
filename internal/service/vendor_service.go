package service

import (
	"context"
	"crypto/sha512"
	"encoding/json"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"

	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/pkg/apperror"
	"fintech-admin-be/internal/pkg/logger"
	"fintech-admin-be/internal/repository/specification"
	"fintech-admin-be/internal/repository/unitofwork"
)

type VendorService interface {
	HandleCallback(ctx context.Context, req *dto.VendorCallbackRequest) error
}

type vendorService struct {
	uowFactory unitofwork.RepositoryFactory
	audit      AuditPublisher
	log        logger.ILogger
	serverKey  string
	core       *coreapi.Client
}

// NewVendorService wires the payment vendor callback path. In production
// environments the status is re-checked against the vendor API before the
// transaction is touched.
func NewVendorService(uowFactory unitofwork.RepositoryFactory, audit AuditPublisher, log logger.ILogger, serverKey string, production bool) VendorService {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	core := &coreapi.Client{}
	core.New(serverKey, env)

	return &vendorService{
		uowFactory: uowFactory,
		audit:      audit,
		log:        log,
		serverKey:  serverKey,
		core:       core,
	}
}

// HandleCallback records every notification in the trail, valid or not, then
// applies the status change only for valid signatures. Callbacks for unknown
// transactions stay in the trail and are otherwise ignored.
func (s *vendorService) HandleCallback(ctx context.Context, req *dto.VendorCallbackRequest) error {
	valid := s.verifySignature(req)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	txRepo := uow.TransactionRepository()

	tx, err := txRepo.FindOneTransaction(ctx, specification.ByReference{Reference: req.OrderId})
	if err != nil && apperror.KindOf(err) != apperror.KindNotFound {
		return err
	}

	payload, _ := json.Marshal(req)
	trail := entity.VendorResponseTrail{
		Vendor:         "midtrans",
		Reference:      req.OrderId,
		StatusCode:     req.StatusCode,
		VendorStatus:   req.TransactionStatus,
		RequestPayload: string(payload),
		SignatureValid: valid,
	}
	if tx != nil {
		trail.TransactionId = tx.Id.String()
	}
	if err := txRepo.CreateTrail(ctx, &trail); err != nil {
		return err
	}

	if !valid {
		s.log.Warn("vendor", "callback signature mismatch", map[string]interface{}{"order_id": req.OrderId})
		return apperror.Validation("invalid signature")
	}
	if tx == nil {
		s.log.Warn("vendor", "callback for unknown transaction", map[string]interface{}{"order_id": req.OrderId})
		return nil
	}

	status := s.resolveStatus(req)
	if status == tx.TransactionStatus {
		return nil
	}

	old := tx.TransactionStatus
	tx.TransactionStatus = status
	if err := txRepo.UpdateTransaction(ctx, tx); err != nil {
		return err
	}
	s.log.Info("vendor", "transaction status updated from callback", map[string]interface{}{
		"reference": tx.Reference, "old": string(old), "new": string(status),
	})
	publishWriteEvent(ctx, s.audit, s.log, "transactions", tx.Id.String(), "vendor_callback")
	return nil
}

// Signature = SHA512(order_id + status_code + gross_amount + server_key).
func (s *vendorService) verifySignature(req *dto.VendorCallbackRequest) bool {
	input := req.OrderId + req.StatusCode + req.GrossAmount + s.serverKey
	expected := fmt.Sprintf("%x", sha512.Sum512([]byte(input)))
	return req.SignatureKey == expected
}

// resolveStatus maps vendor status words onto transaction statuses. For
// settled payments the vendor API is queried again so a forged but correctly
// signed replay cannot flip a transaction.
func (s *vendorService) resolveStatus(req *dto.VendorCallbackRequest) entity.TransactionStatus {
	status := req.TransactionStatus
	if status == "settlement" || status == "capture" {
		if check, err := s.core.CheckTransaction(req.OrderId); err == nil && check != nil {
			status = check.TransactionStatus
		}
	}

	switch status {
	case "settlement", "capture", "success":
		return entity.TransactionStatusSuccessful
	case "deny", "cancel", "expire", "failure":
		return entity.TransactionStatusFailed
	case "refund", "partial_refund", "chargeback":
		return entity.TransactionStatusReversed
	default:
		return entity.TransactionStatusPending
	}
}
