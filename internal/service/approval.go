package service

import (
	"errors"
	"fmt"
	"time"

	"ems-backend/internal/authz"
	"ems-backend/internal/database/models"
	apperrors "ems-backend/internal/errors"
	"ems-backend/internal/logger"
	"ems-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApprovalService is the approval state machine. It consumes one decision per
// call, checks the preconditions in a fixed order (not found, invalid input,
// forbidden, invalid state) and drives the request lifecycle and the ledger
// inside a single transaction, appending exactly one immutable approval record.
type ApprovalService struct {
	db        *gorm.DB
	requests  repository.LeaveRequestRepositoryInterface
	approvals repository.LeaveApprovalRepositoryInterface
	ledger    *Ledger
	log       *logger.Logger
}

// NewApprovalService creates a new approval service
func NewApprovalService(
	db *gorm.DB,
	requests repository.LeaveRequestRepositoryInterface,
	approvals repository.LeaveApprovalRepositoryInterface,
	ledger *Ledger,
) *ApprovalService {
	return &ApprovalService{
		db:        db,
		requests:  requests,
		approvals: approvals,
		ledger:    ledger,
		log:       logger.New(),
	}
}

// DecideRequest represents one decision on a leave request
type DecideRequest struct {
	Stage    string `json:"approval_type" validate:"required"`
	Decision string `json:"decision" validate:"required"`
	Notes    string `json:"notes"`
}

// ApprovalResponse represents a recorded approval together with the request's
// updated status
type ApprovalResponse struct {
	ID             uuid.UUID            `json:"id"`
	LeaveRequestID uuid.UUID            `json:"leave_request_id"`
	ApprovedBy     uuid.UUID            `json:"approved_by"`
	ApprovalType   models.ApprovalStage `json:"approval_type"`
	Decision       models.Decision      `json:"decision"`
	ApprovalDate   string               `json:"approval_date"`
	Notes          string               `json:"notes"`
	LeaveStatus    models.LeaveStatus   `json:"leave_status,omitempty"`
}

// Decide records an approve or reject decision by actor at the given stage.
// Preconditions are checked in order; the first failure wins and nothing is
// mutated. On success the lifecycle transition, the ledger debit (HR approval
// only) and the approval record commit together or not at all.
func (s *ApprovalService) Decide(requestID uuid.UUID, actor *models.User, req *DecideRequest) (*ApprovalResponse, error) {
	// 1. request must exist and not be soft-removed
	request, err := s.requests.GetActiveByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("failed to load leave request: %w", err)
	}

	// 2. stage and decision must be recognized values
	stage := models.ApprovalStage(req.Stage)
	if !stage.IsValid() {
		return nil, &apperrors.InvalidInputError{Field: "approval_type", Value: req.Stage}
	}
	decision := models.Decision(req.Decision)
	if !decision.IsValid() || decision == models.DecisionWithdraw {
		// withdrawal has its own entry point
		return nil, &apperrors.InvalidInputError{Field: "decision", Value: req.Decision}
	}

	// 3. actor must be authorized for this stage on this request
	if !authz.CanDecide(actor, stage, request) {
		return nil, &apperrors.ForbiddenError{Message: forbiddenMessage(stage)}
	}

	// 4. the transition must be legal from the current status
	if _, ok := transitionTarget(request.LeaveStatus, stage, decision); !ok {
		return nil, &apperrors.InvalidStateError{
			Current: string(request.LeaveStatus),
			Message: fmt.Sprintf("cannot %s at %s stage", decision, stage),
		}
	}

	var approval *models.LeaveApproval
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Re-read under the row lock: a racing decision may have moved the
		// status since the precondition check.
		locked, err := s.requests.WithTx(tx).GetActiveByIDForUpdate(requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrLeaveRequestNotFound
			}
			return fmt.Errorf("failed to lock leave request: %w", err)
		}

		target, ok := transitionTarget(locked.LeaveStatus, stage, decision)
		if !ok {
			return &apperrors.InvalidStateError{
				Current: string(locked.LeaveStatus),
				Message: fmt.Sprintf("cannot %s at %s stage", decision, stage),
			}
		}

		approved := decision == models.DecisionApprove
		switch stage {
		case models.StageTeamLead:
			locked.TeamLeadApproval = &approved
			locked.ApprovedByTeamLeadID = &actor.ID
		case models.StageHR:
			locked.HRApproval = &approved
			locked.ApprovedByHRID = &actor.ID
			if approved {
				// Days come off the month the leave starts in.
				if _, err := s.ledger.DebitTx(tx, locked.EmployeeID, locked.LeaveTypeID, locked.StartDate, locked.DaysRequested); err != nil {
					return err
				}
			}
		}
		locked.LeaveStatus = target

		if err := s.requests.WithTx(tx).Save(locked); err != nil {
			return fmt.Errorf("failed to save leave request: %w", err)
		}

		approval = &models.LeaveApproval{
			LeaveRequestID: locked.ID,
			ApprovedByID:   actor.ID,
			ApprovalType:   stage,
			Decision:       decision,
			ApprovalDate:   time.Now().UTC(),
			Notes:          req.Notes,
			Status:         models.StatusActive,
		}
		if err := s.approvals.WithTx(tx).Create(approval); err != nil {
			return fmt.Errorf("failed to create approval record: %w", err)
		}

		request = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"leave_request": requestID,
		"stage":         stage,
		"decision":      decision,
		"new_status":    request.LeaveStatus,
	}).Info("leave decision recorded")

	return convertApprovalToResponse(approval, request.LeaveStatus), nil
}

// WithdrawRequest represents a withdrawal of an approved leave request
type WithdrawRequest struct {
	Notes string `json:"notes"`
}

// Withdraw reverses an HR-approved request: the ledger is credited, the
// status becomes WITHDRAWN (terminal) and a withdrawal record is appended.
// Only HR may withdraw, and only from HR_APPROVED.
func (s *ApprovalService) Withdraw(requestID uuid.UUID, actor *models.User, req *WithdrawRequest) (*ApprovalResponse, error) {
	request, err := s.requests.GetActiveByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("failed to load leave request: %w", err)
	}

	if !authz.CanWithdraw(actor) {
		return nil, &apperrors.ForbiddenError{Message: "only HR can withdraw leaves"}
	}

	if request.LeaveStatus != models.LeaveHRApproved {
		return nil, &apperrors.InvalidStateError{
			Current: string(request.LeaveStatus),
			Message: "only HR-approved leaves can be withdrawn",
		}
	}

	var approval *models.LeaveApproval
	err = s.db.Transaction(func(tx *gorm.DB) error {
		locked, err := s.requests.WithTx(tx).GetActiveByIDForUpdate(requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrLeaveRequestNotFound
			}
			return fmt.Errorf("failed to lock leave request: %w", err)
		}
		if locked.LeaveStatus != models.LeaveHRApproved {
			return &apperrors.InvalidStateError{
				Current: string(locked.LeaveStatus),
				Message: "only HR-approved leaves can be withdrawn",
			}
		}

		if _, err := s.ledger.CreditTx(tx, locked.EmployeeID, locked.LeaveTypeID, locked.StartDate, locked.DaysRequested); err != nil {
			return err
		}

		withdrawn := false
		locked.HRApproval = &withdrawn
		locked.LeaveStatus = models.LeaveWithdrawn
		if err := s.requests.WithTx(tx).Save(locked); err != nil {
			return fmt.Errorf("failed to save leave request: %w", err)
		}

		approval = &models.LeaveApproval{
			LeaveRequestID: locked.ID,
			ApprovedByID:   actor.ID,
			ApprovalType:   models.StageHR,
			Decision:       models.DecisionWithdraw,
			ApprovalDate:   time.Now().UTC(),
			Notes:          req.Notes,
			Status:         models.StatusActive,
		}
		if err := s.approvals.WithTx(tx).Create(approval); err != nil {
			return fmt.Errorf("failed to create approval record: %w", err)
		}

		request = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"leave_request": requestID,
		"days_restored": request.DaysRequested,
	}).Info("leave withdrawn")

	return convertApprovalToResponse(approval, request.LeaveStatus), nil
}

// ListApprovals retrieves the audit trail of a request, newest first
func (s *ApprovalService) ListApprovals(requestID uuid.UUID) ([]ApprovalResponse, error) {
	if _, err := s.requests.GetActiveByID(requestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("failed to load leave request: %w", err)
	}

	approvals, err := s.approvals.ListByRequest(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approvals: %w", err)
	}

	responses := make([]ApprovalResponse, 0, len(approvals))
	for i := range approvals {
		responses = append(responses, *convertApprovalToResponse(&approvals[i], ""))
	}
	return responses, nil
}

// transitionTarget returns the status a legal transition leads to, or false
// when the decision is not legal from the current status. Terminal states
// admit nothing here; withdrawal is handled separately.
//
//	PENDING            --approve(team_lead)--> TEAM_LEAD_APPROVED
//	PENDING            --approve(hr)--------> HR_APPROVED
//	TEAM_LEAD_APPROVED --approve(hr)--------> HR_APPROVED
//	non-terminal       --reject(either)-----> REJECTED
func transitionTarget(current models.LeaveStatus, stage models.ApprovalStage, decision models.Decision) (models.LeaveStatus, bool) {
	if current.IsTerminal() {
		return "", false
	}

	switch decision {
	case models.DecisionApprove:
		switch stage {
		case models.StageTeamLead:
			if current == models.LeavePending {
				return models.LeaveTeamLeadApproved, true
			}
			return "", false
		case models.StageHR:
			return models.LeaveHRApproved, true
		}
	case models.DecisionReject:
		return models.LeaveRejected, true
	}
	return "", false
}

func forbiddenMessage(stage models.ApprovalStage) string {
	if stage == models.StageTeamLead {
		return "only the employee's team lead can approve at the team lead stage"
	}
	return "only HR can give final approval"
}

func convertApprovalToResponse(approval *models.LeaveApproval, status models.LeaveStatus) *ApprovalResponse {
	return &ApprovalResponse{
		ID:             approval.ID,
		LeaveRequestID: approval.LeaveRequestID,
		ApprovedBy:     approval.ApprovedByID,
		ApprovalType:   approval.ApprovalType,
		Decision:       approval.Decision,
		ApprovalDate:   approval.ApprovalDate.Format(time.RFC3339),
		Notes:          approval.Notes,
		LeaveStatus:    status,
	}
}
