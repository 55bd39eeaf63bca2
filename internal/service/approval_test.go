package service_test

import (
	"testing"
	"time"

	"ems-backend/internal/database/models"
	apperrors "ems-backend/internal/errors"
	"ems-backend/internal/mocks"
	"ems-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ApprovalServiceTestSuite covers the precondition checks of the approval
// state machine: missing request, malformed input, authorization and illegal
// transitions. Successful transitions run against a real database in
// approval_flow_test.go since they span a transaction.
type ApprovalServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRequests    *mocks.MockLeaveRequestRepositoryInterface
	mockApprovals   *mocks.MockLeaveApprovalRepositoryInterface
	mockAllocations *mocks.MockLeaveAllocationRepositoryInterface
	approvalService *service.ApprovalService

	teamID uuid.UUID
	lead   *models.User
	hr     *models.User
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRequests = mocks.NewMockLeaveRequestRepositoryInterface(suite.ctrl)
	suite.mockApprovals = mocks.NewMockLeaveApprovalRepositoryInterface(suite.ctrl)
	suite.mockAllocations = mocks.NewMockLeaveAllocationRepositoryInterface(suite.ctrl)

	ledger := service.NewLedger(nil, suite.mockAllocations, false, 2)
	suite.approvalService = service.NewApprovalService(nil, suite.mockRequests, suite.mockApprovals, ledger)

	suite.teamID = uuid.New()
	suite.lead = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Role:      models.RoleTeamLead,
		TeamID:    &suite.teamID,
		Status:    models.StatusActive,
	}
	suite.hr = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Role:      models.RoleHR,
		Status:    models.StatusActive,
	}
}

func (suite *ApprovalServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ApprovalServiceTestSuite) pendingRequest() *models.LeaveRequest {
	employee := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Role:      models.RoleEmployee,
		TeamID:    &suite.teamID,
		Status:    models.StatusActive,
	}
	start := time.Now().UTC().AddDate(0, 0, 1)
	return &models.LeaveRequest{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		EmployeeID:    employee.ID,
		Employee:      employee,
		LeaveTypeID:   uuid.New(),
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 2),
		DaysRequested: 3,
		LeaveStatus:   models.LeavePending,
		Status:        models.StatusActive,
	}
}

func (suite *ApprovalServiceTestSuite) TestDecide_RequestNotFound() {
	id := uuid.New()
	suite.mockRequests.EXPECT().GetActiveByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.approvalService.Decide(id, suite.hr, &service.DecideRequest{
		Stage: "hr", Decision: "approve",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaveRequestNotFound)
}

func (suite *ApprovalServiceTestSuite) TestDecide_InvalidStage() {
	request := suite.pendingRequest()
	suite.mockRequests.EXPECT().GetActiveByID(request.ID).Return(request, nil)

	resp, err := suite.approvalService.Decide(request.ID, suite.hr, &service.DecideRequest{
		Stage: "ceo", Decision: "approve",
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsInvalidInput(err))
}

func (suite *ApprovalServiceTestSuite) TestDecide_InvalidDecision() {
	request := suite.pendingRequest()
	suite.mockRequests.EXPECT().GetActiveByID(request.ID).Return(request, nil)

	resp, err := suite.approvalService.Decide(request.ID, suite.hr, &service.DecideRequest{
		Stage: "hr", Decision: "maybe",
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsInvalidInput(err))
}

func (suite *ApprovalServiceTestSuite) TestDecide_WithdrawNotADecision() {
	// withdrawal has its own entry point and is rejected here
	request := suite.pendingRequest()
	suite.mockRequests.EXPECT().GetActiveByID(request.ID).Return(request, nil)

	resp, err := suite.approvalService.Decide(request.ID, suite.hr, &service.DecideRequest{
		Stage: "hr", Decision: "withdraw",
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsInvalidInput(err))
}

func (suite *ApprovalServiceTestSuite) TestDecide_EmployeeForbidden() {
	request := suite.pendingRequest()
	suite.mockRequests.EXPECT().GetActiveByID(request.ID).Return(request, nil)

	resp, err := suite.approvalService.Decide(request.ID, request.Employee, &service.DecideRequest{
		Stage: "team_lead", Decision: "approve",
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsForbidden(err))
}

func (suite *ApprovalServiceTestSuite) TestDecide_LeadOfOtherTeamForbidden() {
	request := suite.pendingRequest()
	otherTeam := uuid.New()
	otherLead := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Role:      models.RoleTeamLead,
		TeamID:    &otherTeam,
	}
	suite.mockRequests.EXPECT().GetActiveByID(request.ID).Return(request, nil)

	resp, err := suite.approvalService.Decide(request.ID, otherLead, &service.DecideRequest{
		Stage: "team_lead", Decision: "approve",
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsForbidden(err))
}

func (suite *ApprovalServiceTestSuite) TestDecide_TeamLeadAtHRStageForbidden() {
	request := suite.pendingRequest()
	suite.mockRequests.EXPECT().GetActiveByID(request.ID).Return(request, nil)

	resp, err := suite.approvalService.Decide(request.ID, suite.lead, &service.DecideRequest{
		Stage: "hr", Decision: "approve",
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsForbidden(err))
}

func (suite *ApprovalServiceTestSuite) TestDecide_TerminalStateRejected() {
	for _, status := range []models.LeaveStatus{
		models.LeaveRejected,
		models.LeaveHRApproved,
		models.LeaveWithdrawn,
	} {
		request := suite.pendingRequest()
		request.LeaveStatus = status
		suite.mockRequests.EXPECT().GetActiveByID(request.ID).Return(request, nil)

		resp, err := suite.approvalService.Decide(request.ID, suite.hr, &service.DecideRequest{
			Stage: "hr", Decision: "approve",
		})

		assert.Nil(suite.T(), resp)
		assert.True(suite.T(), apperrors.IsInvalidState(err), "status %s must not admit decisions", status)
	}
}

func (suite *ApprovalServiceTestSuite) TestDecide_TeamLeadApproveOnlyFromPending() {
	request := suite.pendingRequest()
	request.LeaveStatus = models.LeaveTeamLeadApproved
	suite.mockRequests.EXPECT().GetActiveByID(request.ID).Return(request, nil)

	resp, err := suite.approvalService.Decide(request.ID, suite.lead, &service.DecideRequest{
		Stage: "team_lead", Decision: "approve",
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsInvalidState(err))
}

func (suite *ApprovalServiceTestSuite) TestDecide_PreconditionOrder() {
	// an unauthorized actor on a terminal request gets Forbidden, not
	// InvalidState: authorization is checked before the transition
	request := suite.pendingRequest()
	request.LeaveStatus = models.LeaveRejected
	suite.mockRequests.EXPECT().GetActiveByID(request.ID).Return(request, nil)

	_, err := suite.approvalService.Decide(request.ID, request.Employee, &service.DecideRequest{
		Stage: "hr", Decision: "approve",
	})

	assert.True(suite.T(), apperrors.IsForbidden(err))
	assert.False(suite.T(), apperrors.IsInvalidState(err))
}

func (suite *ApprovalServiceTestSuite) TestWithdraw_RequestNotFound() {
	id := uuid.New()
	suite.mockRequests.EXPECT().GetActiveByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.approvalService.Withdraw(id, suite.hr, &service.WithdrawRequest{})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaveRequestNotFound)
}

func (suite *ApprovalServiceTestSuite) TestWithdraw_NonHRForbidden() {
	request := suite.pendingRequest()
	request.LeaveStatus = models.LeaveHRApproved

	for _, actor := range []*models.User{suite.lead, request.Employee} {
		suite.mockRequests.EXPECT().GetActiveByID(request.ID).Return(request, nil)

		resp, err := suite.approvalService.Withdraw(request.ID, actor, &service.WithdrawRequest{})

		assert.Nil(suite.T(), resp)
		assert.True(suite.T(), apperrors.IsForbidden(err))
	}
}

func (suite *ApprovalServiceTestSuite) TestWithdraw_OnlyFromHRApproved() {
	for _, status := range []models.LeaveStatus{
		models.LeavePending,
		models.LeaveTeamLeadApproved,
		models.LeaveRejected,
		models.LeaveWithdrawn,
	} {
		request := suite.pendingRequest()
		request.LeaveStatus = status
		suite.mockRequests.EXPECT().GetActiveByID(request.ID).Return(request, nil)

		resp, err := suite.approvalService.Withdraw(request.ID, suite.hr, &service.WithdrawRequest{})

		assert.Nil(suite.T(), resp)
		assert.True(suite.T(), apperrors.IsInvalidState(err), "status %s must not be withdrawable", status)
	}
}

func (suite *ApprovalServiceTestSuite) TestListApprovals() {
	request := suite.pendingRequest()
	approvals := []models.LeaveApproval{
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			LeaveRequestID: request.ID,
			ApprovedByID:   suite.hr.ID,
			ApprovalType:   models.StageHR,
			Decision:       models.DecisionApprove,
			ApprovalDate:   time.Now().UTC(),
		},
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			LeaveRequestID: request.ID,
			ApprovedByID:   suite.lead.ID,
			ApprovalType:   models.StageTeamLead,
			Decision:       models.DecisionApprove,
			ApprovalDate:   time.Now().UTC().Add(-time.Hour),
		},
	}
	suite.mockRequests.EXPECT().GetActiveByID(request.ID).Return(request, nil)
	suite.mockApprovals.EXPECT().ListByRequest(request.ID).Return(approvals, nil)

	resp, err := suite.approvalService.ListApprovals(request.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), models.StageHR, resp[0].ApprovalType)
	assert.Equal(suite.T(), models.StageTeamLead, resp[1].ApprovalType)
}

func (suite *ApprovalServiceTestSuite) TestListApprovals_RequestNotFound() {
	id := uuid.New()
	suite.mockRequests.EXPECT().GetActiveByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.approvalService.ListApprovals(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaveRequestNotFound)
}

func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
