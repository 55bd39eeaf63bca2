//go:build integration

package service_test

import (
	"sync"
	"testing"

	"ems-backend/internal/database/models"
	apperrors "ems-backend/internal/errors"
	"ems-backend/internal/repository"
	"ems-backend/internal/service"
	"ems-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ApprovalFlowTestSuite runs the decision and withdrawal transitions against a
// real database, since they span a transaction with row locks and ledger writes.
type ApprovalFlowTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	requests        *repository.LeaveRequestRepository
	allocations     *repository.LeaveAllocationRepository
	approvalService *service.ApprovalService
}

func (suite *ApprovalFlowTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	db := suite.baseTestSuite.DB
	suite.requests = repository.NewLeaveRequestRepository(db)
	suite.allocations = repository.NewLeaveAllocationRepository(db)
	ledger := service.NewLedger(db, suite.allocations, false, suite.baseTestSuite.Config.DefaultAllocatedDays)
	suite.approvalService = service.NewApprovalService(
		db, suite.requests, repository.NewLeaveApprovalRepository(db), ledger)
}

func (suite *ApprovalFlowTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ApprovalFlowTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ApprovalFlowTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

type flowFixture struct {
	lead       *models.User
	member     *models.User
	hr         *models.User
	leaveType  *models.LeaveType
	allocation *models.LeaveAllocation
	request    *models.LeaveRequest
}

// seedFlow persists a team with a lead and member, an HR user, a leave type,
// an allocation covering the month of the request's start date, and a pending
// three-day request from the member.
func (suite *ApprovalFlowTestSuite) seedFlow(allocatedDays int) *flowFixture {
	db := suite.baseTestSuite.DB

	team, lead, member := suite.factories.CreateTeamWithLead()
	suite.Require().NoError(db.Create(team).Error)
	suite.Require().NoError(db.Create(lead).Error)
	suite.Require().NoError(db.Create(member).Error)

	hr := suite.factories.User.WithRole(models.RoleHR)
	suite.Require().NoError(db.Create(hr).Error)

	leaveType := suite.factories.LeaveType.Create()
	suite.Require().NoError(db.Create(leaveType).Error)

	request := suite.factories.LeaveRequest.Create(member.ID, leaveType.ID)
	suite.Require().NoError(db.Create(request).Error)

	allocation := suite.factories.Allocation.WithMonth(member.ID, leaveType.ID, request.StartDate)
	allocation.AllocatedDays = allocatedDays
	suite.Require().NoError(db.Create(allocation).Error)

	return &flowFixture{
		lead:       lead,
		member:     member,
		hr:         hr,
		leaveType:  leaveType,
		allocation: allocation,
		request:    request,
	}
}

func (suite *ApprovalFlowTestSuite) reloadUsedDays(fx *flowFixture) int {
	allocation, err := suite.allocations.GetActiveByTriple(
		fx.member.ID, fx.leaveType.ID, fx.request.StartDate)
	suite.Require().NoError(err)
	return allocation.UsedDays
}

func (suite *ApprovalFlowTestSuite) TestApproveChain() {
	fx := suite.seedFlow(10)

	// Team lead approval moves the status but leaves the ledger alone.
	resp, err := suite.approvalService.Decide(fx.request.ID, fx.lead,
		&service.DecideRequest{Stage: "team_lead", Decision: "approve"})
	suite.Require().NoError(err)
	suite.Equal(models.LeaveTeamLeadApproved, resp.LeaveStatus)
	suite.Equal(0, suite.reloadUsedDays(fx))

	// HR approval is the point where days are consumed.
	resp, err = suite.approvalService.Decide(fx.request.ID, fx.hr,
		&service.DecideRequest{Stage: "hr", Decision: "approve"})
	suite.Require().NoError(err)
	suite.Equal(models.LeaveHRApproved, resp.LeaveStatus)
	suite.Equal(3, suite.reloadUsedDays(fx))

	reloaded, err := suite.requests.GetActiveByID(fx.request.ID)
	suite.Require().NoError(err)
	suite.Equal(models.LeaveHRApproved, reloaded.LeaveStatus)
	suite.Require().NotNil(reloaded.TeamLeadApproval)
	suite.True(*reloaded.TeamLeadApproval)
	suite.Require().NotNil(reloaded.HRApproval)
	suite.True(*reloaded.HRApproval)
	suite.Equal(fx.lead.ID, *reloaded.ApprovedByTeamLeadID)
	suite.Equal(fx.hr.ID, *reloaded.ApprovedByHRID)

	trail, err := suite.approvalService.ListApprovals(fx.request.ID)
	suite.Require().NoError(err)
	suite.Len(trail, 2)
}

func (suite *ApprovalFlowTestSuite) TestHRApprovesStraightFromPending() {
	fx := suite.seedFlow(10)

	resp, err := suite.approvalService.Decide(fx.request.ID, fx.hr,
		&service.DecideRequest{Stage: "hr", Decision: "approve"})

	suite.Require().NoError(err)
	suite.Equal(models.LeaveHRApproved, resp.LeaveStatus)
	suite.Equal(3, suite.reloadUsedDays(fx))
}

func (suite *ApprovalFlowTestSuite) TestReject_NoLedgerEffect() {
	fx := suite.seedFlow(10)

	resp, err := suite.approvalService.Decide(fx.request.ID, fx.lead,
		&service.DecideRequest{Stage: "team_lead", Decision: "reject", Notes: "coverage gap"})

	suite.Require().NoError(err)
	suite.Equal(models.LeaveRejected, resp.LeaveStatus)
	suite.Equal(0, suite.reloadUsedDays(fx))
}

func (suite *ApprovalFlowTestSuite) TestDecideOnTerminalRequest() {
	fx := suite.seedFlow(10)

	_, err := suite.approvalService.Decide(fx.request.ID, fx.hr,
		&service.DecideRequest{Stage: "hr", Decision: "approve"})
	suite.Require().NoError(err)

	_, err = suite.approvalService.Decide(fx.request.ID, fx.hr,
		&service.DecideRequest{Stage: "hr", Decision: "approve"})
	suite.True(apperrors.IsInvalidState(err))
	suite.Equal(3, suite.reloadUsedDays(fx))
}

func (suite *ApprovalFlowTestSuite) TestConcurrentHRApprovals() {
	// Two HR approvals race on the same request. The row lock serializes
	// them: the loser re-reads the committed status and fails the
	// transition, and the ledger is debited exactly once.
	fx := suite.seedFlow(10)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = suite.approvalService.Decide(fx.request.ID, fx.hr,
				&service.DecideRequest{Stage: "hr", Decision: "approve"})
		}(i)
	}
	wg.Wait()

	succeeded, conflicted := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case apperrors.IsInvalidState(err):
			conflicted++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, conflicted)
	suite.Equal(3, suite.reloadUsedDays(fx))

	reloaded, err := suite.requests.GetActiveByID(fx.request.ID)
	suite.Require().NoError(err)
	suite.Equal(models.LeaveHRApproved, reloaded.LeaveStatus)

	trail, err := suite.approvalService.ListApprovals(fx.request.ID)
	suite.Require().NoError(err)
	suite.Len(trail, 1)
}

func (suite *ApprovalFlowTestSuite) TestConcurrentApproveReplayAndWithdraw() {
	// From HR_APPROVED, a replayed approval races a withdrawal. The replay
	// observes a terminal status no matter the interleaving, so only the
	// withdrawal lands and the ledger ends balanced at zero.
	fx := suite.seedFlow(10)

	_, err := suite.approvalService.Decide(fx.request.ID, fx.hr,
		&service.DecideRequest{Stage: "hr", Decision: "approve"})
	suite.Require().NoError(err)
	suite.Equal(3, suite.reloadUsedDays(fx))

	var wg sync.WaitGroup
	var approveErr, withdrawErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, approveErr = suite.approvalService.Decide(fx.request.ID, fx.hr,
			&service.DecideRequest{Stage: "hr", Decision: "approve"})
	}()
	go func() {
		defer wg.Done()
		_, withdrawErr = suite.approvalService.Withdraw(fx.request.ID, fx.hr,
			&service.WithdrawRequest{})
	}()
	wg.Wait()

	suite.True(apperrors.IsInvalidState(approveErr))
	suite.NoError(withdrawErr)
	suite.Equal(0, suite.reloadUsedDays(fx))

	reloaded, err := suite.requests.GetActiveByID(fx.request.ID)
	suite.Require().NoError(err)
	suite.Equal(models.LeaveWithdrawn, reloaded.LeaveStatus)
}

func (suite *ApprovalFlowTestSuite) TestInsufficientBalanceRollsBack() {
	// Allocation covers 2 days but the request asks for 3: the HR approval
	// must fail and leave both the status and the ledger untouched.
	fx := suite.seedFlow(2)

	_, err := suite.approvalService.Decide(fx.request.ID, fx.hr,
		&service.DecideRequest{Stage: "hr", Decision: "approve"})

	suite.True(apperrors.IsInsufficientBalance(err))
	suite.Equal(0, suite.reloadUsedDays(fx))

	reloaded, err := suite.requests.GetActiveByID(fx.request.ID)
	suite.Require().NoError(err)
	suite.Equal(models.LeavePending, reloaded.LeaveStatus)
}

func (suite *ApprovalFlowTestSuite) TestWithdrawCreditsLedger() {
	fx := suite.seedFlow(10)

	_, err := suite.approvalService.Decide(fx.request.ID, fx.hr,
		&service.DecideRequest{Stage: "hr", Decision: "approve"})
	suite.Require().NoError(err)
	suite.Equal(3, suite.reloadUsedDays(fx))

	resp, err := suite.approvalService.Withdraw(fx.request.ID, fx.hr,
		&service.WithdrawRequest{Notes: "plans changed"})
	suite.Require().NoError(err)
	suite.Equal(models.LeaveWithdrawn, resp.LeaveStatus)
	suite.Equal(models.DecisionWithdraw, resp.Decision)
	suite.Equal(0, suite.reloadUsedDays(fx))

	// A withdrawn request stays withdrawn.
	_, err = suite.approvalService.Withdraw(fx.request.ID, fx.hr,
		&service.WithdrawRequest{})
	suite.True(apperrors.IsInvalidState(err))
}

func TestApprovalFlowTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalFlowTestSuite))
}
