package service_test

import (
	"testing"
	"time"

	"ems-backend/internal/database/models"
	apperrors "ems-backend/internal/errors"
	"ems-backend/internal/mocks"
	"ems-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type LeaveRequestServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRequests    *mocks.MockLeaveRequestRepositoryInterface
	mockUsers       *mocks.MockUserRepositoryInterface
	mockLeaveTypes  *mocks.MockLeaveTypeRepositoryInterface
	mockAllocations *mocks.MockLeaveAllocationRepositoryInterface
	requestService  *service.LeaveRequestService

	teamID    uuid.UUID
	employee  *models.User
	leaveType *models.LeaveType
}

func (suite *LeaveRequestServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRequests = mocks.NewMockLeaveRequestRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockLeaveTypes = mocks.NewMockLeaveTypeRepositoryInterface(suite.ctrl)
	suite.mockAllocations = mocks.NewMockLeaveAllocationRepositoryInterface(suite.ctrl)

	ledger := service.NewLedger(nil, suite.mockAllocations, false, 2)
	suite.requestService = service.NewLeaveRequestService(
		suite.mockRequests, suite.mockUsers, suite.mockLeaveTypes, ledger, validator.New())

	suite.teamID = uuid.New()
	suite.employee = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "employee@test.com",
		Role:      models.RoleEmployee,
		TeamID:    &suite.teamID,
		Status:    models.StatusActive,
	}
	suite.leaveType = &models.LeaveType{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "annual",
		Status:    models.StatusActive,
	}
}

func (suite *LeaveRequestServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(service.DateLayout)
}

func (suite *LeaveRequestServiceTestSuite) validRequest() *service.CreateLeaveRequestRequest {
	return &service.CreateLeaveRequestRequest{
		EmployeeID:    suite.employee.ID,
		LeaveTypeID:   suite.leaveType.ID,
		StartDate:     futureDate(7),
		EndDate:       futureDate(11),
		DaysRequested: 5,
		Reason:        "family trip",
	}
}

func (suite *LeaveRequestServiceTestSuite) expectAllocation(allocated, used int) {
	suite.mockAllocations.EXPECT().
		GetActiveByTriple(suite.employee.ID, suite.leaveType.ID, gomock.Any()).
		Return(&models.LeaveAllocation{
			EmployeeID:    suite.employee.ID,
			LeaveTypeID:   suite.leaveType.ID,
			AllocatedDays: allocated,
			UsedDays:      used,
			Status:        models.StatusActive,
		}, nil)
}

func (suite *LeaveRequestServiceTestSuite) TestCreate_Success() {
	req := suite.validRequest()
	suite.mockUsers.EXPECT().GetActiveByID(suite.employee.ID).Return(suite.employee, nil)
	suite.mockLeaveTypes.EXPECT().GetActiveByID(suite.leaveType.ID).Return(suite.leaveType, nil)
	suite.expectAllocation(10, 0)
	suite.mockRequests.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.LeaveRequest) error {
		assert.Equal(suite.T(), models.LeavePending, r.LeaveStatus)
		assert.Equal(suite.T(), 5, r.DaysRequested)
		assert.Nil(suite.T(), r.TeamLeadApproval)
		assert.Nil(suite.T(), r.HRApproval)
		return nil
	})

	resp, err := suite.requestService.CreateLeaveRequest(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.LeavePending, resp.LeaveStatus)
	assert.Equal(suite.T(), "annual", resp.LeaveTypeName)
	assert.Equal(suite.T(), "employee@test.com", resp.EmployeeEmail)
}

func (suite *LeaveRequestServiceTestSuite) TestCreate_MissingFields() {
	resp, err := suite.requestService.CreateLeaveRequest(&service.CreateLeaveRequestRequest{})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeaveRequestServiceTestSuite) TestCreate_BadDateFormat() {
	req := suite.validRequest()
	req.StartDate = "07/15/2026"

	resp, err := suite.requestService.CreateLeaveRequest(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeaveRequestServiceTestSuite) TestCreate_EndBeforeStart() {
	req := suite.validRequest()
	req.StartDate = futureDate(11)
	req.EndDate = futureDate(7)

	resp, err := suite.requestService.CreateLeaveRequest(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeaveRequestServiceTestSuite) TestCreate_PastStartDate() {
	req := suite.validRequest()
	req.StartDate = futureDate(-3)
	req.EndDate = futureDate(2)

	resp, err := suite.requestService.CreateLeaveRequest(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeaveRequestServiceTestSuite) TestCreate_StartsToday() {
	// today is not a past date
	req := suite.validRequest()
	req.StartDate = futureDate(0)
	req.EndDate = futureDate(4)
	suite.mockUsers.EXPECT().GetActiveByID(suite.employee.ID).Return(suite.employee, nil)
	suite.mockLeaveTypes.EXPECT().GetActiveByID(suite.leaveType.ID).Return(suite.leaveType, nil)
	suite.expectAllocation(10, 0)
	suite.mockRequests.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := suite.requestService.CreateLeaveRequest(req)

	assert.NoError(suite.T(), err)
}

func (suite *LeaveRequestServiceTestSuite) TestCreate_EmployeeNotFound() {
	req := suite.validRequest()
	suite.mockUsers.EXPECT().GetActiveByID(suite.employee.ID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.requestService.CreateLeaveRequest(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeaveRequestServiceTestSuite) TestCreate_EmployeeWithoutTeam() {
	req := suite.validRequest()
	orphan := *suite.employee
	orphan.TeamID = nil
	suite.mockUsers.EXPECT().GetActiveByID(suite.employee.ID).Return(&orphan, nil)

	resp, err := suite.requestService.CreateLeaveRequest(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeaveRequestServiceTestSuite) TestCreate_LeaveTypeNotFound() {
	req := suite.validRequest()
	suite.mockUsers.EXPECT().GetActiveByID(suite.employee.ID).Return(suite.employee, nil)
	suite.mockLeaveTypes.EXPECT().GetActiveByID(suite.leaveType.ID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.requestService.CreateLeaveRequest(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeaveRequestServiceTestSuite) TestCreate_NoAllocation() {
	req := suite.validRequest()
	suite.mockUsers.EXPECT().GetActiveByID(suite.employee.ID).Return(suite.employee, nil)
	suite.mockLeaveTypes.EXPECT().GetActiveByID(suite.leaveType.ID).Return(suite.leaveType, nil)
	suite.mockAllocations.EXPECT().
		GetActiveByTriple(suite.employee.ID, suite.leaveType.ID, gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.requestService.CreateLeaveRequest(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeaveRequestServiceTestSuite) TestCreate_InsufficientBalance() {
	req := suite.validRequest() // requests 5 days
	suite.mockUsers.EXPECT().GetActiveByID(suite.employee.ID).Return(suite.employee, nil)
	suite.mockLeaveTypes.EXPECT().GetActiveByID(suite.leaveType.ID).Return(suite.leaveType, nil)
	suite.expectAllocation(3, 0)

	resp, err := suite.requestService.CreateLeaveRequest(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "available: 3")
}

func (suite *LeaveRequestServiceTestSuite) TestCreate_ExactBalance() {
	req := suite.validRequest() // requests 5 days
	suite.mockUsers.EXPECT().GetActiveByID(suite.employee.ID).Return(suite.employee, nil)
	suite.mockLeaveTypes.EXPECT().GetActiveByID(suite.leaveType.ID).Return(suite.leaveType, nil)
	suite.expectAllocation(10, 5)
	suite.mockRequests.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := suite.requestService.CreateLeaveRequest(req)

	assert.NoError(suite.T(), err)
}

func (suite *LeaveRequestServiceTestSuite) TestList_EmployeeSeesOwn() {
	suite.mockRequests.EXPECT().
		ListByEmployee(suite.employee.ID, 20, 0).
		Return([]models.LeaveRequest{}, int64(0), nil)

	_, _, err := suite.requestService.ListLeaveRequestsFor(suite.employee, 20, 0)
	assert.NoError(suite.T(), err)
}

func (suite *LeaveRequestServiceTestSuite) TestList_TeamLeadSeesTeam() {
	lead := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Role:      models.RoleTeamLead,
		TeamID:    &suite.teamID,
	}
	suite.mockRequests.EXPECT().
		ListByTeam(suite.teamID, 20, 0).
		Return([]models.LeaveRequest{}, int64(0), nil)

	_, _, err := suite.requestService.ListLeaveRequestsFor(lead, 20, 0)
	assert.NoError(suite.T(), err)
}

func (suite *LeaveRequestServiceTestSuite) TestList_HRSeesAll() {
	hr := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleHR}
	suite.mockRequests.EXPECT().
		List(20, 0).
		Return([]models.LeaveRequest{}, int64(0), nil)

	_, _, err := suite.requestService.ListLeaveRequestsFor(hr, 20, 0)
	assert.NoError(suite.T(), err)
}

func (suite *LeaveRequestServiceTestSuite) TestGet_NotFound() {
	id := uuid.New()
	suite.mockRequests.EXPECT().GetActiveByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.requestService.GetLeaveRequest(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaveRequestNotFound)
}

func (suite *LeaveRequestServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockRequests.EXPECT().SoftDelete(id).Return(gorm.ErrRecordNotFound)

	err := suite.requestService.DeleteLeaveRequest(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaveRequestNotFound)
}

func TestLeaveRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveRequestServiceTestSuite))
}
