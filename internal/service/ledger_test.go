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

type LedgerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAllocations *mocks.MockLeaveAllocationRepositoryInterface
	ledger          *service.Ledger

	employeeID  uuid.UUID
	leaveTypeID uuid.UUID
	month       time.Time
}

func (suite *LedgerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAllocations = mocks.NewMockLeaveAllocationRepositoryInterface(suite.ctrl)
	suite.ledger = service.NewLedger(nil, suite.mockAllocations, false, 2)

	suite.employeeID = uuid.New()
	suite.leaveTypeID = uuid.New()
	suite.month = models.MonthStart(time.Now().UTC())
}

func (suite *LedgerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LedgerTestSuite) allocation(allocated, used int) *models.LeaveAllocation {
	return &models.LeaveAllocation{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		EmployeeID:    suite.employeeID,
		LeaveTypeID:   suite.leaveTypeID,
		ValidMonth:    suite.month,
		AllocatedDays: allocated,
		UsedDays:      used,
		Status:        models.StatusActive,
	}
}

func (suite *LedgerTestSuite) TestDebit_Success() {
	allocation := suite.allocation(10, 0)
	suite.mockAllocations.EXPECT().WithTx(gomock.Any()).Return(suite.mockAllocations)
	suite.mockAllocations.EXPECT().
		GetActiveByTripleForUpdate(suite.employeeID, suite.leaveTypeID, suite.month).
		Return(allocation, nil)
	suite.mockAllocations.EXPECT().Save(allocation).Return(nil)

	result, err := suite.ledger.DebitTx(nil, suite.employeeID, suite.leaveTypeID, suite.month, 5)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, result.UsedDays)
	assert.Equal(suite.T(), 5, result.RemainingDays())
}

func (suite *LedgerTestSuite) TestDebit_ExactBalance() {
	allocation := suite.allocation(5, 2)
	suite.mockAllocations.EXPECT().WithTx(gomock.Any()).Return(suite.mockAllocations)
	suite.mockAllocations.EXPECT().
		GetActiveByTripleForUpdate(suite.employeeID, suite.leaveTypeID, suite.month).
		Return(allocation, nil)
	suite.mockAllocations.EXPECT().Save(allocation).Return(nil)

	result, err := suite.ledger.DebitTx(nil, suite.employeeID, suite.leaveTypeID, suite.month, 3)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, result.UsedDays)
	assert.Equal(suite.T(), 0, result.RemainingDays())
}

func (suite *LedgerTestSuite) TestDebit_InsufficientBalance() {
	allocation := suite.allocation(3, 0)
	suite.mockAllocations.EXPECT().WithTx(gomock.Any()).Return(suite.mockAllocations)
	suite.mockAllocations.EXPECT().
		GetActiveByTripleForUpdate(suite.employeeID, suite.leaveTypeID, suite.month).
		Return(allocation, nil)

	result, err := suite.ledger.DebitTx(nil, suite.employeeID, suite.leaveTypeID, suite.month, 5)

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), apperrors.IsInsufficientBalance(err))
	var balanceErr *apperrors.InsufficientBalanceError
	assert.ErrorAs(suite.T(), err, &balanceErr)
	assert.Equal(suite.T(), 3, balanceErr.Remaining)
	assert.Equal(suite.T(), 5, balanceErr.Requested)
	// the allocation must be untouched
	assert.Equal(suite.T(), 0, allocation.UsedDays)
}

func (suite *LedgerTestSuite) TestDebit_MissingAllocation() {
	suite.mockAllocations.EXPECT().WithTx(gomock.Any()).Return(suite.mockAllocations)
	suite.mockAllocations.EXPECT().
		GetActiveByTripleForUpdate(suite.employeeID, suite.leaveTypeID, suite.month).
		Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.ledger.DebitTx(nil, suite.employeeID, suite.leaveTypeID, suite.month, 1)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAllocationNotFound)
}

func (suite *LedgerTestSuite) TestDebit_AutoCreateFallback() {
	ledger := service.NewLedger(nil, suite.mockAllocations, true, 2)

	suite.mockAllocations.EXPECT().WithTx(gomock.Any()).Return(suite.mockAllocations)
	suite.mockAllocations.EXPECT().
		GetActiveByTripleForUpdate(suite.employeeID, suite.leaveTypeID, suite.month).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockAllocations.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.LeaveAllocation) error {
		assert.Equal(suite.T(), 2, a.AllocatedDays)
		assert.Equal(suite.T(), 0, a.UsedDays)
		assert.Equal(suite.T(), suite.month, a.ValidMonth)
		assert.Equal(suite.T(), models.StatusActive, a.Status)
		return nil
	})
	suite.mockAllocations.EXPECT().Save(gomock.Any()).Return(nil)

	result, err := ledger.DebitTx(nil, suite.employeeID, suite.leaveTypeID, suite.month, 2)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, result.UsedDays)
	assert.Equal(suite.T(), 0, result.RemainingDays())
}

func (suite *LedgerTestSuite) TestDebit_AutoCreateStillInsufficient() {
	ledger := service.NewLedger(nil, suite.mockAllocations, true, 2)

	suite.mockAllocations.EXPECT().WithTx(gomock.Any()).Return(suite.mockAllocations)
	suite.mockAllocations.EXPECT().
		GetActiveByTripleForUpdate(suite.employeeID, suite.leaveTypeID, suite.month).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockAllocations.EXPECT().Create(gomock.Any()).Return(nil)

	result, err := ledger.DebitTx(nil, suite.employeeID, suite.leaveTypeID, suite.month, 5)

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), apperrors.IsInsufficientBalance(err))
}

func (suite *LedgerTestSuite) TestDebit_NonPositiveDays() {
	_, err := suite.ledger.DebitTx(nil, suite.employeeID, suite.leaveTypeID, suite.month, 0)
	assert.True(suite.T(), apperrors.IsValidation(err))

	_, err = suite.ledger.DebitTx(nil, suite.employeeID, suite.leaveTypeID, suite.month, -3)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LedgerTestSuite) TestCredit_Success() {
	allocation := suite.allocation(10, 5)
	suite.mockAllocations.EXPECT().WithTx(gomock.Any()).Return(suite.mockAllocations)
	suite.mockAllocations.EXPECT().
		GetActiveByTripleForUpdate(suite.employeeID, suite.leaveTypeID, suite.month).
		Return(allocation, nil)
	suite.mockAllocations.EXPECT().Save(allocation).Return(nil)

	result, err := suite.ledger.CreditTx(nil, suite.employeeID, suite.leaveTypeID, suite.month, 3)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, result.UsedDays)
	assert.Equal(suite.T(), 8, result.RemainingDays())
}

func (suite *LedgerTestSuite) TestCredit_ClampsAtZero() {
	allocation := suite.allocation(10, 2)
	suite.mockAllocations.EXPECT().WithTx(gomock.Any()).Return(suite.mockAllocations)
	suite.mockAllocations.EXPECT().
		GetActiveByTripleForUpdate(suite.employeeID, suite.leaveTypeID, suite.month).
		Return(allocation, nil)
	suite.mockAllocations.EXPECT().Save(allocation).Return(nil)

	result, err := suite.ledger.CreditTx(nil, suite.employeeID, suite.leaveTypeID, suite.month, 5)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, result.UsedDays)
}

func (suite *LedgerTestSuite) TestCredit_MissingAllocation() {
	suite.mockAllocations.EXPECT().WithTx(gomock.Any()).Return(suite.mockAllocations)
	suite.mockAllocations.EXPECT().
		GetActiveByTripleForUpdate(suite.employeeID, suite.leaveTypeID, suite.month).
		Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.ledger.CreditTx(nil, suite.employeeID, suite.leaveTypeID, suite.month, 1)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAllocationNotFound)
}

func (suite *LedgerTestSuite) TestRemainingDays() {
	allocation := suite.allocation(10, 4)
	suite.mockAllocations.EXPECT().
		GetActiveByTriple(suite.employeeID, suite.leaveTypeID, suite.month).
		Return(allocation, nil)

	remaining, err := suite.ledger.RemainingDays(suite.employeeID, suite.leaveTypeID, suite.month)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 6, remaining)
}

func (suite *LedgerTestSuite) TestRemainingDays_MissingAllocation() {
	suite.mockAllocations.EXPECT().
		GetActiveByTriple(suite.employeeID, suite.leaveTypeID, suite.month).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.ledger.RemainingDays(suite.employeeID, suite.leaveTypeID, suite.month)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAllocationNotFound)
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}
