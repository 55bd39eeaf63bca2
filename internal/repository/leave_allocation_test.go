//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"ems-backend/internal/database/models"
	"ems-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeaveAllocationRepositoryTestSuite tests the LeaveAllocationRepository
type LeaveAllocationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeaveAllocationRepository
	factories     *testutils.FactorySet
}

func (suite *LeaveAllocationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLeaveAllocationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *LeaveAllocationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *LeaveAllocationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *LeaveAllocationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seed persists a user and a leave type to hang allocations off
func (suite *LeaveAllocationRepositoryTestSuite) seed() (*models.User, *models.LeaveType) {
	db := suite.baseTestSuite.DB
	user := suite.factories.User.Create()
	suite.Require().NoError(db.Create(user).Error)
	leaveType := suite.factories.LeaveType.Create()
	suite.Require().NoError(db.Create(leaveType).Error)
	return user, leaveType
}

func (suite *LeaveAllocationRepositoryTestSuite) TestGetActiveByTriple_NormalizesMonth() {
	user, leaveType := suite.seed()
	month := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	allocation := suite.factories.Allocation.WithMonth(user.ID, leaveType.ID, month)
	suite.Require().NoError(suite.repo.Create(allocation))

	// A mid-month lookup resolves to the same row as the first-of-month.
	midMonth := time.Date(2026, 9, 17, 13, 45, 0, 0, time.UTC)
	found, err := suite.repo.GetActiveByTriple(user.ID, leaveType.ID, midMonth)

	suite.NoError(err)
	suite.Equal(allocation.ID, found.ID)
}

func (suite *LeaveAllocationRepositoryTestSuite) TestGetActiveByTriple_WrongMonth() {
	user, leaveType := suite.seed()
	month := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	allocation := suite.factories.Allocation.WithMonth(user.ID, leaveType.ID, month)
	suite.Require().NoError(suite.repo.Create(allocation))

	_, err := suite.repo.GetActiveByTriple(user.ID, leaveType.ID, month.AddDate(0, 1, 0))

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *LeaveAllocationRepositoryTestSuite) TestGetActiveByTriple_ExcludesRemoved() {
	user, leaveType := suite.seed()
	allocation := suite.factories.Allocation.Create(user.ID, leaveType.ID)
	suite.Require().NoError(suite.repo.Create(allocation))
	suite.Require().NoError(suite.repo.SoftDelete(allocation.ID))

	_, err := suite.repo.GetActiveByTriple(user.ID, leaveType.ID, allocation.ValidMonth)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *LeaveAllocationRepositoryTestSuite) TestCreate_DuplicateTripleRejected() {
	user, leaveType := suite.seed()
	first := suite.factories.Allocation.Create(user.ID, leaveType.ID)
	suite.Require().NoError(suite.repo.Create(first))

	dup := suite.factories.Allocation.Create(user.ID, leaveType.ID)
	err := suite.repo.Create(dup)

	suite.Error(err)
}

func (suite *LeaveAllocationRepositoryTestSuite) TestCreate_SameTripleAfterRemoval() {
	// The unique index only covers active rows, so a removed allocation does
	// not block re-creating one for the same triple.
	user, leaveType := suite.seed()
	first := suite.factories.Allocation.Create(user.ID, leaveType.ID)
	suite.Require().NoError(suite.repo.Create(first))
	suite.Require().NoError(suite.repo.SoftDelete(first.ID))

	replacement := suite.factories.Allocation.Create(user.ID, leaveType.ID)
	suite.NoError(suite.repo.Create(replacement))
}

func (suite *LeaveAllocationRepositoryTestSuite) TestCreate_RepeatedRemovalCycles() {
	// Removed rows pile up outside the partial index, so any number of
	// remove/re-provision cycles on the same triple must succeed.
	user, leaveType := suite.seed()
	for i := 0; i < 3; i++ {
		allocation := suite.factories.Allocation.Create(user.ID, leaveType.ID)
		suite.Require().NoError(suite.repo.Create(allocation))
		suite.Require().NoError(suite.repo.SoftDelete(allocation.ID))
	}

	final := suite.factories.Allocation.Create(user.ID, leaveType.ID)
	suite.NoError(suite.repo.Create(final))
}

func (suite *LeaveAllocationRepositoryTestSuite) TestSave_PersistsUsedDays() {
	user, leaveType := suite.seed()
	allocation := suite.factories.Allocation.WithDays(user.ID, leaveType.ID, 10, 0)
	suite.Require().NoError(suite.repo.Create(allocation))

	allocation.UsedDays = 4
	suite.Require().NoError(suite.repo.Save(allocation))

	reloaded, err := suite.repo.GetByID(allocation.ID)
	suite.NoError(err)
	suite.Equal(4, reloaded.UsedDays)
	suite.Equal(6, reloaded.RemainingDays())
}

func (suite *LeaveAllocationRepositoryTestSuite) TestGetActiveByTripleForUpdate_InTransaction() {
	user, leaveType := suite.seed()
	allocation := suite.factories.Allocation.Create(user.ID, leaveType.ID)
	suite.Require().NoError(suite.repo.Create(allocation))

	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		locked, err := suite.repo.WithTx(tx).GetActiveByTripleForUpdate(
			user.ID, leaveType.ID, allocation.ValidMonth)
		if err != nil {
			return err
		}
		locked.UsedDays = 2
		return suite.repo.WithTx(tx).Save(locked)
	})

	suite.NoError(err)
	reloaded, err := suite.repo.GetByID(allocation.ID)
	suite.NoError(err)
	suite.Equal(2, reloaded.UsedDays)
}

func (suite *LeaveAllocationRepositoryTestSuite) TestListByEmployee() {
	user, leaveType := suite.seed()
	other, _ := suite.seed()
	month := models.MonthStart(time.Now().UTC())
	suite.Require().NoError(suite.repo.Create(
		suite.factories.Allocation.WithMonth(user.ID, leaveType.ID, month)))
	suite.Require().NoError(suite.repo.Create(
		suite.factories.Allocation.WithMonth(user.ID, leaveType.ID, month.AddDate(0, 1, 0))))
	suite.Require().NoError(suite.repo.Create(
		suite.factories.Allocation.WithMonth(other.ID, leaveType.ID, month)))

	allocations, err := suite.repo.ListByEmployee(user.ID)

	suite.NoError(err)
	suite.Len(allocations, 2)
	// newest month first
	suite.True(allocations[0].ValidMonth.After(allocations[1].ValidMonth))
}

func (suite *LeaveAllocationRepositoryTestSuite) TestSoftDelete_NotFound() {
	err := suite.repo.SoftDelete(suite.factories.Allocation.Create(
		suite.factories.User.Create().ID, suite.factories.LeaveType.Create().ID).ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestLeaveAllocationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveAllocationRepositoryTestSuite))
}
