package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ems-backend/internal/api/handlers"
	"ems-backend/internal/auth"
	"ems-backend/internal/database/models"
	apperrors "ems-backend/internal/errors"
	"ems-backend/internal/mocks"
	"ems-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ApprovalHandlerTestSuite defines the test suite for ApprovalHandler
type ApprovalHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockApproval *mocks.MockApprovalServiceInterface
	mockRequests *mocks.MockLeaveRequestServiceInterface
	handler      *handlers.ApprovalHandler
	router       *gin.Engine
	actor        *models.User
}

func (suite *ApprovalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockApproval = mocks.NewMockApprovalServiceInterface(suite.ctrl)
	suite.mockRequests = mocks.NewMockLeaveRequestServiceInterface(suite.ctrl)
	suite.handler = handlers.NewApprovalHandler(suite.mockApproval, suite.mockRequests)
	suite.actor = nil

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		if suite.actor != nil {
			c.Set(auth.ContextActorKey, suite.actor)
		}
		c.Next()
	})
	suite.router.POST("/leave-requests/:id/decisions", suite.handler.Decide)
	suite.router.POST("/leave-requests/:id/withdraw", suite.handler.Withdraw)
	suite.router.GET("/leave-requests/:id/approvals", suite.handler.ListApprovals)
}

func (suite *ApprovalHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ApprovalHandlerTestSuite) actAs(role models.Role) *models.User {
	suite.actor = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "actor@example.com",
		Role:      role,
	}
	return suite.actor
}

func (suite *ApprovalHandlerTestSuite) postJSON(url string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(http.MethodPost, url, reqBody)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

func (suite *ApprovalHandlerTestSuite) TestDecide_Approve_Success() {
	actor := suite.actAs(models.RoleTeamLead)
	requestID := uuid.New()

	expected := &service.ApprovalResponse{
		ID:             uuid.New(),
		LeaveRequestID: requestID,
		ApprovedBy:     actor.ID,
		ApprovalType:   models.StageTeamLead,
		Decision:       models.DecisionApprove,
		ApprovalDate:   time.Now().UTC().Format(time.RFC3339),
		LeaveStatus:    models.LeaveTeamLeadApproved,
	}

	suite.mockApproval.EXPECT().
		Decide(requestID, actor, &service.DecideRequest{
			Stage:    "team_lead",
			Decision: "approve",
			Notes:    "looks fine",
		}).
		Return(expected, nil)

	recorder := suite.postJSON("/leave-requests/"+requestID.String()+"/decisions", map[string]string{
		"approval_type": "team_lead",
		"decision":      "approve",
		"notes":         "looks fine",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ApprovalResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected.ID, response.ID)
	assert.Equal(suite.T(), models.StageTeamLead, response.ApprovalType)
	assert.Equal(suite.T(), models.LeaveTeamLeadApproved, response.LeaveStatus)
}

func (suite *ApprovalHandlerTestSuite) TestDecide_NotAuthenticated() {
	recorder := suite.postJSON("/leave-requests/"+uuid.New().String()+"/decisions", map[string]string{
		"approval_type": "hr",
		"decision":      "approve",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "not authenticated")
}

func (suite *ApprovalHandlerTestSuite) TestDecide_InvalidID() {
	suite.actAs(models.RoleHR)

	recorder := suite.postJSON("/leave-requests/not-a-uuid/decisions", map[string]string{
		"approval_type": "hr",
		"decision":      "approve",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "Invalid leave request ID")
}

func (suite *ApprovalHandlerTestSuite) TestDecide_Forbidden() {
	actor := suite.actAs(models.RoleTeamLead)
	requestID := uuid.New()

	suite.mockApproval.EXPECT().
		Decide(requestID, actor, gomock.Any()).
		Return(nil, &apperrors.ForbiddenError{Message: "team leads can only approve requests from their own team"})

	recorder := suite.postJSON("/leave-requests/"+requestID.String()+"/decisions", map[string]string{
		"approval_type": "team_lead",
		"decision":      "approve",
	})

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "own team")
}

func (suite *ApprovalHandlerTestSuite) TestDecide_InvalidStage() {
	actor := suite.actAs(models.RoleHR)
	requestID := uuid.New()

	suite.mockApproval.EXPECT().
		Decide(requestID, actor, gomock.Any()).
		Return(nil, &apperrors.InvalidInputError{Field: "approval_type", Value: "manager"})

	recorder := suite.postJSON("/leave-requests/"+requestID.String()+"/decisions", map[string]string{
		"approval_type": "manager",
		"decision":      "approve",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *ApprovalHandlerTestSuite) TestDecide_TerminalRequest() {
	actor := suite.actAs(models.RoleHR)
	requestID := uuid.New()

	suite.mockApproval.EXPECT().
		Decide(requestID, actor, gomock.Any()).
		Return(nil, &apperrors.InvalidStateError{
			Current: string(models.LeaveRejected),
			Message: "leave request is already finalized",
		})

	recorder := suite.postJSON("/leave-requests/"+requestID.String()+"/decisions", map[string]string{
		"approval_type": "hr",
		"decision":      "approve",
	})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "already finalized")
}

func (suite *ApprovalHandlerTestSuite) TestDecide_NotFound() {
	actor := suite.actAs(models.RoleHR)
	requestID := uuid.New()

	suite.mockApproval.EXPECT().
		Decide(requestID, actor, gomock.Any()).
		Return(nil, apperrors.ErrLeaveRequestNotFound)

	recorder := suite.postJSON("/leave-requests/"+requestID.String()+"/decisions", map[string]string{
		"approval_type": "hr",
		"decision":      "reject",
	})

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *ApprovalHandlerTestSuite) TestWithdraw_Success() {
	actor := suite.actAs(models.RoleHR)
	requestID := uuid.New()

	expected := &service.ApprovalResponse{
		ID:             uuid.New(),
		LeaveRequestID: requestID,
		ApprovedBy:     actor.ID,
		ApprovalType:   models.StageHR,
		Decision:       models.DecisionWithdraw,
		LeaveStatus:    models.LeaveWithdrawn,
	}

	suite.mockApproval.EXPECT().
		Withdraw(requestID, actor, &service.WithdrawRequest{Notes: "employee cancelled the trip"}).
		Return(expected, nil)

	recorder := suite.postJSON("/leave-requests/"+requestID.String()+"/withdraw", map[string]string{
		"notes": "employee cancelled the trip",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ApprovalResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.DecisionWithdraw, response.Decision)
	assert.Equal(suite.T(), models.LeaveWithdrawn, response.LeaveStatus)
}

func (suite *ApprovalHandlerTestSuite) TestWithdraw_EmptyBody() {
	actor := suite.actAs(models.RoleHR)
	requestID := uuid.New()

	suite.mockApproval.EXPECT().
		Withdraw(requestID, actor, &service.WithdrawRequest{}).
		Return(&service.ApprovalResponse{LeaveStatus: models.LeaveWithdrawn}, nil)

	recorder := suite.postJSON("/leave-requests/"+requestID.String()+"/withdraw", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *ApprovalHandlerTestSuite) TestWithdraw_NotHRApproved() {
	actor := suite.actAs(models.RoleHR)
	requestID := uuid.New()

	suite.mockApproval.EXPECT().
		Withdraw(requestID, actor, gomock.Any()).
		Return(nil, &apperrors.InvalidStateError{
			Current: string(models.LeavePending),
			Message: "only HR-approved leave requests can be withdrawn",
		})

	recorder := suite.postJSON("/leave-requests/"+requestID.String()+"/withdraw", nil)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func (suite *ApprovalHandlerTestSuite) TestListApprovals_Success() {
	suite.actAs(models.RoleHR)
	requestID := uuid.New()

	request := &models.LeaveRequest{
		BaseModel:   models.BaseModel{ID: requestID},
		EmployeeID:  uuid.New(),
		LeaveStatus: models.LeaveHRApproved,
	}
	approvals := []service.ApprovalResponse{
		{ID: uuid.New(), LeaveRequestID: requestID, ApprovalType: models.StageTeamLead, Decision: models.DecisionApprove},
		{ID: uuid.New(), LeaveRequestID: requestID, ApprovalType: models.StageHR, Decision: models.DecisionApprove},
	}

	suite.mockRequests.EXPECT().GetLeaveRequestModel(requestID).Return(request, nil)
	suite.mockApproval.EXPECT().ListApprovals(requestID).Return(approvals, nil)

	req := httptest.NewRequest(http.MethodGet, "/leave-requests/"+requestID.String()+"/approvals", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Approvals []service.ApprovalResponse `json:"approvals"`
		Total     int                        `json:"total"`
	}
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, response.Total)
	assert.Len(suite.T(), response.Approvals, 2)
}

func (suite *ApprovalHandlerTestSuite) TestListApprovals_ForbiddenForOtherEmployee() {
	suite.actAs(models.RoleEmployee)
	requestID := uuid.New()

	request := &models.LeaveRequest{
		BaseModel:  models.BaseModel{ID: requestID},
		EmployeeID: uuid.New(), // someone else's request
	}

	suite.mockRequests.EXPECT().GetLeaveRequestModel(requestID).Return(request, nil)

	req := httptest.NewRequest(http.MethodGet, "/leave-requests/"+requestID.String()+"/approvals", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "not allowed to view")
}

func (suite *ApprovalHandlerTestSuite) TestListApprovals_RequestNotFound() {
	suite.actAs(models.RoleHR)
	requestID := uuid.New()

	suite.mockRequests.EXPECT().GetLeaveRequestModel(requestID).Return(nil, apperrors.ErrLeaveRequestNotFound)

	req := httptest.NewRequest(http.MethodGet, "/leave-requests/"+requestID.String()+"/approvals", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func TestApprovalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalHandlerTestSuite))
}
