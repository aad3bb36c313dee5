package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcashdrawer "github.com/posdesk/backend/internal/application/cashdrawer"
)

// CashDrawerHandler handles cash drawer session API endpoints
type CashDrawerHandler struct {
	BaseHandler
	shiftService      *appcashdrawer.ShiftService
	withdrawalService *appcashdrawer.WithdrawalService
	dashboardService  *appcashdrawer.DashboardService
}

// NewCashDrawerHandler creates a new CashDrawerHandler
func NewCashDrawerHandler(
	shiftService *appcashdrawer.ShiftService,
	withdrawalService *appcashdrawer.WithdrawalService,
	dashboardService *appcashdrawer.DashboardService,
) *CashDrawerHandler {
	return &CashDrawerHandler{
		shiftService:      shiftService,
		withdrawalService: withdrawalService,
		dashboardService:  dashboardService,
	}
}

// StockControlRequest marks the open session's stock count as done. The
// operator ID is optional; the stock-taking subsystem calls this hook on
// behalf of the counting operator, terminals omit it and the JWT is used.
type StockControlRequest struct {
	OperatorID *uuid.UUID `json:"operator_id"`
}

// OpenShift godoc
// @ID           openCashDrawerShift
// @Summary      Open or resume a cash shift
// @Description  Opens a new session, resumes the caller's open one, or reports the drawer holder
// @Tags         cashdrawer
// @Accept       json
// @Produce      json
// @Success      200 {object} APIResponse[appcashdrawer.OpenShiftResult]
// @Failure      401 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /cashdrawer/shifts/open [post]
func (h *CashDrawerHandler) OpenShift(c *gin.Context) {
	operatorID, err := getOperatorID(c)
	if err != nil {
		h.Unauthorized(c, "Operator identity required")
		return
	}

	result, err := h.shiftService.OpenOrResume(c.Request.Context(), operatorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// OpenShiftManual godoc
// @ID           openCashDrawerShiftManual
// @Summary      Explicitly open a shift
// @Description  Privileged operators open a session without the resume/observe flow
// @Tags         cashdrawer
// @Accept       json
// @Produce      json
// @Success      201 {object} APIResponse[appcashdrawer.SessionResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /cashdrawer/shifts/open-manual [post]
func (h *CashDrawerHandler) OpenShiftManual(c *gin.Context) {
	operatorID, err := getOperatorID(c)
	if err != nil {
		h.Unauthorized(c, "Operator identity required")
		return
	}

	session, err := h.shiftService.OpenManual(c.Request.Context(), operatorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, session)
}

// CloseShift godoc
// @ID           closeCashDrawerShift
// @Summary      Close the caller's shift
// @Description  Reconciles theoretical cash against the counted amount and closes the session
// @Tags         cashdrawer
// @Accept       json
// @Produce      json
// @Param        request body appcashdrawer.CloseShiftRequest true "Counted cash"
// @Success      200 {object} APIResponse[appcashdrawer.SessionResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /cashdrawer/shifts/close [post]
func (h *CashDrawerHandler) CloseShift(c *gin.Context) {
	operatorID, err := getOperatorID(c)
	if err != nil {
		h.Unauthorized(c, "Operator identity required")
		return
	}

	var req appcashdrawer.CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	session, err := h.shiftService.Close(c.Request.Context(), operatorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, session)
}

// GetShiftStatus godoc
// @ID           getCashDrawerShiftStatus
// @Summary      Get the caller's shift status
// @Description  Reports whether the caller holds the open session
// @Tags         cashdrawer
// @Produce      json
// @Success      200 {object} APIResponse[appcashdrawer.ActiveResponse]
// @Failure      401 {object} ErrorResponse
// @Router       /cashdrawer/shifts/status [get]
func (h *CashDrawerHandler) GetShiftStatus(c *gin.Context) {
	operatorID, err := getOperatorID(c)
	if err != nil {
		h.Unauthorized(c, "Operator identity required")
		return
	}

	status, err := h.shiftService.Active(c.Request.Context(), operatorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, status)
}

// ListShifts godoc
// @ID           listCashDrawerShifts
// @Summary      List past shifts
// @Description  Returns session history filtered by date range, operator, variance and stock control
// @Tags         cashdrawer
// @Produce      json
// @Param        from_date query string false "Opened on or after (YYYY-MM-DD)"
// @Param        to_date query string false "Opened on or before (YYYY-MM-DD)"
// @Param        operator_id query string false "Operator UUID"
// @Param        variance_only query bool false "Only sessions with a cash variance"
// @Param        stock_control_done query bool false "Filter by stock control flag"
// @Param        limit query int false "Max results (default 50)"
// @Success      200 {object} APIResponse[[]appcashdrawer.SessionResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /cashdrawer/shifts [get]
func (h *CashDrawerHandler) ListShifts(c *gin.Context) {
	var filter appcashdrawer.HistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sessions, err := h.dashboardService.History(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sessions)
}

// MarkStockControlDone godoc
// @ID           markCashDrawerStockControlDone
// @Summary      Flag the open session's stock count as done
// @Description  Called by terminals or the stock-taking subsystem when a count completes
// @Tags         cashdrawer
// @Accept       json
// @Produce      json
// @Param        request body StockControlRequest false "Optional operator override"
// @Success      204
// @Failure      401 {object} ErrorResponse
// @Router       /cashdrawer/stock-control [post]
func (h *CashDrawerHandler) MarkStockControlDone(c *gin.Context) {
	var req StockControlRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		h.BadRequest(c, err.Error())
		return
	}

	operatorID := uuid.Nil
	if req.OperatorID != nil {
		operatorID = *req.OperatorID
	} else {
		id, err := getOperatorID(c)
		if err != nil {
			h.Unauthorized(c, "Operator identity required")
			return
		}
		operatorID = id
	}

	if err := h.shiftService.MarkStockControlDone(c.Request.Context(), operatorID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// GetStockControlStatus godoc
// @ID           getCashDrawerStockControlStatus
// @Summary      Get the stock control flag for the caller's session
// @Tags         cashdrawer
// @Produce      json
// @Success      200 {object} APIResponse[appcashdrawer.StockControlStatusResponse]
// @Failure      401 {object} ErrorResponse
// @Router       /cashdrawer/stock-control [get]
func (h *CashDrawerHandler) GetStockControlStatus(c *gin.Context) {
	operatorID, err := getOperatorID(c)
	if err != nil {
		h.Unauthorized(c, "Operator identity required")
		return
	}

	status, err := h.shiftService.StockControlStatus(c.Request.Context(), operatorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, status)
}

// RecordWithdrawal godoc
// @ID           recordCashDrawerWithdrawal
// @Summary      Record a cash withdrawal
// @Description  Appends a withdrawal to the drawer ledger
// @Tags         cashdrawer
// @Accept       json
// @Produce      json
// @Param        request body appcashdrawer.RecordWithdrawalRequest true "Withdrawal"
// @Success      201 {object} APIResponse[appcashdrawer.WithdrawalResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /cashdrawer/withdrawals [post]
func (h *CashDrawerHandler) RecordWithdrawal(c *gin.Context) {
	operatorID, err := getOperatorID(c)
	if err != nil {
		h.Unauthorized(c, "Operator identity required")
		return
	}

	var req appcashdrawer.RecordWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	withdrawal, err := h.withdrawalService.Record(c.Request.Context(), operatorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, withdrawal)
}

// GetDashboard godoc
// @ID           getCashDrawerDashboard
// @Summary      Get today's dashboard summary
// @Description  Returns today's sales totals, cash on hand and the recent daily series
// @Tags         cashdrawer
// @Produce      json
// @Success      200 {object} APIResponse[appcashdrawer.SummaryResponse]
// @Router       /cashdrawer/dashboard [get]
func (h *CashDrawerHandler) GetDashboard(c *gin.Context) {
	summary, err := h.dashboardService.TodaysSummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}
