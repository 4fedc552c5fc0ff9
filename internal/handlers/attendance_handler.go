package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-saas/internal/dto"
	"github.com/BruksfildServices01/gym-saas/internal/httpresp"
	"github.com/BruksfildServices01/gym-saas/internal/timezone"
	ucAttendance "github.com/BruksfildServices01/gym-saas/internal/usecase/attendance"
)

// ======================================================
// HANDLER
// ======================================================

type AttendanceHandler struct {
	mark         *ucAttendance.MarkAttendance
	listByMember *ucAttendance.ListMemberAttendance
	listByDate   *ucAttendance.ListAttendanceByDate
	update       *ucAttendance.UpdateAttendance
}

func NewAttendanceHandler(
	mark *ucAttendance.MarkAttendance,
	listByMember *ucAttendance.ListMemberAttendance,
	listByDate *ucAttendance.ListAttendanceByDate,
	update *ucAttendance.UpdateAttendance,
) *AttendanceHandler {
	return &AttendanceHandler{
		mark:         mark,
		listByMember: listByMember,
		listByDate:   listByDate,
		update:       update,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// MarkAttendanceRequest is checked by the use case so a missing memberId and
// date are reported together.
type MarkAttendanceRequest struct {
	MemberID string `json:"memberId"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

type UpdateAttendanceRequest struct {
	Status string `json:"status"`
}

type AttendanceByDateResponse struct {
	Date    string              `json:"date"`
	Records []dto.AttendanceDTO `json:"records"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AttendanceHandler) Mark(c *gin.Context) {
	id, err := identity(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req MarkAttendanceRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	memberID, err := optionalUUID(req.MemberID, "memberId")
	if err != nil {
		fail(c, err)
		return
	}

	a, err := h.mark.Execute(c.Request.Context(), id, ucAttendance.MarkAttendanceInput{
		MemberID: memberID,
		Date:     req.Date,
		Status:   req.Status,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, "Attendance marked successfully", dto.NewAttendanceDTO(a))
}

// ListByMember supports ?from&to (inclusive, YYYY-MM-DD).
func (h *AttendanceHandler) ListByMember(c *gin.Context) {
	gymID, err := tenant(c)
	if err != nil {
		fail(c, err)
		return
	}

	memberID, err := uuidParam(c, "memberId")
	if err != nil {
		fail(c, err)
		return
	}

	records, err := h.listByMember.Execute(
		c.Request.Context(),
		gymID,
		memberID,
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, "", dto.NewAttendanceDTOs(records))
}

// ListByDate supports ?date, today when absent.
func (h *AttendanceHandler) ListByDate(c *gin.Context) {
	gymID, err := tenant(c)
	if err != nil {
		fail(c, err)
		return
	}

	day, records, err := h.listByDate.Execute(c.Request.Context(), gymID, c.Query("date"))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "", AttendanceByDateResponse{
		Date:    day.Format(timezone.DayLayout),
		Records: dto.NewAttendanceDTOs(records),
	})
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	id, err := identity(c)
	if err != nil {
		fail(c, err)
		return
	}

	attendanceID, err := uuidParam(c, "attendanceId")
	if err != nil {
		fail(c, err)
		return
	}

	var req UpdateAttendanceRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	a, err := h.update.Execute(c.Request.Context(), id, attendanceID, req.Status)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "Attendance updated successfully", dto.NewAttendanceDTO(a))
}
