package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-saas/internal/audit"
	"github.com/BruksfildServices01/gym-saas/internal/auth"
	"github.com/BruksfildServices01/gym-saas/internal/config"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/handlers"
	infraRepo "github.com/BruksfildServices01/gym-saas/internal/infra/repository"
	"github.com/BruksfildServices01/gym-saas/internal/metrics"
	"github.com/BruksfildServices01/gym-saas/internal/middleware"
	"github.com/BruksfildServices01/gym-saas/internal/timezone"
	ucAccount "github.com/BruksfildServices01/gym-saas/internal/usecase/account"
	ucAttendance "github.com/BruksfildServices01/gym-saas/internal/usecase/attendance"
	ucAuditLog "github.com/BruksfildServices01/gym-saas/internal/usecase/auditlog"
	ucFee "github.com/BruksfildServices01/gym-saas/internal/usecase/fee"
	ucGym "github.com/BruksfildServices01/gym-saas/internal/usecase/gym"
	ucMember "github.com/BruksfildServices01/gym-saas/internal/usecase/member"
	"github.com/BruksfildServices01/gym-saas/internal/usecase/quota"
	"github.com/BruksfildServices01/gym-saas/internal/validators"
)

// Dependencies are the process-wide singletons the router is built from.
// Metrics, Audit, Limiter, Clock and Logger are optional.
type Dependencies struct {
	DB      *gorm.DB
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Audit   audit.Recorder
	Limiter ucAccount.AttemptLimiter
	Clock   *timezone.Clock
}

func (d *Dependencies) defaults() {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.Audit == nil {
		d.Audit = audit.Nop{}
	}
	if d.Clock == nil {
		d.Clock = timezone.NewClock(d.Config.Timezone)
	}
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	deps.defaults()
	cfg := deps.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(deps.Logger),
		middleware.RequestLogger(),
		deps.Metrics.Middleware(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
		middleware.ErrorHandler(),
		middleware.Recovery(),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	gymRepo := infraRepo.NewGymGormRepository(deps.DB)
	userRepo := infraRepo.NewUserGormRepository(deps.DB)
	memberRepo := infraRepo.NewMemberGormRepository(deps.DB)
	attendanceRepo := infraRepo.NewAttendanceGormRepository(deps.DB)
	feeRepo := infraRepo.NewFeeGormRepository(deps.DB)
	auditRepo := infraRepo.NewAuditGormRepository(deps.DB)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	quotas := quota.NewService(gymRepo)
	gate := middleware.NewQuotaGate(quotas, deps.Metrics)

	var domainCheck ucAccount.DomainCheck
	if cfg.VerifyEmailDomain {
		domainCheck = validators.NewEmailDomainChecker(5 * time.Second).Check
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	loginUC := ucAccount.NewAuthenticate(userRepo, hasher, tokens, deps.Limiter, deps.Logger)
	getMeUC := ucAccount.NewGetMe(userRepo)
	listStaffUC := ucAccount.NewListStaff(userRepo)
	createStaffUC := ucAccount.NewCreateStaff(userRepo, hasher, deps.Audit, domainCheck)
	createOwnerUC := ucAccount.NewCreateOwner(userRepo, hasher, deps.Audit, domainCheck)
	createSuperUserUC := ucAccount.NewCreateSuperUser(userRepo, hasher, deps.Audit, domainCheck)

	createGymUC := ucGym.NewCreateGym(gymRepo, deps.Audit)
	listGymsUC := ucGym.NewListGyms(gymRepo)
	updateGymUC := ucGym.NewUpdateGym(gymRepo, deps.Audit)
	overviewUC := ucGym.NewGetOverview(gymRepo, quotas)

	createMemberUC := ucMember.NewCreateMember(memberRepo, deps.Clock, deps.Audit)
	listMembersUC := ucMember.NewListMembers(memberRepo)
	getMemberUC := ucMember.NewGetMember(memberRepo)
	updateMemberUC := ucMember.NewUpdateMember(memberRepo, deps.Audit)
	deactivateMemberUC := ucMember.NewDeactivateMember(memberRepo, deps.Audit)

	markAttendanceUC := ucAttendance.NewMarkAttendance(attendanceRepo, deps.Clock, deps.Audit)
	listMemberAttendanceUC := ucAttendance.NewListMemberAttendance(attendanceRepo, deps.Clock)
	listAttendanceByDateUC := ucAttendance.NewListAttendanceByDate(attendanceRepo, deps.Clock)
	updateAttendanceUC := ucAttendance.NewUpdateAttendance(attendanceRepo, deps.Audit)

	recordFeeUC := ucFee.NewRecordFee(feeRepo, deps.Audit)
	listMemberFeesUC := ucFee.NewListMemberFees(feeRepo)
	listFeesUC := ucFee.NewListFees(feeRepo)
	feeReportUC := ucFee.NewFeeReport(feeRepo, deps.Clock)

	listAuditLogsUC := ucAuditLog.NewListAuditLogs(auditRepo, deps.Clock)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, getMeUC, deps.Metrics)
	gymHandler := handlers.NewGymHandler(
		createGymUC,
		listGymsUC,
		updateGymUC,
		overviewUC,
		listStaffUC,
		createStaffUC,
	)
	internalHandler := handlers.NewInternalHandler(createOwnerUC, createSuperUserUC)
	memberHandler := handlers.NewMemberHandler(
		createMemberUC,
		listMembersUC,
		getMemberUC,
		updateMemberUC,
		deactivateMemberUC,
	)
	attendanceHandler := handlers.NewAttendanceHandler(
		markAttendanceUC,
		listMemberAttendanceUC,
		listAttendanceByDateUC,
		updateAttendanceUC,
	)
	feeHandler := handlers.NewFeeHandler(
		recordFeeUC,
		listMemberFeesUC,
		listFeesUC,
		feeReportUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(listAuditLogsUC)

	// ======================================================
	// 🔐 GUARDS
	// ======================================================
	authed := middleware.AuthMiddleware(tokens)
	superUser := middleware.RequireRoles(access.RoleSuperUser)
	owner := middleware.RequireRoles(access.RoleOwner)
	tenantStaff := middleware.RequireRoles(access.RoleOwner, access.RoleStaff)

	// ======================================================
	// 🌐 PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	r.POST("/auth/login", authHandler.Login)
	r.GET("/auth/me", authed, authHandler.Me)

	// ------------------------------
	// GYMS
	// ------------------------------
	gyms := r.Group("/gyms", authed)
	{
		gyms.POST("", superUser, gymHandler.Create)
		gyms.GET("", superUser, gymHandler.List)
		gyms.PATCH("/:gymId", superUser, gymHandler.Update)

		gyms.GET("/me", tenantStaff, gymHandler.Me)
		gyms.GET("/staff", owner, gymHandler.ListStaff)
		gyms.POST("/add-staff", owner, gate.StaffLimit(), gymHandler.AddStaff)
	}

	// ------------------------------
	// PLATFORM ACCOUNTS
	// ------------------------------
	internals := r.Group("/internals")
	{
		internals.POST("/create-owner", authed, superUser, internalHandler.CreateOwner)
		internals.POST(
			"/saas-owner",
			middleware.SuperUserOrBootstrap(tokens, userRepo, cfg.SuperuserBootstrap),
			internalHandler.CreateSuperUser,
		)
	}

	// ------------------------------
	// MEMBERS
	// ------------------------------
	members := r.Group("/members", authed, tenantStaff)
	{
		members.POST("", gate.MemberLimit(), memberHandler.Create)
		members.GET("", memberHandler.List)
		members.GET("/:memberId", memberHandler.Get)
		members.PATCH("/:memberId", memberHandler.Update)
		members.DELETE("/:memberId", owner, memberHandler.Deactivate)
	}

	// ------------------------------
	// ATTENDANCE
	// ------------------------------
	attendance := r.Group(
		"/attendance",
		authed,
		tenantStaff,
		gate.RequireFeature(plan.FeatureAttendance),
	)
	{
		attendance.POST("", attendanceHandler.Mark)
		attendance.GET("", attendanceHandler.ListByDate)
		attendance.GET("/member/:memberId", attendanceHandler.ListByMember)
		attendance.PATCH("/:attendanceId", attendanceHandler.Update)
	}

	// ------------------------------
	// FEES / REPORTS
	// ------------------------------
	fees := r.Group("/fees", authed, tenantStaff)
	{
		fees.POST("", feeHandler.Record)
		fees.GET("", feeHandler.List)
		fees.GET("/:memberId", feeHandler.ListByMember)
	}

	r.GET(
		"/reports/fees",
		authed,
		owner,
		gate.RequireFeature(plan.FeatureReports),
		feeHandler.Report,
	)

	r.GET("/audit-logs", authed, owner, auditLogsHandler.List)
}
