package controller

import (
	"elearn_backend/internal/service"
	"elearn_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService     *service.CourseService
	EnrollmentService *service.EnrollmentService
	ProgressService   *service.ProgressService
	CompletionService *service.CompletionService
}

func NewCourseController(courseService *service.CourseService, enrollmentService *service.EnrollmentService, progressService *service.ProgressService, completionService *service.CompletionService) *CourseController {
	return &CourseController{
		CourseService:     courseService,
		EnrollmentService: enrollmentService,
		ProgressService:   progressService,
		CompletionService: completionService,
	}
}

// ListCourses godoc
// @Summary List the course catalog
// @Description Anonymous callers get the plain catalog; authenticated callers
// @Description additionally get their completion badge per course.
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	if user := util.CurrentUser(ctx); user != nil {
		items, err := c.CourseService.ListForUser(ctx.Request.Context(), user.ID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, items)
		return
	}

	courses, err := c.CourseService.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary Course detail
// @Description Returns the course; for authenticated callers the payload also
// @Description carries the enrollment flag and derived module progress.
// @Tags courses
// @Produce json
// @Param id path string true "course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	courseID := ctx.Param("id")

	course, err := c.CourseService.Get(courseID)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	user := util.CurrentUser(ctx)
	if user == nil {
		util.Success(ctx, gin.H{"course": course})
		return
	}

	enrolled, err := c.EnrollmentService.IsEnrolled(user.ID, courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	progress, err := c.ProgressService.GetProgress(user.ID, courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"course":     course,
		"isEnrolled": enrolled,
		"progress":   progress,
	})
}

// Enroll godoc
// @Summary Enroll the current user in a course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "course id"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 404 {object} util.Response "course not found"
// @Failure 409 {object} util.Response "already enrolled"
// @Router /api/courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	user := util.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(user.ID, ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadyEnrolled):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, "Enrolled successfully", enrollment)
}

// CompleteModule godoc
// @Summary Mark one syllabus module as completed
// @Description Requires prior enrollment. Awards points once per module;
// @Description re-completion attempts are rejected.
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "course id"
// @Param moduleIndex path int true "zero-based module index"
// @Success 201 {object} util.Response{data=model.ModuleCompletion}
// @Failure 400 {object} util.Response "module index out of range"
// @Failure 404 {object} util.Response "course not found"
// @Failure 409 {object} util.Response "module already completed"
// @Failure 412 {object} util.Response "not enrolled"
// @Router /api/courses/{id}/modules/{moduleIndex}/complete [post]
func (c *CourseController) CompleteModule(ctx *gin.Context) {
	user := util.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	moduleIndex, err := strconv.Atoi(ctx.Param("moduleIndex"))
	if err != nil {
		util.BadRequest(ctx, "Invalid module index")
		return
	}

	completion, err := c.ProgressService.CompleteModule(user.ID, ctx.Param("id"), moduleIndex)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidModuleIndex):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrNotEnrolled):
			util.PreconditionFailed(ctx, "Enrollment is required before completing modules")
		case errors.Is(err, util.ErrModuleAlreadyCompleted):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, "Module completed", completion)
}

// GetProgress godoc
// @Summary Module-level progress for the current user
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "course id"
// @Success 200 {object} util.Response{data=service.CourseProgress}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/progress [get]
func (c *CourseController) GetProgress(ctx *gin.Context) {
	user := util.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.GetProgress(user.ID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// MarkComplete godoc
// @Summary Mark a whole course as completed
// @Description Writes the coarse course-completion ledger used for catalog
// @Description badges. Independent of module-level progress.
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "course id"
// @Success 201 {object} util.Response{data=model.CourseCompletion}
// @Failure 404 {object} util.Response "course not found"
// @Failure 409 {object} util.Response "already completed"
// @Router /api/courses/{id}/complete [post]
func (c *CourseController) MarkComplete(ctx *gin.Context) {
	user := util.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	completion, err := c.CompletionService.MarkComplete(user.ID, ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrCourseAlreadyCompleted):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, "Course marked as completed", completion)
}

// CompletionStatus godoc
// @Summary Whole-course completion status
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "course id"
// @Success 200 {object} util.Response{data=service.CompletionStatus}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/completion-status [get]
func (c *CourseController) CompletionStatus(ctx *gin.Context) {
	user := util.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	status, err := c.CompletionService.GetStatus(user.ID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, status)
}
