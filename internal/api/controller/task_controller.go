package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/alfredhq/alfred/internal/api/response"
	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/repository"
	"github.com/alfredhq/alfred/internal/service"
)

type TaskController struct {
	service *service.TaskService
}

func NewTaskController(s *service.TaskService) *TaskController {
	return &TaskController{service: s}
}

type CreateTaskRequest struct {
	Title      string             `json:"title" binding:"required,max=255"`
	Date       string             `json:"date" binding:"required"`
	Time       string             `json:"time" binding:"omitempty,datetime=15:04"`
	Priority   string             `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	Recurrence *RecurrenceRequest `json:"recurrence"`
}

func (ctrl *TaskController) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		badRequest(c, err)
		return
	}

	task := &model.Task{
		UserID:     currentUser(c),
		Title:      req.Title,
		Date:       date,
		Time:       req.Time,
		Priority:   model.TaskPriority(req.Priority),
		Recurrence: req.Recurrence.toModel(),
		Source:     model.SourceManual,
	}
	if err := ctrl.service.CreateTask(c.Request.Context(), task); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, task)
}

type ListTasksQuery struct {
	PageQuery
	Status string `form:"status" binding:"omitempty,oneof=PENDING DONE"`
}

func (ctrl *TaskController) List(c *gin.Context) {
	var q ListTasksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	list, total, err := ctrl.service.List(c.Request.Context(), repository.TaskFilter{
		UserID:   currentUser(c),
		Status:   model.TaskStatus(q.Status),
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, response.PageData{List: list, Total: total, Page: q.Page, PageSize: q.PageSize})
}

func (ctrl *TaskController) Complete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	task, err := ctrl.service.Complete(c.Request.Context(), currentUser(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, task)
}

func (ctrl *TaskController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.service.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}
