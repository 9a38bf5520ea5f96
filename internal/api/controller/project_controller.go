package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/alfredhq/alfred/internal/api/response"
	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/service"
)

type ProjectController struct {
	service *service.ProjectService
}

func NewProjectController(s *service.ProjectService) *ProjectController {
	return &ProjectController{service: s}
}

type CreateProjectRequest struct {
	Title        string          `json:"title" binding:"required,max=255"`
	Description  string          `json:"description"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Category     string          `json:"category" binding:"omitempty,oneof=GOAL RESERVE ASSET"`
	Deadline     string          `json:"deadline"`
}

// ProjectView adds the computed progress to a project.
type ProjectView struct {
	model.Project
	Progress float64 `json:"progress"`
}

func viewOf(p model.Project) ProjectView {
	return ProjectView{Project: p, Progress: p.Progress()}
}

func (ctrl *ProjectController) List(c *gin.Context) {
	projects, err := ctrl.service.List(c.Request.Context(), currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, viewOf(p))
	}
	response.Success(c, views)
}

func (ctrl *ProjectController) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p := &model.Project{
		UserID:       currentUser(c),
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		SavedAmount:  decimal.Zero,
		Category:     model.ProjectCategory(req.Category),
		Source:       model.SourceManual,
	}
	if req.Deadline != "" {
		deadline, err := parseDay(req.Deadline)
		if err != nil {
			badRequest(c, err)
			return
		}
		p.Deadline = &deadline
	}

	if err := ctrl.service.CreateProject(c.Request.Context(), p); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, viewOf(*p))
}

type ContributeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (ctrl *ProjectController) Contribute(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := ctrl.service.Contribute(c.Request.Context(), currentUser(c), id, req.Amount)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, viewOf(*p))
}

func (ctrl *ProjectController) Delete(c *gin.Context) {
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
