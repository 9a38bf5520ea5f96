package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/alfredhq/alfred/internal/api/response"
	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/service"
)

type ListController struct {
	service *service.ListService
}

func NewListController(s *service.ListService) *ListController {
	return &ListController{service: s}
}

type NameRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

func (ctrl *ListController) Lists(c *gin.Context) {
	lists, err := ctrl.service.Lists(c.Request.Context(), currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, lists)
}

func (ctrl *ListController) Create(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	list, err := ctrl.service.CreateList(c.Request.Context(), currentUser(c), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}

func (ctrl *ListController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.service.DeleteList(c.Request.Context(), currentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

func (ctrl *ListController) AddItem(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item := &model.ListItem{ListID: listID, Name: req.Name, Source: model.SourceManual}
	if err := ctrl.service.AddListItem(c.Request.Context(), currentUser(c), item); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, item)
}

func (ctrl *ListController) ToggleItem(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	item, err := ctrl.service.ToggleItem(c.Request.Context(), currentUser(c), listID, itemID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, item)
}

func (ctrl *ListController) DeleteItem(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	if err := ctrl.service.DeleteItem(c.Request.Context(), currentUser(c), listID, itemID); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}
