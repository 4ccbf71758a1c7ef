package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contracts-electrical/tracker/internal/modules/model"
	"github.com/contracts-electrical/tracker/internal/modules/repo"
	"github.com/contracts-electrical/tracker/internal/modules/serializer"
	"github.com/contracts-electrical/tracker/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

// ProgressUpdateReq mirrors model.ProgressUpdate. Pointer fields with
// `required` check that the key is present; empty strings and zero
// quantities are accepted.
type ProgressUpdateReq struct {
	UpdateID       *string         `json:"updateId" binding:"required"`
	ProjectCode    *string         `json:"projectCode" binding:"required"`
	SectionID      *string         `json:"sectionId" binding:"required"`
	ItemCode       *string         `json:"itemCode" binding:"required"`
	Date           *model.DateTime `json:"date" binding:"required" swaggertype:"string" example:"2025-01-05T10:00:00"`
	SupervisorID   *string         `json:"supervisorId" binding:"required"`
	SupervisorName *string         `json:"supervisorName"`
	WorkDoneQty    *float64        `json:"workDoneQty" binding:"required"`
	Unit           *string         `json:"unit"`
	Remarks        *string         `json:"remarks"`
	VerifiedBy     *string         `json:"verifiedBy"`
	Attachments    []string        `json:"attachments"`
	Status         string          `json:"status"`
}

func (r *ProgressUpdateReq) toModel() model.ProgressUpdate {
	return model.ProgressUpdate{
		UpdateID:       *r.UpdateID,
		ProjectCode:    *r.ProjectCode,
		SectionID:      *r.SectionID,
		ItemCode:       *r.ItemCode,
		Date:           *r.Date,
		SupervisorID:   *r.SupervisorID,
		SupervisorName: r.SupervisorName,
		WorkDoneQty:    *r.WorkDoneQty,
		Unit:           r.Unit,
		Remarks:        r.Remarks,
		VerifiedBy:     r.VerifiedBy,
		Attachments:    r.Attachments,
		Status:         r.Status,
	}
}

// ProjectReq is the body of create and update.
type ProjectReq struct {
	Title               *string             `json:"title" binding:"required" example:"Substation A"`
	Location            *string             `json:"location" binding:"required" example:"Pune"`
	Supervisors         []string            `json:"supervisors" binding:"required"`
	ProjectCode         *string             `json:"projectCode" binding:"required" example:"P1"`
	Description         *string             `json:"description"`
	TotalLabourCost     *string             `json:"totalLabourCost"`
	AverageLabourCost   *string             `json:"averageLabourCost"`
	NumberOfSupervisors *string             `json:"numberOfSupervisors"`
	NumberOfLabours     *string             `json:"numberOfLabours"`
	TotalCTC            *string             `json:"totalCTC"`
	Sections            []any               `json:"sections" binding:"required"`
	Totals              map[string]any      `json:"totals" binding:"required"`
	CreateDate          *string             `json:"createdate" binding:"required"`
	LastModified        *string             `json:"lastModified"`
	Status              string              `json:"status"`
	CompletedCost       float64             `json:"completedCost"`
	ProgressUpdates     []ProgressUpdateReq `json:"progressUpdates" binding:"dive"`
}

func (r *ProjectReq) toModel() *model.Project {
	p := &model.Project{
		Title:               *r.Title,
		Location:            *r.Location,
		Supervisors:         r.Supervisors,
		ProjectCode:         *r.ProjectCode,
		Description:         r.Description,
		TotalLabourCost:     r.TotalLabourCost,
		AverageLabourCost:   r.AverageLabourCost,
		NumberOfSupervisors: r.NumberOfSupervisors,
		NumberOfLabours:     r.NumberOfLabours,
		TotalCTC:            r.TotalCTC,
		Sections:            r.Sections,
		Totals:              r.Totals,
		CreateDate:          *r.CreateDate,
		LastModified:        r.LastModified,
		Status:              r.Status,
		CompletedCost:       r.CompletedCost,
	}
	if r.ProgressUpdates != nil {
		p.ProgressUpdates = make([]model.ProgressUpdate, 0, len(r.ProgressUpdates))
		for i := range r.ProgressUpdates {
			p.ProgressUpdates = append(p.ProgressUpdates, r.ProgressUpdates[i].toModel())
		}
	}
	return p
}

type CreateProjectResp struct {
	Message string `json:"message"`
	File    string `json:"file" example:"data/projects/P1_20250102150405.json"`
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Save a new project snapshot. createdate and lastModified are set by the server.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.ProjectReq	true	"Project document"
//	@Success		200		{object}	handler.CreateProjectResp
//	@Failure		500		{object}	serializer.ErrorResponse
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := ProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.SchemaErr(err))
		return
	}

	file, err := h.svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		if errors.Is(err, repo.ErrInvalidProjectCode) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), nil))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.IOErr("", err))
		return
	}

	c.JSON(http.StatusOK, CreateProjectResp{Message: "Project saved successfully", File: file})
}

type GetProjectsReq struct {
	Username string `form:"username" json:"username" example:"9876543210"`
	Role     string `form:"role,default=user" json:"role" example:"user"`
}

// GetProjects godoc
//
//	@Summary		List projects
//	@Description	Admins get every project; anyone else gets the projects whose supervisors include username.
//	@Tags			project
//	@Produce		json
//	@Param			username	query	string	false	"Supervisor id of the caller"
//	@Param			role		query	string	false	"Caller role, default user"
//	@Success		200			{array}	model.ViewerProject
//	@Router			/projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	req := GetProjectsReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.SchemaErr(err))
		return
	}

	out, err := h.svc.ListForViewer(c.Request.Context(), service.ListProjectsInput{
		Username: req.Username,
		Role:     req.Role,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.IOErr("", err))
		return
	}

	c.JSON(http.StatusOK, out)
}

// GetProject godoc
//
//	@Summary		Get project
//	@Description	Return the first project whose file name starts with project_id.
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path		string	true	"Project id or any prefix of it"	example(P1_20250102150405)
//	@Success		200			{object}	model.StoredProject
//	@Failure		404			{object}	serializer.ErrorResponse
//	@Router			/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.svc.Get(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		if errors.Is(err, repo.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Project not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.IOErr("", err))
		return
	}

	c.JSON(http.StatusOK, project)
}

type DeleteProjectReq struct {
	Role     string `form:"role" json:"role" binding:"required" example:"admin"`
	Username string `form:"username" json:"username"`
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Remove a project file. Only role=admin may delete.
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path		string	true	"Project id or any prefix of it"
//	@Param			role		query		string	true	"Caller role"
//	@Param			username	query		string	false	"Caller username"
//	@Success		200			{object}	serializer.Message
//	@Failure		403			{object}	serializer.ErrorResponse
//	@Failure		404			{object}	serializer.ErrorResponse
//	@Router			/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	req := DeleteProjectReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.SchemaErr(err))
		return
	}

	id := c.Param("project_id")
	err := h.svc.Delete(c.Request.Context(), service.DeleteProjectInput{
		ID:       id,
		Role:     req.Role,
		Username: req.Username,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, serializer.ForbiddenErr("Only admin can delete projects"))
		case errors.Is(err, repo.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Project not found"))
		default:
			c.JSON(http.StatusInternalServerError, serializer.IOErr("Failed to delete project: ", err))
		}
		return
	}

	c.JSON(http.StatusOK, serializer.Message{Message: fmt.Sprintf("Project %s deleted successfully", id)})
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	Replace the whole project document. lastModified is refreshed; createdate is kept as sent.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path		string			true	"Project id or any prefix of it"
//	@Param			payload		body		handler.ProjectReq	true	"Replacement document"
//	@Success		200			{object}	serializer.Message
//	@Failure		404			{object}	serializer.ErrorResponse
//	@Router			/projects/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	req := ProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.SchemaErr(err))
		return
	}

	id := c.Param("project_id")
	if err := h.svc.Update(c.Request.Context(), id, req.toModel()); err != nil {
		if errors.Is(err, repo.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Project not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.IOErr("Failed to update project: ", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Message{Message: fmt.Sprintf("Project %s updated successfully", id)})
}
