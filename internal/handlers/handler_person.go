package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/banking_services/internal/core/ports/services"
	"github.com/SscSPs/banking_services/internal/dto"
)

type personHandler struct {
	personService portssvc.PersonSvcFacade
}

func newPersonHandler(ps portssvc.PersonSvcFacade) *personHandler {
	return &personHandler{personService: ps}
}

// registerPersonRoutes registers routes related to persons.
func registerPersonRoutes(rg *gin.RouterGroup, personService portssvc.PersonSvcFacade) {
	h := newPersonHandler(personService)

	persons := rg.Group("/persons")
	{
		persons.POST("", h.createPerson)
		persons.GET("", h.listPersons)
		persons.GET("/:id", h.getPerson)
		persons.PUT("/:id", h.updatePerson)
		persons.DELETE("/:id", h.deletePerson)
	}
}

// createPerson godoc
// @Summary Create a person
// @Tags persons
// @Accept  json
// @Produce  json
// @Param   person body dto.PersonRequest true "Person details"
// @Success 201 {object} dto.PersonResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Identification already in use"
// @Failure 500 {object} dto.ErrorResponse
// @Router /persons [post]
func (h *personHandler) createPerson(c *gin.Context) {
	var req dto.PersonRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPersonResponse(*person))
}

// getPerson godoc
// @Summary Get a person by ID
// @Tags persons
// @Produce  json
// @Param   id path string true "Person ID"
// @Success 200 {object} dto.PersonResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /persons/{id} [get]
func (h *personHandler) getPerson(c *gin.Context) {
	person, err := h.personService.GetPersonByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPersonResponse(*person))
}

// listPersons godoc
// @Summary List persons
// @Tags persons
// @Produce  json
// @Param   page query int false "Zero-based page" default(0) minimum(0)
// @Param   size query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.PageResponse[dto.PersonResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /persons [get]
func (h *personHandler) listPersons(c *gin.Context) {
	var params dto.PageParams
	if err := bindQuery(c, &params); err != nil {
		respondError(c, err)
		return
	}

	page, err := h.personService.ListPersons(c.Request.Context(), params.Request())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPageResponse(page, dto.ToPersonResponse))
}

// updatePerson godoc
// @Summary Replace a person's details
// @Tags persons
// @Accept  json
// @Produce  json
// @Param   id path string true "Person ID"
// @Param   person body dto.PersonRequest true "Person details"
// @Success 200 {object} dto.PersonResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /persons/{id} [put]
func (h *personHandler) updatePerson(c *gin.Context) {
	var req dto.PersonRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	person, err := h.personService.UpdatePerson(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPersonResponse(*person))
}

// deletePerson godoc
// @Summary Delete a person
// @Description Fails with 409 while a customer still references the person.
// @Tags persons
// @Param   id path string true "Person ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /persons/{id} [delete]
func (h *personHandler) deletePerson(c *gin.Context) {
	if err := h.personService.DeletePerson(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
