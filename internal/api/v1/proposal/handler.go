package proposal

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/interaction"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
	"github.com/SKHU-AQ-Project/aq-backend/internal/services"
	"github.com/SKHU-AQ-Project/aq-backend/internal/utils"
)

// CreateProposal godoc
// @Summary Propose a new catalog model
// @Description Submit a model candidate. It stays PENDING until an admin decides or community likes push it over the auto-approval threshold.
// @Tags proposals
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body CreateProposalInput true "Proposal fields"
// @Success 201 {object} utils.Response{data=ProposalResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /proposals [post]
func CreateProposal(c *gin.Context) {
	var input CreateProposalInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	proposal := models.ModelProposal{
		Name:                input.Name,
		Provider:            input.Provider,
		Description:         input.Description,
		Category:            input.Category,
		Capabilities:        input.Capabilities,
		InputPricePerToken:  input.InputPricePerToken,
		OutputPricePerToken: input.OutputPricePerToken,
		MaxTokens:           input.MaxTokens,
		HasFreeTier:         input.HasFreeTier,
		APIEndpoint:         input.APIEndpoint,
		DocumentationURL:    input.DocumentationURL,
	}
	if proposal.Capabilities == nil {
		proposal.Capabilities = models.StringList{}
	}

	created, err := services.CreateProposal(u.ID, &proposal)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateProposal), errors.Is(err, services.ErrModelAlreadyExists):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create proposal"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Proposal created successfully", toProposalResponse(created, u.ID)))
}

// GetProposals godoc
// @Summary List model proposals
// @Tags proposals
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED)
// @Param keyword query string false "Search by name, provider or description"
// @Param sort query string false "Sort order" Enums(latest, likes)
// @Success 200 {object} utils.Response{data=ProposalListResponse}
// @Failure 400 {object} utils.Response
// @Router /proposals [get]
func GetProposals(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	filter := services.ProposalFilter{
		Status:       models.ProposalStatus(c.Query("status")),
		Keyword:      c.Query("keyword"),
		OrderByLikes: c.Query("sort") == "likes",
		Page:         page,
		Limit:        limit,
	}

	proposals, total, err := services.FindProposals(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch proposals"))
		return
	}

	vid := viewerID(c)
	items := make([]ProposalResponse, 0, len(proposals))
	for i := range proposals {
		items = append(items, toProposalResponse(&proposals[i], vid))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ProposalListResponse{
		Proposals: items,
		Total:     total,
		Page:      page,
		Limit:     limit,
	}))
}

// GetMyProposals godoc
// @Summary List the caller's own proposals
// @Tags proposals
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED)
// @Success 200 {object} utils.Response{data=ProposalListResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /proposals/my [get]
func GetMyProposals(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	filter := services.ProposalFilter{
		Status: models.ProposalStatus(c.Query("status")),
		UserID: u.ID,
		Page:   page,
		Limit:  limit,
	}

	proposals, total, err := services.FindProposals(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch proposals"))
		return
	}

	items := make([]ProposalResponse, 0, len(proposals))
	for i := range proposals {
		items = append(items, toProposalResponse(&proposals[i], u.ID))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ProposalListResponse{
		Proposals: items,
		Total:     total,
		Page:      page,
		Limit:     limit,
	}))
}

// LikeProposal godoc
// @Summary Toggle a like on a proposal
// @Description Shortcut for the interactions toggle scoped to one proposal. Reaching the community threshold approves the proposal automatically.
// @Tags proposals
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Proposal ID"
// @Success 200 {object} utils.Response{data=interaction.ToggleResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /proposals/{id}/like [post]
func LikeProposal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid proposal ID"))
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	liked, count, err := services.ToggleLike(u.ID, uint(id), models.LikeTargetProposal)
	if err != nil {
		if errors.Is(err, services.ErrTargetNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to toggle like"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", interaction.ToggleResponse{
		Active: liked,
		Count:  count,
	}))
}

// GetProposal godoc
// @Summary Get one model proposal
// @Tags proposals
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} utils.Response{data=ProposalResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /proposals/{id} [get]
func GetProposal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid proposal ID"))
		return
	}

	proposal, err := services.GetProposalByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch proposal"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", toProposalResponse(proposal, viewerID(c))))
}

// viewerID resolves the caller identity set by the auth middleware, or 0 for
// an anonymous request.
func viewerID(c *gin.Context) uint {
	if userVal, exists := c.Get("user"); exists {
		return userVal.(models.User).ID
	}
	return 0
}

// toProposalResponse decorates the proposal with the viewer's like state.
// Anonymous viewers get no is_liked field at all.
func toProposalResponse(p *models.ModelProposal, viewerID uint) ProposalResponse {
	resp := ProposalResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		Name:            p.Name,
		Provider:        p.Provider,
		Description:     p.Description,
		Category:        p.Category,
		Capabilities:    p.Capabilities,
		Status:          p.Status,
		LikeCount:       p.LikeCount,
		RejectionReason: p.RejectionReason,
		ModelID:         p.ModelID,
		CreatedAt:       p.CreatedAt,
	}

	if viewerID != 0 {
		if liked, err := services.IsLiked(viewerID, p.ID, models.LikeTargetProposal); err == nil {
			resp.IsLiked = &liked
		}
	}

	return resp
}
