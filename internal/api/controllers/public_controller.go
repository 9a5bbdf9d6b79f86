package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type PublicController struct {
	shareService services.ShareServiceInterface
}

func NewPublicController(shareService services.ShareServiceInterface) *PublicController {
	return &PublicController{
		shareService: shareService,
	}
}

// ShareTrip godoc
// @Summary Share a trip publicly
// @Description Returns the trip's share token, creating it on the first request. Sharing is idempotent: repeated calls return the same token.
// @Tags Public
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.ShareResponse
// @Security BearerAuth
// @Router /share/trips/{tripId} [post]
func (p *PublicController) ShareTrip(c *gin.Context) {

	share, err := p.shareService.GetOrCreateShare(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	share.PublicURL = scheme + "://" + c.Request.Host + "/public/" + share.ShareID

	utils.RespondSuccess(c, share, "Trip shared successfully")
}

func (p *PublicController) GetPublicTrip(c *gin.Context) {

	shareId := c.Param("shareId")
	if shareId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Share ID is required")
		return
	}

	trip, err := p.shareService.GetPublicTrip(c.Request.Context(), shareId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Public trip fetched successfully")
}

// CopyPublicTrip godoc
// @Summary Copy a shared trip into the authenticated user's account
// @Description Deep-copies the shared trip with all stops and activities; the copy is fully independent of the source.
// @Tags Public
// @Produce json
// @Param shareId path string true "Share token"
// @Success 200 {object} response_models.CopyTripResponse
// @Security BearerAuth
// @Router /public/{shareId}/copy [post]
func (p *PublicController) CopyPublicTrip(c *gin.Context) {

	result, err := p.shareService.CopySharedTrip(c.Request.Context(), c.Param("shareId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Trip copied successfully")
}
