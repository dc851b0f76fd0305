package controllers

import (
	"net/http"
	"time"

	"Mainu/models"
	"Mainu/services"
	"Mainu/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MenuController struct {
	ScanService *services.ScanService
	Sessions    *services.SessionService
	ShareLinks  services.ShareLinkGenerator
	Analytics   services.AnalyticsTracker
}

func NewMenuController(scan *services.ScanService, sessions *services.SessionService, shareLinks services.ShareLinkGenerator, analytics services.AnalyticsTracker) *MenuController {
	return &MenuController{
		ScanService: scan,
		Sessions:    sessions,
		ShareLinks:  shareLinks,
		Analytics:   analytics,
	}
}

// SubmitMenuRequest is the body of POST /v1/menus.
type SubmitMenuRequest struct {
	RecognizedText string `json:"recognized_text"`
	PageCount      int    `json:"page_count"`
	LangIn         string `json:"lang_in"`
	LangOut        string `json:"lang_out"`
	UploadID       string `json:"upload_id"`
}

func (h *MenuController) SubmitMenu(c *gin.Context) {
	var req SubmitMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	uploadID := uuid.New()
	if req.UploadID != "" {
		parsed, err := uuid.Parse(req.UploadID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid upload_id")
			return
		}
		uploadID = parsed
	}
	pageCount := req.PageCount
	if pageCount <= 0 {
		pageCount = 1
	}

	result, err := h.ScanService.Process(c.Request.Context(), models.ProcessingRequest{
		UploadID:       uploadID,
		PageCount:      pageCount,
		RecognizedText: req.RecognizedText,
		LanguageIn:     req.LangIn,
		LanguageOut:    req.LangOut,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Menu processed successfully", result)
}

func (h *MenuController) GetMenu(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	session, err := h.Sessions.Get(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Menu fetched successfully", services.ScanResult{
		Template:       session.Template,
		RecognizedText: session.RecognizedText,
		Debug:          session.Debug,
	})
}

func (h *MenuController) PollStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	state, err := h.ScanService.PollStatus(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Status fetched successfully", state)
}

func (h *MenuController) EndSession(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	h.Sessions.Delete(id)
	utils.SuccessResponse(c, http.StatusOK, "Menu session ended", nil)
}

type shareLinkResponse struct {
	models.MenuShareLink
	ExpiresDescription string `json:"expires_description"`
}

func (h *MenuController) CreateShareLink(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.Sessions.Get(id); err != nil {
		abortWithError(c, err)
		return
	}

	link, err := h.ShareLinks.GenerateShareLink(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	h.Analytics.Track(models.ShareLinkCreated(id))

	utils.SuccessResponse(c, http.StatusCreated, "Share link created", shareLinkResponse{
		MenuShareLink:      link,
		ExpiresDescription: services.ExpiresDescription(link, time.Now()),
	})
}
