package controllers

import (
	"io"
	"net/http"

	"Mainu/models"
	"Mainu/services"
	"Mainu/utils"

	"github.com/gin-gonic/gin"
)

const maxCaptureBytes = 20 << 20

type CaptureController struct {
	Captures    *services.CaptureService
	ScanService *services.ScanService
}

func NewCaptureController(captures *services.CaptureService, scan *services.ScanService) *CaptureController {
	return &CaptureController{Captures: captures, ScanService: scan}
}

// AddPage accepts one photographed page as the multipart field "image".
func (h *CaptureController) AddPage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "image file is required")
		return
	}
	if fileHeader.Size > maxCaptureBytes {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "image is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to read image")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxCaptureBytes))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to read image")
		return
	}

	page, err := h.Captures.Append(c.Request.Context(), c.Param("session"), data)
	if err != nil {
		abortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Page captured", page)
}

func (h *CaptureController) ListPages(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Pages fetched successfully", h.Captures.Pages(c.Param("session")))
}

func (h *CaptureController) RemovePage(c *gin.Context) {
	pageID, ok := uuidParam(c, "pageId")
	if !ok {
		return
	}
	if !h.Captures.Remove(c.Param("session"), pageID) {
		utils.ErrorResponse(c, http.StatusNotFound, "Page not found")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Page removed", nil)
}

func (h *CaptureController) Reset(c *gin.Context) {
	h.Captures.Reset(c.Param("session"))
	utils.SuccessResponse(c, http.StatusOK, "Capture session cleared", nil)
}

type processCaptureRequest struct {
	LangIn  string `json:"lang_in"`
	LangOut string `json:"lang_out"`
}

// Process submits the text of every captured page as one menu.
func (h *CaptureController) Process(c *gin.Context) {
	var req processCaptureRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	session := c.Param("session")
	pageCount := h.Captures.PageCount(session)
	if pageCount == 0 {
		abortWithError(c, services.ErrNoCapturedPages)
		return
	}

	result, err := h.ScanService.Process(c.Request.Context(), models.NewProcessingRequest(
		pageCount,
		h.Captures.ConcatenatedText(session),
		req.LangIn,
		req.LangOut,
	))
	if err != nil {
		abortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Menu processed successfully", result)
}
