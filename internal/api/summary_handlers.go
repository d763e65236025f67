package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/vidnotes/vidnotes/internal/errors"
	summaryrepo "github.com/vidnotes/vidnotes/internal/repository/summary"
	"github.com/vidnotes/vidnotes/internal/service/youtube"
)

const maxListLimit = 100

type createSummaryRequest struct {
	URL string `json:"url" binding:"required"`
}

type updateTagsRequest struct {
	Tags []string `json:"tags"`
}

type setFavoriteRequest struct {
	IsFavorite *bool `json:"isFavorite" binding:"required"`
}

// createSummary runs the summarization pipeline for a YouTube URL
func (h *Handler) createSummary(c *gin.Context) {
	var req createSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.New(apperrors.CodeInvalidArg, "url is required"))
		return
	}

	userID := currentUserID(c)
	summary, err := h.summaries.CreateSummary(c.Request.Context(), userID, req.URL)
	if err != nil {
		h.logger.Error("failed to create summary", "url", req.URL, "error", err)
		respondError(c, err)
		return
	}

	h.logger.Info("summary created", "video_id", summary.VideoID, "processing_time_ms", summary.ProcessingTimeMs)
	respondSuccess(c, http.StatusCreated, summary)
}

// listSummaries returns the user's summaries, optionally filtered
func (h *Handler) listSummaries(c *gin.Context) {
	filter := summaryrepo.ListFilter{
		Query:        c.Query("q"),
		Tag:          c.Query("tag"),
		FavoriteOnly: c.Query("favorite") == "true",
	}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > maxListLimit {
			respondError(c, apperrors.New(apperrors.CodeInvalidArg, "invalid limit"))
			return
		}
		filter.Limit = limit
	}
	if v := c.Query("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			respondError(c, apperrors.New(apperrors.CodeInvalidArg, "invalid offset"))
			return
		}
		filter.Offset = offset
	}

	summaries, err := h.summaries.ListSummaries(c.Request.Context(), currentUserID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, summaries)
}

// summaryExists reports whether the user already summarized a video.
// The video may be addressed by id or by URL.
func (h *Handler) summaryExists(c *gin.Context) {
	videoID := c.Query("videoId")
	if videoID == "" {
		if url := c.Query("url"); url != "" {
			id, err := youtube.ExtractVideoID(url)
			if err != nil {
				respondError(c, err)
				return
			}
			videoID = id
		}
	}

	exists, err := h.summaries.SummaryExists(c.Request.Context(), currentUserID(c), videoID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"exists": exists, "videoId": videoID})
}

func (h *Handler) getSummary(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.summaries.GetSummary(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, summary)
}

func (h *Handler) deleteSummary(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.summaries.DeleteSummary(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) updateTags(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req updateTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.New(apperrors.CodeInvalidArg, "invalid request body"))
		return
	}

	tags, err := h.summaries.UpdateTags(c.Request.Context(), id, currentUserID(c), req.Tags)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"tags": tags})
}

func (h *Handler) setFavorite(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req setFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsFavorite == nil {
		respondError(c, apperrors.New(apperrors.CodeInvalidArg, "isFavorite is required"))
		return
	}

	if err := h.summaries.SetFavorite(c.Request.Context(), id, currentUserID(c), *req.IsFavorite); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"isFavorite": *req.IsFavorite})
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.New(apperrors.CodeInvalidArg, "invalid summary id")
	}
	return id, nil
}
