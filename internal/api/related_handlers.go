package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/vidnotes/vidnotes/internal/errors"
	"github.com/vidnotes/vidnotes/internal/service/youtube"
)

const defaultRelatedMax = 3

// relatedVideos returns videos related to the one addressed by the
// videoId or url query parameter
func (h *Handler) relatedVideos(c *gin.Context) {
	videoID := c.Query("videoId")
	if videoID == "" {
		url := c.Query("url")
		if url == "" {
			respondError(c, apperrors.New(apperrors.CodeInvalidArg, "videoId or url is required"))
			return
		}
		id, err := youtube.ExtractVideoID(url)
		if err != nil {
			respondError(c, err)
			return
		}
		videoID = id
	}

	max := defaultRelatedMax
	if v := c.Query("max"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respondError(c, apperrors.New(apperrors.CodeInvalidArg, "invalid max"))
			return
		}
		max = parsed
	}

	videos, err := h.summaries.RelatedVideos(c.Request.Context(), videoID, max, c.Query("title"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"videos": videos})
}
