package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aryanboii/Muzic/models"
	"github.com/Aryanboii/Muzic/yt"
)

type createStreamRequest struct {
	CreatorID string `json:"creatorId" binding:"required"`
	URL       string `json:"url" binding:"required"`
}

type upvoteRequest struct {
	StreamID string `json:"streamId" binding:"required"`
}

// createStream validates the submitted URL, fetches the video metadata and
// persists the stream as a single insert. Any failure along the way comes
// back as the generic 411 response.
func (env *Env) createStream(c *gin.Context) *apiError {
	var req createStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validationError(err, "Error while adding a stream")
	}

	videoID, err := yt.ExtractWatchID(req.URL)
	if err != nil {
		return validationError(err, "Invalid YouTube URL format")
	}

	video, err := env.Manager.GetVideoMetadata(videoID)
	if err != nil {
		return validationError(err, "Error while adding a stream")
	}

	title := video.Title
	if title == "" {
		title = "Cant find video"
	}
	smallImg, bigImg := yt.StreamImages(video, videoID)

	stream := &models.Stream{
		UserID:      req.CreatorID,
		URL:         req.URL,
		ExtractedID: videoID,
		Type:        models.StreamTypeYoutube,
		Title:       title,
		SmallImg:    smallImg,
		BigImg:      bigImg,
	}
	if err := models.CreateStream(env.DB, stream); err != nil {
		return validationError(err, "Error while adding a stream")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stream created"})
	return nil
}

// listStreams returns all streams for the creatorId query parameter.
func (env *Env) listStreams(c *gin.Context) *apiError {
	streams, err := models.StreamsByCreator(env.DB, c.Query("creatorId"))
	if err != nil {
		return validationError(err, "Error while listing streams")
	}
	c.JSON(http.StatusOK, gin.H{"streams": streams})
	return nil
}

// myStreams returns the caller's streams with their aggregated vote counts.
func (env *Env) myStreams(c *gin.Context) *apiError {
	user, err := env.currentUser(c)
	if err != nil {
		return refusedError(err, "Unauthenticated")
	}

	streams, err := models.StreamsWithUpvotes(env.DB, user.ID)
	if err != nil {
		return validationError(err, "Error while listing streams")
	}
	c.JSON(http.StatusOK, gin.H{"streams": streams})
	return nil
}

// upvoteStream records one upvote for the caller. A second vote for the
// same stream is refused, not double-counted.
func (env *Env) upvoteStream(c *gin.Context) *apiError {
	user, err := env.currentUser(c)
	if err != nil {
		return refusedError(err, "Unauthenticated")
	}

	var req upvoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return refusedError(err, "Error while voting")
	}

	if err := models.RecordUpvote(env.DB, user.ID, req.StreamID); err != nil {
		return refusedError(err, "Error while voting")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Upvoted"})
	return nil
}
