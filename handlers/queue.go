package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Aryanboii/Muzic/queue"
	"github.com/Aryanboii/Muzic/utils"
	"github.com/Aryanboii/Muzic/yt"
)

type queueURLRequest struct {
	URL string `json:"url" binding:"required"`
}

type queueVoteRequest struct {
	ID    string `json:"id" binding:"required"`
	Delta int    `json:"delta"`
}

type queuePlayRequest struct {
	ID string `json:"id" binding:"required"`
}

type userNameRequest struct {
	Name string `json:"name" binding:"required"`
}

func (env *Env) queueState() gin.H {
	return gin.H{
		"queue":      env.Queue.Ranked(),
		"nowPlaying": env.Queue.NowPlaying(),
		"userName":   env.Queue.UserName(),
	}
}

// getQueue returns the vote-ranked queue and the now-playing slot.
func (env *Env) getQueue(c *gin.Context) *apiError {
	c.JSON(http.StatusOK, env.queueState())
	return nil
}

// previewQueue feeds the debounced previewer with the typed-in URL and
// reports the current preview slot.
func (env *Env) previewQueue(c *gin.Context) *apiError {
	var req queueURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validationError(err, "Invalid YouTube URL format")
	}

	env.Previewer.SetURL(req.URL)
	c.JSON(http.StatusOK, gin.H{
		"preview": env.Previewer.Preview(),
		"loading": env.Previewer.Loading(),
	})
	return nil
}

// addToQueue appends the submitted video with zero votes. A matching
// preview is consumed; otherwise the metadata is looked up on the spot,
// degrading to basic info when the lookup fails.
func (env *Env) addToQueue(c *gin.Context) *apiError {
	var req queueURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validationError(err, "Invalid YouTube URL format")
	}

	videoID, err := yt.ExtractVideoID(req.URL)
	if err != nil {
		return validationError(err, "Invalid YouTube URL format")
	}

	track := queue.Track{
		ID:      uuid.NewString(),
		VideoID: videoID,
		AddedBy: env.Queue.UserName(),
	}

	if preview := env.Previewer.Preview(); preview != nil && preview.VideoID == videoID {
		preview = env.Previewer.Take()
		track.Title = preview.Title
		track.Thumbnail = preview.Thumbnail
		track.Author = preview.Author
		track.Duration = preview.Duration
	} else if video, err := env.Manager.GetVideoMetadata(videoID); err == nil {
		track.Title = video.Title
		track.Thumbnail = yt.ThumbnailURL(videoID)
		track.Author = video.Author
		track.Duration = utils.FormatTrackDuration(video.Duration)
	} else {
		track.Title = "YouTube Video " + videoID
		track.Thumbnail = yt.ThumbnailURL(videoID)
		track.Author = "Unknown Channel"
		track.Duration = "Unknown"
	}

	env.Queue.Append(track)
	env.Store.Save(env.Queue)

	c.JSON(http.StatusOK, env.queueState())
	return nil
}

// voteQueue adjusts a track's votes; counts never drop below zero.
func (env *Env) voteQueue(c *gin.Context) *apiError {
	var req queueVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validationError(err, "Invalid vote")
	}

	env.Queue.AdjustVote(req.ID, req.Delta)
	env.Store.Save(env.Queue)

	c.JSON(http.StatusOK, env.queueState())
	return nil
}

// playNext pops the top-ranked track into the now-playing slot.
func (env *Env) playNext(c *gin.Context) *apiError {
	env.Queue.PlayNext()
	env.Store.Save(env.Queue)

	c.JSON(http.StatusOK, env.queueState())
	return nil
}

// playSpecific jumps the queue to a named track; unknown IDs change nothing.
func (env *Env) playSpecific(c *gin.Context) *apiError {
	var req queuePlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validationError(err, "Invalid track")
	}

	env.Queue.PlaySpecific(req.ID)
	env.Store.Save(env.Queue)

	c.JSON(http.StatusOK, env.queueState())
	return nil
}

func (env *Env) removeFromQueue(c *gin.Context) *apiError {
	env.Queue.Remove(c.Param("id"))
	env.Store.Save(env.Queue)

	c.JSON(http.StatusOK, env.queueState())
	return nil
}

func (env *Env) clearQueue(c *gin.Context) *apiError {
	env.Queue.Clear()
	env.Store.Save(env.Queue)

	c.JSON(http.StatusOK, env.queueState())
	return nil
}

func (env *Env) setUserName(c *gin.Context) *apiError {
	var req userNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validationError(err, "Invalid user name")
	}

	env.Queue.SetUserName(req.Name)
	env.Store.Save(env.Queue)

	c.JSON(http.StatusOK, env.queueState())
	return nil
}
