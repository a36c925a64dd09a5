package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryanboii/Muzic/models"
)

func TestCreateStream_EndToEnd(t *testing.T) {
	r, _ := newTestRouter(t, &fakeMetadata{})

	w := doJSON(r, http.MethodPost, "/streams", map[string]string{
		"creatorId": "u1",
		"url":       "https://www.youtube.com/watch?v=MbJ72KO5khs",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Stream created", decodeBody(t, w)["message"])

	w = doJSON(r, http.MethodGet, "/streams?creatorId=u1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	streams := decodeBody(t, w)["streams"].([]any)
	require.Equal(t, 1, len(streams))

	stream := streams[0].(map[string]any)
	assert.Equal(t, "MbJ72KO5khs", stream["extractedId"])
	assert.Equal(t, "Youtube", stream["type"])
	assert.Equal(t, "u1", stream["userId"])
	// Second-largest and largest thumbnail candidates.
	assert.Equal(t, "https://img.example/mq.jpg", stream["smallImg"])
	assert.Equal(t, "https://img.example/hq.jpg", stream["bigImg"])
}

func TestCreateStream_RejectsNonCanonicalForms(t *testing.T) {
	r, env := newTestRouter(t, &fakeMetadata{})

	urls := []string{
		"not a url",
		"https://youtu.be/MbJ72KO5khs",
		"https://www.youtube.com/embed/MbJ72KO5khs",
		"http://www.youtube.com/watch?v=MbJ72KO5khs",
	}
	for _, url := range urls {
		w := doJSON(r, http.MethodPost, "/streams", map[string]string{
			"creatorId": "u1",
			"url":       url,
		}, nil)
		assert.Equal(t, http.StatusLengthRequired, w.Code, url)
	}

	var count int64
	require.NoError(t, env.DB.Model(&models.Stream{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateStream_MetadataFailureLeavesNothingBehind(t *testing.T) {
	r, env := newTestRouter(t, &fakeMetadata{fail: true})

	w := doJSON(r, http.MethodPost, "/streams", map[string]string{
		"creatorId": "u1",
		"url":       "https://www.youtube.com/watch?v=MbJ72KO5khs",
	}, nil)
	assert.Equal(t, http.StatusLengthRequired, w.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.Stream{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestListStreams_UnknownCreatorIsEmpty(t *testing.T) {
	r, _ := newTestRouter(t, &fakeMetadata{})

	w := doJSON(r, http.MethodGet, "/streams?creatorId=nobody", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["streams"])
}

func TestUpvote_Unauthenticated(t *testing.T) {
	r, env := newTestRouter(t, &fakeMetadata{})

	w := doJSON(r, http.MethodPost, "/streams/upvote", map[string]string{"streamId": "s1"}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.Upvote{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUpvote_UnknownStreamRefused(t *testing.T) {
	r, env := newTestRouter(t, &fakeMetadata{})

	cookies := signIn(t, r, "viewer@example.com")

	w := doJSON(r, http.MethodPost, "/streams/upvote", map[string]string{"streamId": "no-such-stream"}, cookies)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.Upvote{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUpvote_DuplicateRefusedAndCountedOnce(t *testing.T) {
	r, env := newTestRouter(t, &fakeMetadata{})

	cookies := signIn(t, r, "creator@example.com")
	user, err := models.UserByEmail(env.DB, "creator@example.com")
	require.NoError(t, err)

	stream := &models.Stream{UserID: user.ID, URL: "a", ExtractedID: "a", Type: models.StreamTypeYoutube}
	require.NoError(t, models.CreateStream(env.DB, stream))

	w := doJSON(r, http.MethodPost, "/streams/upvote", map[string]string{"streamId": stream.ID}, cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/streams/upvote", map[string]string{"streamId": stream.ID}, cookies)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, "/streams/my", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	streams := decodeBody(t, w)["streams"].([]any)
	require.Equal(t, 1, len(streams))
	assert.Equal(t, float64(1), streams[0].(map[string]any)["upvotes"])
}

func TestMyStreams_Unauthenticated(t *testing.T) {
	r, _ := newTestRouter(t, &fakeMetadata{})

	w := doJSON(r, http.MethodGet, "/streams/my", nil, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMyStreams_CountsVotesFromAllUsers(t *testing.T) {
	r, env := newTestRouter(t, &fakeMetadata{})

	owner := signIn(t, r, "owner@example.com")
	user, err := models.UserByEmail(env.DB, "owner@example.com")
	require.NoError(t, err)

	stream := &models.Stream{UserID: user.ID, URL: "a", ExtractedID: "a", Type: models.StreamTypeYoutube}
	require.NoError(t, models.CreateStream(env.DB, stream))

	w := doJSON(r, http.MethodPost, "/streams/upvote", map[string]string{"streamId": stream.ID}, owner)
	require.Equal(t, http.StatusOK, w.Code)

	viewer := signIn(t, r, "viewer@example.com")
	w = doJSON(r, http.MethodPost, "/streams/upvote", map[string]string{"streamId": stream.ID}, viewer)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/streams/my", nil, owner)
	require.Equal(t, http.StatusOK, w.Code)
	streams := decodeBody(t, w)["streams"].([]any)
	require.Equal(t, 1, len(streams))
	assert.Equal(t, float64(2), streams[0].(map[string]any)["upvotes"])
}

func TestAuthCallback_CreatesUserLazily(t *testing.T) {
	r, env := newTestRouter(t, &fakeMetadata{})

	signIn(t, r, "new@example.com")

	user, err := models.UserByEmail(env.DB, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Google", user.Provider)

	// A later sign-in reuses the record.
	signIn(t, r, "new@example.com")
	var count int64
	require.NoError(t, env.DB.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthCallback_RejectsBadToken(t *testing.T) {
	r, _ := newTestRouter(t, &fakeMetadata{})

	w := doJSON(r, http.MethodPost, "/api/auth/callback", map[string]string{"token": "garbage"}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthSignout_EndsSession(t *testing.T) {
	r, _ := newTestRouter(t, &fakeMetadata{})

	cookies := signIn(t, r, "user@example.com")

	w := doJSON(r, http.MethodGet, "/api/auth/session", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/signout", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	signedOut := w.Result().Cookies()

	w = doJSON(r, http.MethodGet, "/api/auth/session", nil, signedOut)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
