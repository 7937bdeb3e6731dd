package search_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avdex/avdex/internal/gateway"
	"github.com/avdex/avdex/internal/gateway/mocks"
	"github.com/avdex/avdex/internal/media"
	"github.com/avdex/avdex/internal/search"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func video(id int64, name string) media.Video {
	return media.Video{ID: id, Name: name}
}

func TestEngine_Search_BlankQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	// No expectations: a blank query must not touch the gateway.

	engine := search.NewEngine(gw, testLogger())
	result, err := engine.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, result.Videos)
	assert.Empty(t, result.Actresses)
	assert.NotNil(t, result.Videos)
	assert.NotNil(t, result.Actresses)
}

func TestEngine_Search_MergesAndLabels(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	gw.EXPECT().
		FindVideos(gomock.Any(), gateway.VideoByName, "yui", 50).
		Return([]media.Video{video(1, "yui special")}, nil)
	gw.EXPECT().
		FindVideos(gomock.Any(), gateway.VideoByCode, "yui", 50).
		Return([]media.Video{video(1, "yui special"), video(2, "other title")}, nil)
	gw.EXPECT().
		FindActresses(gomock.Any(), "yui", 50).
		Return([]media.ActressRef{{ID: 10, Name: "Yui"}}, nil)
	gw.EXPECT().
		LinksByTarget(gomock.Any(), gateway.RelActress, []int64{10}, 2000).
		Return([]gateway.Link{
			{VideoID: 2, TargetID: 10},
			{VideoID: 3, TargetID: 10},
			{VideoID: 3, TargetID: 10},
		}, nil)
	gw.EXPECT().
		VideosByID(gomock.Any(), []int64{2, 3}, 2000).
		Return([]media.Video{video(2, "other title"), video(3, "third")}, nil)

	engine := search.NewEngine(gw, testLogger())
	result, err := engine.Search(context.Background(), "yui")

	require.NoError(t, err)
	require.Len(t, result.Actresses, 1)
	require.Len(t, result.Videos, 3, "duplicates collapse to one hit per video")

	matchedBy := map[int64]search.MatchSource{}
	for _, h := range result.Videos {
		matchedBy[h.ID] = h.MatchedBy
	}
	// First occurrence wins: name beats code beats actress link.
	assert.Equal(t, search.MatchedByName, matchedBy[1])
	assert.Equal(t, search.MatchedByCode, matchedBy[2])
	assert.Equal(t, search.MatchedByActressLink, matchedBy[3])
}

func TestEngine_Search_RanksBySimilarity(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	gw.EXPECT().
		FindVideos(gomock.Any(), gateway.VideoByName, "alpha", 50).
		Return([]media.Video{video(1, "zzzz alpha zzzz"), video(2, "alpha")}, nil)
	gw.EXPECT().
		FindVideos(gomock.Any(), gateway.VideoByCode, "alpha", 50).
		Return(nil, nil)
	gw.EXPECT().
		FindActresses(gomock.Any(), "alpha", 50).
		Return(nil, nil)

	engine := search.NewEngine(gw, testLogger())
	result, err := engine.Search(context.Background(), "alpha")

	require.NoError(t, err)
	require.Len(t, result.Videos, 2)
	assert.Equal(t, int64(2), result.Videos[0].ID, "exact title match ranks first")
}

func TestEngine_Search_NoActressesSkipsLinkLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	gw.EXPECT().
		FindVideos(gomock.Any(), gateway.VideoByName, "abc", 50).
		Return([]media.Video{video(1, "abc")}, nil)
	gw.EXPECT().
		FindVideos(gomock.Any(), gateway.VideoByCode, "abc", 50).
		Return(nil, nil)
	gw.EXPECT().
		FindActresses(gomock.Any(), "abc", 50).
		Return(nil, nil)
	// No LinksByTarget or VideosByID expectation.

	engine := search.NewEngine(gw, testLogger())
	result, err := engine.Search(context.Background(), "abc")

	require.NoError(t, err)
	assert.Len(t, result.Videos, 1)
	assert.Empty(t, result.Actresses)
}

func TestEngine_Search_LookupFailureFailsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	gw.EXPECT().
		FindVideos(gomock.Any(), gateway.VideoByName, "abc", 50).
		Return([]media.Video{video(1, "abc")}, nil).
		AnyTimes()
	gw.EXPECT().
		FindVideos(gomock.Any(), gateway.VideoByCode, "abc", 50).
		Return(nil, errors.New("db locked")).
		AnyTimes()
	gw.EXPECT().
		FindActresses(gomock.Any(), "abc", 50).
		Return(nil, nil).
		AnyTimes()

	engine := search.NewEngine(gw, testLogger())
	result, err := engine.Search(context.Background(), "abc")

	require.Error(t, err, "one failed lookup fails the whole search")
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "db locked")
}

func TestEngine_SetLimits(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	gw.EXPECT().
		FindVideos(gomock.Any(), gateway.VideoByName, "abc", 10).
		Return(nil, nil)
	gw.EXPECT().
		FindVideos(gomock.Any(), gateway.VideoByCode, "abc", 10).
		Return(nil, nil)
	gw.EXPECT().
		FindActresses(gomock.Any(), "abc", 10).
		Return(nil, nil)

	engine := search.NewEngine(gw, testLogger())
	engine.SetLimits(10, 100)
	_, err := engine.Search(context.Background(), "abc")
	require.NoError(t, err)
}
