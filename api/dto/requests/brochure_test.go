package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchRequest_ApplyDefaults(t *testing.T) {
	req := &SearchRequest{Location: "Kyoto"}
	req.ApplyDefaults()
	assert.Equal(t, 10, req.MaxResults)

	req = &SearchRequest{Location: "Kyoto", MaxResults: 25}
	req.ApplyDefaults()
	assert.Equal(t, 25, req.MaxResults)
}

func TestBrochureRequest_ApplyDefaults(t *testing.T) {
	req := &BrochureRequest{Location: "Kyoto"}
	req.ApplyDefaults()

	assert.Equal(t, 5, req.MaxSources)
	if assert.NotNil(t, req.IncludeTheme) {
		assert.True(t, *req.IncludeTheme)
	}
}

func TestBrochureRequest_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	disabled := false
	req := &BrochureRequest{
		Location:     "Kyoto",
		MaxSources:   3,
		IncludeTheme: &disabled,
	}
	req.ApplyDefaults()

	assert.Equal(t, 3, req.MaxSources)
	if assert.NotNil(t, req.IncludeTheme) {
		assert.False(t, *req.IncludeTheme)
	}
}

func TestSelectImagesRequest_ApplyDefaults(t *testing.T) {
	req := &SelectImagesRequest{Images: []ImageInput{{URL: "https://img.example/a.jpg"}}}
	req.ApplyDefaults()

	assert.Equal(t, 3, req.TargetCount)
	assert.Equal(t, SelectionModeDiverse, req.Mode)
}

func TestSelectImagesRequest_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	req := &SelectImagesRequest{
		Images:      []ImageInput{{URL: "https://img.example/a.jpg"}},
		TargetCount: 8,
		Mode:        SelectionModeGallery,
	}
	req.ApplyDefaults()

	assert.Equal(t, 8, req.TargetCount)
	assert.Equal(t, SelectionModeGallery, req.Mode)
}
